package initiator

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxadapter "github.com/pckhoi/casbin-pgx-adapter/v3"
)

type Enforcer struct {
	*casbin.Enforcer
	logger *slog.Logger
}

// NewEnforcer creates a casbin enforcer backed by postgres and seeds it with
// the rules of policy.csv found next to model.conf.
func NewEnforcer(pool *pgxpool.Pool, log *slog.Logger, pth string) (*Enforcer, error) {
	adapter, err := pgxadapter.NewAdapter(nil, pgxadapter.WithConnectionPool(pool))
	if err != nil {
		log.Error("failed to initialize casbin adapter", "error", err, "path", pth)
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(filepath.Join(pth, "model.conf"), adapter)
	if err != nil {
		log.Error("failed to initialize casbin enforcer", "error", err, "path", pth)
		return nil, err
	}
	enforcer.EnableAutoSave(true)

	rules, err := readRulesFromCSV(filepath.Join(pth, "policy.csv"))
	if err != nil {
		return nil, err
	}
	for _, r := range rules {
		switch r[0] {
		case "p":
			_, err = enforcer.AddPolicy(r[1:])
		case "g":
			_, err = enforcer.AddGroupingPolicy(r[1:])
		default:
			err = fmt.Errorf("unknown policy type %q", r[0])
		}
		if err != nil {
			return nil, err
		}
	}

	if err := enforcer.LoadPolicy(); err != nil {
		log.Error("failed to load policy", "error", err, "path", pth)
		return nil, err
	}

	return &Enforcer{
		Enforcer: enforcer,
		logger:   log,
	}, nil
}

func readRulesFromCSV(path string) ([][]string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("unable to read policy file: %w", err)
	}
	defer f.Close() //nolint: errcheck

	csvReader := csv.NewReader(f)
	csvReader.Comment = '#'
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true
	rules, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to read policy file: %w", err)
	}
	for i, r := range rules {
		for j := range r {
			rules[i][j] = strings.TrimSpace(r[j])
		}
	}
	return rules, nil
}
