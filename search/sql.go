package search

import (
	"fmt"
	"strings"
)

// Video rows are aliased v, their uploader u. User rows are aliased u.
var columnExpr = map[Column]string{
	ColTitle:      "LOWER(v.title)",
	ColDuration:   "v.duration::float8",
	ColUploadedAt: "v.uploaded_at",
	ColCategory:   "c.name",
	ColUploader:   "v.uploaded_by",
	ColSubscriber: "s.subscriber_id",
	ColUsername:   "LOWER(u.username)",
	ColFullName:   "LOWER(CONCAT(u.first_name, ' ', u.last_name))",
}

// Columns that live in a related table are tested through EXISTS.
var relatedExpr = map[Column]string{
	ColCategory: "EXISTS (SELECT 1 FROM video_categories vc JOIN categories c ON c.id = vc.category_id " +
		"WHERE vc.video_id = v.id AND %s)",
	ColSubscriber: "EXISTS (SELECT 1 FROM subscriptions s " +
		"WHERE s.channel_id = v.uploaded_by AND %s)",
}

var orderExpr = map[SortKey]string{
	SortRecency:  "ORDER BY v.uploaded_at DESC, v.id",
	SortViews:    "ORDER BY v.views DESC, v.uploaded_at DESC, v.id",
	SortUsername: "ORDER BY u.username ASC",
}

var opExpr = map[Operator]string{
	OpEq:       "=",
	OpContains: "LIKE",
	OpLTE:      "<=",
	OpGTE:      ">=",
}

// SQL renders the WHERE, ORDER BY, LIMIT and OFFSET tail of a query.
// Placeholders are numbered from startArg.
func (s Spec) SQL(startArg int) (string, []any) {
	where, args := s.WhereSQL(startArg)
	n := startArg + len(args)

	var b strings.Builder
	b.WriteString(where)
	if order := s.OrderSQL(); order != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(order)
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "LIMIT $%d OFFSET $%d", n, n+1)
	args = append(args, s.Page.Limit, s.Page.Offset)
	return b.String(), args
}

// WhereSQL renders only the filter part; it is empty when there are no clauses.
func (s Spec) WhereSQL(startArg int) (string, []any) {
	var (
		conds []string
		args  []any
	)
	n := startArg
	for _, cl := range s.Where {
		var alts []string
		for _, p := range cl.Any {
			expr, ok := predicateSQL(p, n)
			if !ok {
				continue
			}
			alts = append(alts, expr)
			args = append(args, p.Value)
			n++
		}
		switch len(alts) {
		case 0:
		case 1:
			conds = append(conds, alts[0])
		default:
			conds = append(conds, "("+strings.Join(alts, " OR ")+")")
		}
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (s Spec) OrderSQL() string {
	if o, ok := orderExpr[s.Sort]; ok {
		return o
	}
	return orderExpr[SortRecency]
}

func predicateSQL(p Predicate, argNum int) (string, bool) {
	col, ok := columnExpr[p.Column]
	if !ok {
		return "", false
	}
	op, ok := opExpr[p.Op]
	if !ok {
		return "", false
	}
	expr := fmt.Sprintf("%s %s $%d", col, op, argNum)
	if wrap, ok := relatedExpr[p.Column]; ok {
		expr = fmt.Sprintf(wrap, expr)
	}
	return expr, true
}
