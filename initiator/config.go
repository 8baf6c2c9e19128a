package initiator

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"video-sharing/models"
)

// LoadConfig reads config.yaml from path. Environment variables override
// file values, with dots replaced by underscores (SERVER_PORT, DATABASE_HOST).
func LoadConfig(path string) (models.Config, error) {
	var config models.Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "production")
	v.SetDefault("server.timeout", 30*time.Second)
	v.SetDefault("server.max_upload_bytes", int64(32<<20))
	v.SetDefault("redis.stream", "video-events")
	v.SetDefault("cache.size", 16)
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("casbin.path", path)

	if err := v.ReadInConfig(); err != nil {
		return config, fmt.Errorf("error reading config file: %w", err)
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return config, nil
}
