package models

import "time"

type Config struct {
	Server struct {
		Port           string        `mapstructure:"port"`
		Environment    string        `mapstructure:"environment"`
		Timeout        time.Duration `mapstructure:"timeout"`
		MaxUploadBytes int64         `mapstructure:"max_upload_bytes"`
		TempDir        string        `mapstructure:"temp_dir"`
	} `mapstructure:"server"`
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Name     string `mapstructure:"name"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
	} `mapstructure:"database"`
	Token struct {
		Duration time.Duration `mapstructure:"duration"`
		Key      string        `mapstructure:"key"`
	} `mapstructure:"token"`
	Static struct {
		Endpoint        string `mapstructure:"endpoint"`
		PublicURL       string `mapstructure:"public_url"`
		AccessKey       string `mapstructure:"access_key"`
		SecretKey       string `mapstructure:"secret_key"`
		Secure          bool   `mapstructure:"secure"`
		VideoBucket     string `mapstructure:"video_bucket"`
		ThumbnailBucket string `mapstructure:"thumbnail_bucket"`
	} `mapstructure:"static"`
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
		Stream   string `mapstructure:"stream"`
	} `mapstructure:"redis"`
	Cache struct {
		Size int           `mapstructure:"size"`
		TTL  time.Duration `mapstructure:"ttl"`
	} `mapstructure:"cache"`
	Casbin struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"casbin"`
}

func (c Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c Config) DSN() string {
	return "postgres://" + c.Database.User + ":" + c.Database.Password + "@" +
		c.Database.Host + ":" + c.Database.Port + "/" + c.Database.Name + "?sslmode=disable"
}
