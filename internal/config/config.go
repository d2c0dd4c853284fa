package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	PostgreSQL
	Redis
	HTTP
}

type App struct {
	BatchSize         int
	HeartbeatInterval time.Duration
	ReportsDirectory  string
	MaxUploadSize     int64
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	MaxConns int32
}

// Redis holds the session store settings. An empty Addr disables keep-alives.
type Redis struct {
	Addr          string
	Password      string
	DB            int
	SessionTTL    time.Duration
	SessionPrefix string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			BatchSize:         cmd.Int("batch-size"),
			HeartbeatInterval: cmd.Duration("heartbeat-interval"),
			ReportsDirectory:  cmd.String("reports-dir"),
			MaxUploadSize:     cmd.Int64("max-upload-size"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			MaxConns: cmd.Int32("pg-max-conns"),
		},
		Redis: Redis{
			Addr:          cmd.String("redis-addr"),
			Password:      cmd.String("redis-password"),
			DB:            cmd.Int("redis-db"),
			SessionTTL:    cmd.Duration("session-ttl"),
			SessionPrefix: cmd.String("session-prefix"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}
