package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/microsoft/go-mssqldb"
)

type Config struct {
	Host            string
	Port            string
	Instance        string
	User            string
	Password        string
	Database        string
	Encrypt         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DSN builds a sqlserver:// connection string.
func (c *Config) DSN() string {
	host := c.Host
	if c.Port != "" {
		host += ":" + c.Port
	}

	query := url.Values{}
	query.Add("database", c.Database)
	if c.Encrypt != "" {
		query.Add("encrypt", c.Encrypt)
	}
	query.Add("app name", "worktech-api")

	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(c.User, c.Password),
		Host:     host,
		RawQuery: query.Encode(),
	}
	if c.Instance != "" {
		u.Path = c.Instance
	}
	return u.String()
}

func NewMSSQL(cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlserver", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open sqlserver: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlserver: %w", err)
	}
	return db, nil
}
