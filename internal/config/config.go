package config

import (
	"log"
	"os"
)

type Config struct {
	Port              string
	DataFile          string // JSON-array inquiry store
	DBDSN             string // when set, use the SQLite store instead
	StaticDir         string
	TemplateDir       string
	LogFile           string
	AdminPasswordHash string // bcrypt; empty leaves the admin surface open
}

func Load() Config {
	cfg := Config{
		Port:              getenv("PORT", "3000"),
		DataFile:          getenv("DATA_FILE", "./inquiries.json"),
		DBDSN:             os.Getenv("DB_DSN"),
		StaticDir:         getenv("STATIC_DIR", "./web/static"),
		TemplateDir:       getenv("TEMPLATE_DIR", "./web/templates"),
		LogFile:           os.Getenv("LOG_FILE"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
	log.Printf("[config] PORT=%s DATA_FILE=%s DB_DSN=%s STATIC_DIR=%s TEMPLATE_DIR=%s LOG_FILE=%s admin_gate=%v",
		cfg.Port, cfg.DataFile, cfg.DBDSN, cfg.StaticDir, cfg.TemplateDir, cfg.LogFile, cfg.AdminPasswordHash != "")
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
