package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	BIND_ADDRESS    = "0.0.0.0:8080"
	TLS_DOMAINS     = ""           // e.g. "example.com,example2.com"
	MYSQL_DSN       = ""           // MySQL will be used if this is set
	SQLITE_FILE     = "db.sqlite3" // SQLite will be used if MYSQL_DSN is not configured
	SESSION_KEY     = "this is a long key"
	SESSION_MAX_AGE = 30 * 86400 // 30 days
	DEBUG_MODE      = true
	ALLOWED_ORIGINS = "" // CORS is only enabled when set, e.g. "https://a.example.com,https://b.example.com"
)

func init() {
	// A missing .env file is fine, plain environment variables still apply
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not load .env file: %v", err)
	}
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvInt("SESSION_MAX_AGE", &SESSION_MAX_AGE)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("ALLOWED_ORIGINS", &ALLOWED_ORIGINS)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring %s: %v", name, err)
		return
	}
	*value = i
}
