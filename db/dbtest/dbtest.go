// Package dbtest points db.Instance at a private in-memory SQLite database for tests.
package dbtest

import (
	"fmt"
	"outings/db"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
)

func Setup(t testing.TB) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := db.SQLiteDSN(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	instance, err := db.Open(sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	sqlDB, err := instance.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	// One connection keeps the shared in-memory database alive and serializes access
	sqlDB.SetMaxOpenConns(1)
	previous := db.Instance
	db.Instance = instance
	t.Cleanup(func() {
		db.Instance = previous
		_ = sqlDB.Close()
	})
}
