package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

// ConnectPostgres opens the mirror-store database. Returns nil when no
// mirror is configured; the submission pipeline treats a nil mirror as
// "skip the secondary write".
//
// Env vars: MIRROR_DATABASE_URL takes precedence; otherwise the
// DATABASE_* pieces are assembled, and if none are set the mirror is
// disabled.
func ConnectPostgres() *sql.DB {
	dsn := os.Getenv("MIRROR_DATABASE_URL")
	if dsn == "" {
		host := os.Getenv("DATABASE_HOST")
		if host == "" {
			log.Printf("[mirror][postgres] not configured; secondary writes disabled")
			return nil
		}
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			getenvDefault("DATABASE_USER", "postgres"),
			getenvDefault("DATABASE_PASSWORD", "postgres"),
			host,
			getenvDefault("DATABASE_PORT", "5432"),
			getenvDefault("DATABASE_NAME", "webatelier"),
		)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Printf("[mirror][postgres] open failed; secondary writes disabled err=%v", err)
		return nil
	}
	return db
}
