package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the SQLite dataset file and verifies it is reachable.  The
// dataset is bundled with the deployment and never written to by the
// service, so it is opened read-only by default; readOnly=false is for
// local tooling that needs a writable handle.
func Open(path string, readOnly bool) (*sql.DB, error) {
	// _busy_timeout guards against an importer run holding the file lock
	// while the server starts
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	if readOnly {
		dsn += "&mode=ro"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings: reads on an immutable file can run in parallel
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
