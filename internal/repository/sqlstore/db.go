// Package sqlstore persists users and plans through database/sql, on SQLite
// (modernc, the default for local runs) or MySQL.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// Dialect captures the SQL differences between the supported drivers.
type Dialect struct {
	Name   string
	driver string
	schema []string
	upsert func(cols []string) string
}

var (
	SQLite = Dialect{
		Name:   "sqlite",
		driver: "sqlite",
		schema: []string{sqliteUsers, sqliteTraining},
		upsert: func(cols []string) string {
			set := make([]string, len(cols))
			for i, c := range cols {
				set[i] = fmt.Sprintf("%s = excluded.%s", c, c)
			}
			return "ON CONFLICT(user_id) DO UPDATE SET " + strings.Join(set, ", ")
		},
	}

	MySQL = Dialect{
		Name:   "mysql",
		driver: "mysql",
		schema: []string{mysqlUsers, mysqlTraining},
		upsert: func(cols []string) string {
			set := make([]string, len(cols))
			for i, c := range cols {
				set[i] = fmt.Sprintf("%s = VALUES(%s)", c, c)
			}
			return "ON DUPLICATE KEY UPDATE " + strings.Join(set, ", ")
		},
	}
)

// DialectFor maps a storage driver name to its dialect.
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "mysql", "mariadb":
		return MySQL, nil
	}
	return Dialect{}, fmt.Errorf("unsupported sql dialect: %s", name)
}

// DB wraps a database/sql handle with its dialect
type DB struct {
	conn    *sql.DB
	dialect Dialect
}

// Open connects, verifies the connection and creates missing tables.
// MySQL DSNs need parseTime=true.
func Open(ctx context.Context, dialect Dialect, dsn string) (*DB, error) {
	conn, err := sql.Open(dialect.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", dialect.Name, err)
	}

	if dialect.Name == SQLite.Name {
		// one writer; also keeps ":memory:" databases on a single connection
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", dialect.Name, err)
	}

	db := &DB{conn: conn, dialect: dialect}
	if err := db.Migrate(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates the tables if they do not exist.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range db.dialect.schema {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply %s schema: %w", db.dialect.Name, err)
		}
	}
	return nil
}

// Dialect returns the dialect in use
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Ping verifies database connectivity
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close closes the database
func (db *DB) Close() error {
	return db.conn.Close()
}

const sqliteUsers = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	full_name TEXT NOT NULL,
	last_login DATETIME,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
)`

const sqliteTraining = `
CREATE TABLE IF NOT EXISTS training (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
	day1_exercises TEXT NOT NULL DEFAULT '[]',
	day2_exercises TEXT NOT NULL DEFAULT '[]',
	day3_exercises TEXT NOT NULL DEFAULT '[]',
	day4_exercises TEXT NOT NULL DEFAULT '[]',
	day5_exercises TEXT NOT NULL DEFAULT '[]',
	day6_exercises TEXT NOT NULL DEFAULT '[]',
	day7_exercises TEXT NOT NULL DEFAULT '[]',
	dias_semana INTEGER NOT NULL CHECK (dias_semana BETWEEN 1 AND 7),
	current_day INTEGER NOT NULL DEFAULT 1,
	generated_at DATETIME NOT NULL,
	ai_model TEXT NOT NULL,
	source TEXT NOT NULL DEFAULT 'oracle',
	user_preferences TEXT NOT NULL DEFAULT '{}',
	imc REAL NOT NULL DEFAULT 0,
	warning TEXT NOT NULL DEFAULT '',
	raw_text TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
)`

const mysqlUsers = `
CREATE TABLE IF NOT EXISTS users (
	id CHAR(36) PRIMARY KEY,
	email VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	full_name VARCHAR(120) NOT NULL,
	last_login DATETIME(6) NULL,
	created_at DATETIME(6) NOT NULL,
	updated_at DATETIME(6) NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

const mysqlTraining = `
CREATE TABLE IF NOT EXISTS training (
	id CHAR(36) PRIMARY KEY,
	user_id CHAR(36) NOT NULL UNIQUE,
	day1_exercises JSON NOT NULL,
	day2_exercises JSON NOT NULL,
	day3_exercises JSON NOT NULL,
	day4_exercises JSON NOT NULL,
	day5_exercises JSON NOT NULL,
	day6_exercises JSON NOT NULL,
	day7_exercises JSON NOT NULL,
	dias_semana TINYINT NOT NULL,
	current_day TINYINT NOT NULL DEFAULT 1,
	generated_at DATETIME(6) NOT NULL,
	ai_model VARCHAR(120) NOT NULL,
	source VARCHAR(16) NOT NULL DEFAULT 'oracle',
	user_preferences JSON NOT NULL,
	imc DOUBLE NOT NULL DEFAULT 0,
	warning TEXT NOT NULL,
	raw_text MEDIUMTEXT NOT NULL,
	created_at DATETIME(6) NOT NULL,
	updated_at DATETIME(6) NOT NULL,
	CONSTRAINT fk_training_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
