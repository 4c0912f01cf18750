package database

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver ("pgx")
	_ "modernc.org/sqlite"             // SQLite driver ("sqlite")
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// DriverFor picks the database/sql driver for a connection string. Postgres
// URLs select pgx, everything else is treated as a SQLite DSN.
func DriverFor(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// sqliteDSN makes modernc store time.Time values in a format it can scan back.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_time_format=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_time_format=sqlite"
}

// fromSQLiteURL rewrites the URL form DATABASE_URL commonly carries
// (sqlite:///relative.db, sqlite:////abs/path.db, sqlite:// for memory) into
// a modernc file: DSN.
func fromSQLiteURL(dsn string) string {
	path, query, _ := strings.Cut(strings.TrimPrefix(dsn, "sqlite://"), "?")
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		path = ":memory:"
	}
	if query != "" {
		return "file:" + path + "?" + query
	}
	return "file:" + path
}

func driverDSN(dsn string) (driver, source string, err error) {
	driver = DriverFor(dsn)
	if driver == DriverPostgres {
		return driver, dsn, nil
	}
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		dsn = fromSQLiteURL(dsn)
	case strings.Contains(dsn, "://") && !strings.HasPrefix(dsn, "file://"):
		scheme, _, _ := strings.Cut(dsn, "://")
		return "", "", fmt.Errorf("unsupported database URL scheme %q (use postgres://, sqlite:/// or a SQLite file: DSN)", scheme)
	}
	return driver, sqliteDSN(dsn), nil
}

// Connect opens and pings the quiz store. SQLite gets a single connection so
// writes never contend for the file lock.
func Connect(dsn string, logger *zap.Logger) (*sqlx.DB, error) {
	driver, source, err := driverDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(driver, source)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	logger.Info("Successfully connected to database", zap.String("driver", driver))
	return db, nil
}
