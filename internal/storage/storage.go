package storage

import (
	"net/url"
	"strings"

	"github.com/evanfuller/habitgrid/internal/storage/postgres"
	"github.com/evanfuller/habitgrid/internal/storage/sqlite"
)

// NewSQLiteStore creates a provider backed by a local SQLite file
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a provider backed by a PostgreSQL connection
// string
func NewPostgresStore(connStr string) Provider {
	return postgres.NewStore(connStr)
}

// IsPostgres reports whether the config argument is a PostgreSQL connection
// string rather than a file path
func IsPostgres(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Credentials belong in the OS keyring, environment, or
// .pgpass, never in the command line.
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgres(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, set := u.User.Password(); set {
				return true
			}
		}
		return false
	}
	return strings.Contains(connStr, "password=")
}
