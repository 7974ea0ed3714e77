package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDialect(t *testing.T) {
	tests := map[string]Dialect{
		"sqlite":                 SQLite,
		"sqlite3":                SQLite,
		"postgres":               Postgres,
		"postgresql":             Postgres,
		"PostgreSQL":             Postgres,
		"mysql":                  MySQL,
		"mysql2":                 MySQL,
		"trilogy":                MySQL,
		"mariadb-mysql":          MySQL,
		"something_unrecognized": Generic,
		"":                       Generic,
		"oracle":                 Generic,
	}
	for adapter, want := range tests {
		assert.Equal(t, want, ParseDialect(adapter), "adapter %q", adapter)
	}
}

func TestDialectString(t *testing.T) {
	assert.Equal(t, "sqlite", SQLite.String())
	assert.Equal(t, "postgres", Postgres.String())
	assert.Equal(t, "mysql", MySQL.String())
	assert.Equal(t, "generic", Generic.String())
	assert.Equal(t, "generic", Dialect(42).String())
}
