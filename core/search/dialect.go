package search

import "strings"

// Dialect identifies which database engine's SQL variant a predicate
// targets. It is resolved once, when the connection is acquired, and passed
// into Build — never re-detected per call
type Dialect uint8

const (
	// Generic is the fallback strategy for unrecognized adapters
	Generic Dialect = iota
	// SQLite targets SQLite (GLOB for case-sensitive matching)
	SQLite
	// Postgres targets PostgreSQL (native ILIKE)
	Postgres
	// MySQL targets MySQL and MySQL-protocol-compatible adapters
	MySQL
)

// String returns the dialect name
func (d Dialect) String() string {
	switch d {
	case SQLite:
		return "sqlite"
	case Postgres:
		return "postgres"
	case MySQL:
		return "mysql"
	default:
		return "generic"
	}
}

// ParseDialect maps a connection's reported adapter name to a Dialect.
// Unrecognized names degrade to Generic rather than failing
func ParseDialect(adapter string) Dialect {
	name := strings.ToLower(strings.TrimSpace(adapter))
	switch {
	case strings.Contains(name, "postgres"):
		return Postgres
	case strings.Contains(name, "sqlite"):
		return SQLite
	case strings.Contains(name, "mysql"), name == "trilogy":
		return MySQL
	default:
		return Generic
	}
}
