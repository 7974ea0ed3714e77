// Package search builds dialect-aware substring-search predicates: given a
// set of text-like columns and a user query, it produces a boolean SQL
// expression (one comparison per column, OR-ed together) plus the named
// parameter bindings to run it with.
//
// Each dialect branch picks the operator that lets the database engine do
// case folding natively instead of wrapping the column in LOWER(), which
// would defeat plain indexes: PostgreSQL gets ILIKE, MySQL gets LIKE with an
// explicit COLLATE, and SQLite — whose default LIKE is already
// case-insensitive — uses GLOB for the case-sensitive branch.
//
// The query value is always bound, never concatenated into the SQL text.
// Wildcard markers are concatenated onto the bound value, and user-supplied
// metacharacters (%, _, *, ?) are intentionally not escaped: a literal % in
// the query acts as a wildcard under LIKE. That is documented behavior, not
// a bug; escaping it would change observable search results.
package search

import (
	"fmt"
	"strconv"
	"strings"
)

// Binding is one named parameter of a predicate
type Binding struct {
	Name  string
	Value string
}

// Predicate is a boolean SQL expression plus its parameter bindings,
// suitable for merging into a parameterized WHERE clause. The zero value is
// the Empty predicate, which callers must treat as "match no rows"
type Predicate struct {
	Expression string
	Bindings   []Binding
}

// Empty reports whether the predicate matches no rows
func (p Predicate) Empty() bool {
	return p.Expression == ""
}

// Args returns the bindings as a named-argument map for gorm or database/sql
func (p Predicate) Args() map[string]any {
	args := make(map[string]any, len(p.Bindings))
	for _, b := range p.Bindings {
		args[b.Name] = b.Value
	}
	return args
}

// Build produces the search predicate for the given columns and query.
//
// columns must already be text-like and scoped by the config's field
// allow-list (see Config.Scope), in a deterministic order. query may be any
// value: nil, whitespace-only strings and boolean false are blank and yield
// the Empty predicate, everything else is coerced to its string form.
// An empty column list also yields Empty. Build never fails and is pure
func Build(cfg Config, columns []string, query any) Predicate {
	q, ok := coerceQuery(query)
	if !ok || len(columns) == 0 {
		return Predicate{}
	}

	conditions := make([]string, len(columns))
	bindings := make([]Binding, len(columns))
	for i, column := range columns {
		name := "q" + strconv.Itoa(i)
		expr, value := comparison(cfg.Dialect, cfg.CaseSensitive, column, name, q)
		conditions[i] = expr
		bindings[i] = Binding{Name: name, Value: value}
	}

	return Predicate{
		Expression: strings.Join(conditions, " OR "),
		Bindings:   bindings,
	}
}

// comparison returns one column comparison and the value to bind for it
func comparison(d Dialect, caseSensitive bool, column, param, query string) (string, string) {
	placeholder := "@" + param
	switch d {
	case SQLite:
		if caseSensitive {
			return column + " GLOB " + placeholder, "*" + query + "*"
		}
		return "LOWER(" + column + ") LIKE " + placeholder, "%" + strings.ToLower(query) + "%"
	case Postgres:
		// Native LIKE is case-sensitive on PostgreSQL
		if caseSensitive {
			return column + " LIKE " + placeholder, "%" + query + "%"
		}
		return column + " ILIKE " + placeholder, "%" + query + "%"
	case MySQL:
		// Casing is delegated to the collation; the value is bound as-is
		if caseSensitive {
			return column + " LIKE " + placeholder + " COLLATE utf8mb4_bin", "%" + query + "%"
		}
		return column + " LIKE " + placeholder + " COLLATE utf8mb4_unicode_ci", "%" + query + "%"
	default:
		if caseSensitive {
			return column + " LIKE " + placeholder, "%" + query + "%"
		}
		return "LOWER(" + column + ") LIKE " + placeholder, "%" + strings.ToLower(query) + "%"
	}
}

// coerceQuery classifies the query value. It returns the query's string form
// and false when the value is blank: nil, an empty or whitespace-only
// string, or boolean false. Numeric zero is not blank
func coerceQuery(query any) (string, bool) {
	switch q := query.(type) {
	case nil:
		return "", false
	case string:
		if strings.TrimSpace(q) == "" {
			return "", false
		}
		return q, true
	case bool:
		if !q {
			return "", false
		}
		return "true", true
	default:
		return fmt.Sprint(q), true
	}
}
