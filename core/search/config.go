package search

// Config describes how one table is searched. It is constructed once when a
// table is registered as searchable and treated as immutable afterwards
type Config struct {
	// Fields is the column allow-list. nil means "every searchable column";
	// an empty, non-nil slice means "none"
	Fields []string

	// CaseSensitive selects the case-sensitive operator branch per dialect
	CaseSensitive bool

	// Dialect is the target database dialect, resolved at connection time
	Dialect Dialect
}

// Scope intersects the introspected columns with the field allow-list,
// preserving the column order so generated SQL stays deterministic
func (c Config) Scope(columns []string) []string {
	if c.Fields == nil {
		return columns
	}
	allowed := make(map[string]struct{}, len(c.Fields))
	for _, field := range c.Fields {
		allowed[field] = struct{}{}
	}
	scoped := make([]string, 0, len(columns))
	for _, column := range columns {
		if _, ok := allowed[column]; ok {
			scoped = append(scoped, column)
		}
	}
	return scoped
}
