package search

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allDialects = []Dialect{SQLite, Postgres, MySQL, Generic}

func TestBuildBlankQuery(t *testing.T) {
	columns := []string{"name", "description"}
	blanks := map[string]any{
		"empty string":    "",
		"whitespace only": " \t\n\r ",
		"absent":          nil,
		"boolean false":   false,
	}
	for name, query := range blanks {
		for _, d := range allDialects {
			for _, cs := range []bool{true, false} {
				p := Build(Config{Dialect: d, CaseSensitive: cs}, columns, query)
				assert.True(t, p.Empty(), "%s should be blank for dialect %s", name, d)
				assert.Empty(t, p.Bindings)
			}
		}
	}
}

func TestBuildEmptyColumns(t *testing.T) {
	for _, d := range allDialects {
		p := Build(Config{Dialect: d}, nil, "x")
		assert.True(t, p.Empty())
		p = Build(Config{Dialect: d}, []string{}, "x")
		assert.True(t, p.Empty())
	}
}

func TestBuildOperators(t *testing.T) {
	columns := []string{"name", "description"}
	tests := []struct {
		name          string
		dialect       Dialect
		caseSensitive bool
		wantExpr      string
		wantValue     string
	}{
		{
			name:          "sqlite case-sensitive uses GLOB",
			dialect:       SQLite,
			caseSensitive: true,
			wantExpr:      "name GLOB @q0 OR description GLOB @q1",
			wantValue:     "*John*",
		},
		{
			name:      "sqlite case-insensitive lowers both sides",
			dialect:   SQLite,
			wantExpr:  "LOWER(name) LIKE @q0 OR LOWER(description) LIKE @q1",
			wantValue: "%john%",
		},
		{
			name:          "postgres case-sensitive uses native LIKE",
			dialect:       Postgres,
			caseSensitive: true,
			wantExpr:      "name LIKE @q0 OR description LIKE @q1",
			wantValue:     "%John%",
		},
		{
			name:      "postgres case-insensitive uses ILIKE",
			dialect:   Postgres,
			wantExpr:  "name ILIKE @q0 OR description ILIKE @q1",
			wantValue: "%John%",
		},
		{
			name:          "mysql case-sensitive collates binary",
			dialect:       MySQL,
			caseSensitive: true,
			wantExpr:      "name LIKE @q0 COLLATE utf8mb4_bin OR description LIKE @q1 COLLATE utf8mb4_bin",
			wantValue:     "%John%",
		},
		{
			name:      "mysql case-insensitive collates unicode_ci",
			dialect:   MySQL,
			wantExpr:  "name LIKE @q0 COLLATE utf8mb4_unicode_ci OR description LIKE @q1 COLLATE utf8mb4_unicode_ci",
			wantValue: "%John%",
		},
		{
			name:          "generic case-sensitive uses LIKE",
			dialect:       Generic,
			caseSensitive: true,
			wantExpr:      "name LIKE @q0 OR description LIKE @q1",
			wantValue:     "%John%",
		},
		{
			name:      "generic case-insensitive lowers both sides",
			dialect:   Generic,
			wantExpr:  "LOWER(name) LIKE @q0 OR LOWER(description) LIKE @q1",
			wantValue: "%john%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Dialect: tt.dialect, CaseSensitive: tt.caseSensitive}
			p := Build(cfg, columns, "John")
			require.False(t, p.Empty())
			assert.Equal(t, tt.wantExpr, p.Expression)
			require.Len(t, p.Bindings, len(columns))
			for _, b := range p.Bindings {
				assert.Equal(t, tt.wantValue, b.Value)
			}
		})
	}
}

// One binding per OR-ed condition, each name unique and referenced exactly
// once in the expression
func TestBuildBindingInvariants(t *testing.T) {
	columns := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	paramRe := regexp.MustCompile(`@(q\d+)`)

	for _, d := range allDialects {
		for _, cs := range []bool{true, false} {
			p := Build(Config{Dialect: d, CaseSensitive: cs}, columns, "x")
			require.Len(t, p.Bindings, len(columns))

			seen := map[string]int{}
			for _, m := range paramRe.FindAllStringSubmatch(p.Expression, -1) {
				seen[m[1]]++
			}
			require.Len(t, seen, len(columns), "dialect %s", d)
			for _, b := range p.Bindings {
				assert.Equal(t, 1, seen[b.Name], "binding %s referenced once", b.Name)
			}
		}
	}
}

func TestBuildIsPure(t *testing.T) {
	cfg := Config{Dialect: Postgres}
	columns := []string{"name", "description"}
	first := Build(cfg, columns, "John")
	second := Build(cfg, columns, "John")
	assert.Equal(t, first, second)
}

func TestBuildQueryCoercion(t *testing.T) {
	cfg := Config{Dialect: Postgres, CaseSensitive: true}
	columns := []string{"name"}

	// Numeric zero is not blank
	p := Build(cfg, columns, 0)
	require.False(t, p.Empty())
	assert.Equal(t, "%0%", p.Bindings[0].Value)

	p = Build(cfg, columns, "0")
	require.False(t, p.Empty())
	assert.Equal(t, "%0%", p.Bindings[0].Value)

	p = Build(cfg, columns, 12.5)
	require.False(t, p.Empty())
	assert.Equal(t, "%12.5%", p.Bindings[0].Value)

	// Boolean true is coerced, boolean false is blank
	p = Build(cfg, columns, true)
	require.False(t, p.Empty())
	assert.Equal(t, "%true%", p.Bindings[0].Value)
	assert.True(t, Build(cfg, columns, false).Empty())
}

// MySQL delegates casing to the collation, so the bound value keeps its case
// even in the case-insensitive branch
func TestBuildMySQLKeepsCase(t *testing.T) {
	p := Build(Config{Dialect: MySQL}, []string{"name"}, "Test")
	require.Len(t, p.Bindings, 1)
	assert.Contains(t, p.Expression, "COLLATE utf8mb4_unicode_ci")
	assert.Equal(t, "%Test%", p.Bindings[0].Value)
}

// Wildcard metacharacters inside the query are passed through unescaped;
// a literal % acts as a wildcard under LIKE. Documented behavior
func TestBuildWildcardPassthrough(t *testing.T) {
	p := Build(Config{Dialect: Postgres}, []string{"name"}, "50%")
	require.Len(t, p.Bindings, 1)
	assert.Equal(t, "%50%%", p.Bindings[0].Value)

	p = Build(Config{Dialect: SQLite, CaseSensitive: true}, []string{"name"}, "a*b?")
	assert.Equal(t, "*a*b?*", p.Bindings[0].Value)
}

func TestPredicateArgs(t *testing.T) {
	p := Build(Config{Dialect: Postgres}, []string{"name", "description"}, "John")
	args := p.Args()
	assert.Equal(t, map[string]any{"q0": "%John%", "q1": "%John%"}, args)
}

func TestConfigScope(t *testing.T) {
	columns := []string{"name", "description", "sku"}

	// nil allow-list keeps everything
	assert.Equal(t, columns, Config{}.Scope(columns))

	// scoping preserves column order, not allow-list order
	cfg := Config{Fields: []string{"sku", "name"}}
	assert.Equal(t, []string{"name", "sku"}, cfg.Scope(columns))

	// unknown fields are ignored
	cfg = Config{Fields: []string{"nope"}}
	assert.Empty(t, cfg.Scope(columns))

	// empty non-nil allow-list scopes everything away, and Build then
	// returns the Empty predicate
	cfg = Config{Fields: []string{}, Dialect: Postgres}
	scoped := cfg.Scope(columns)
	assert.Empty(t, scoped)
	assert.True(t, Build(cfg, scoped, "x").Empty())
}
