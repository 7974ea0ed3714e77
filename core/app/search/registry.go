package search

import (
	"github.com/gertd/go-pluralize"
	"gorm.io/gorm"
)

// SearchableModel is the interface models implement to join the global search
type SearchableModel interface {
	// GetSearchFields returns the columns to search in (e.g. "name", "email").
	// They act as an allow-list over the table's text-like columns
	GetSearchFields() []string

	// GetSearchTable returns the database table name
	GetSearchTable() string

	// GetSearchType returns the type identifier for results (e.g. "post")
	GetSearchType() string

	// ToSearchResult converts the model instance to a SearchResult
	ToSearchResult() SearchResult
}

// SearchConfig is the per-table search configuration. It is written once at
// registration time and read-only afterwards, so concurrent readers need no
// locking
type SearchConfig struct {
	// Model is an instance of the searchable model, nil for simple registrations
	Model SearchableModel

	// Name is the module name (e.g. "posts")
	Name string

	// Fields is the column allow-list; nil means every text-like column
	Fields []string

	// Table is the database table name
	Table string

	// Type is the search result type identifier
	Type string

	// CaseSensitive makes matching case-sensitive for this table
	CaseSensitive bool

	// CustomSearchFunc replaces the default predicate-based search when set
	CustomSearchFunc func(db *gorm.DB, query string, limit int) ([]SearchResult, error)
}

// SearchRegistry maps module names to their search configuration. The
// application constructs one in app/init.go and hands it to the search
// module — there is no package-level registry
type SearchRegistry struct {
	configs map[string]*SearchConfig
}

// NewSearchRegistry creates an empty search registry
func NewSearchRegistry() *SearchRegistry {
	return &SearchRegistry{
		configs: make(map[string]*SearchConfig),
	}
}

// SimpleSearchConfig is a minimal configuration for table-only registration
type SimpleSearchConfig struct {
	Table         string   // Database table name
	Fields        []string // Columns to search in (nil = all text-like columns)
	Type          string   // Result type identifier (defaults to the singular of the name)
	CaseSensitive bool     // Case-sensitive matching for this table
}

var singular = pluralize.NewClient()

// RegisterSimple adds a table with minimal configuration:
//
//	registry.RegisterSimple("products", search.SimpleSearchConfig{
//	    Table:  "products",
//	    Fields: []string{"name", "description", "sku"},
//	})
func (r *SearchRegistry) RegisterSimple(name string, cfg SimpleSearchConfig) {
	if cfg.Type == "" {
		cfg.Type = singular.Singular(name)
	}

	r.configs[name] = &SearchConfig{
		Name:          name,
		Fields:        cfg.Fields,
		Table:         cfg.Table,
		Type:          cfg.Type,
		CaseSensitive: cfg.CaseSensitive,
	}
}

// Register adds a searchable model to the registry
func (r *SearchRegistry) Register(name string, model SearchableModel) {
	r.configs[name] = &SearchConfig{
		Model:  model,
		Name:   name,
		Fields: model.GetSearchFields(),
		Table:  model.GetSearchTable(),
		Type:   model.GetSearchType(),
	}
}

// RegisterWithCustomSearch adds a searchable model with a custom search function
func (r *SearchRegistry) RegisterWithCustomSearch(name string, model SearchableModel, searchFunc func(db *gorm.DB, query string, limit int) ([]SearchResult, error)) {
	r.Register(name, model)
	r.configs[name].CustomSearchFunc = searchFunc
}

// Get retrieves a search config by name
func (r *SearchRegistry) Get(name string) (*SearchConfig, bool) {
	config, exists := r.configs[name]
	return config, exists
}

// GetAll returns all registered search configs
func (r *SearchRegistry) GetAll() map[string]*SearchConfig {
	return r.configs
}

// GetNames returns all registered module names
func (r *SearchRegistry) GetNames() []string {
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	return names
}
