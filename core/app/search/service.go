package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"scout/core/emitter"
	"scout/core/logger"
	"scout/core/search"

	"gorm.io/gorm"
)

// SearchPerformedEvent fires after every global search with the SearchResponse
const SearchPerformedEvent = "search.performed"

type SearchService struct {
	DB       *gorm.DB
	Emitter  *emitter.Emitter
	Logger   logger.Logger
	Registry *SearchRegistry

	// Dialect is resolved once from the connection's adapter name, not
	// re-detected per query
	Dialect search.Dialect

	// DefaultLimit is the per-module result cap used when the caller does
	// not pass one (SEARCH_DEFAULT_LIMIT)
	DefaultLimit int

	// CaseSensitive makes matching case-sensitive for tables that do not
	// opt in per registration (SEARCH_CASE_SENSITIVE)
	CaseSensitive bool

	// columns caches the introspected text-like columns per table
	mu      sync.RWMutex
	columns map[string][]string
}

// NewSearchService creates the search service. adapter is the connection's
// reported adapter name (e.g. gorm's Dialector.Name()); unrecognized values
// degrade to the generic dialect
func NewSearchService(db *gorm.DB, emitter *emitter.Emitter, log logger.Logger, registry *SearchRegistry, adapter string) *SearchService {
	return &SearchService{
		DB:           db,
		Logger:       log,
		Emitter:      emitter,
		Registry:     registry,
		Dialect:      search.ParseDialect(adapter),
		DefaultLimit: 10,
		columns:      make(map[string][]string),
	}
}

// GlobalSearch performs search across multiple modules using the registry
func (s *SearchService) GlobalSearch(query, modules string, limit int) (*SearchResponse, error) {
	response := &SearchResponse{
		Query:   query,
		Results: make(map[string][]SearchResult),
		Modules: []string{},
		Total:   0,
	}

	if limit <= 0 {
		limit = s.DefaultLimit
	}
	if limit <= 0 {
		limit = 10
	}

	// Parse modules to search
	var modulesToSearch []string
	if modules == "" {
		// Default to all registered modules, sorted for deterministic output
		modulesToSearch = s.Registry.GetNames()
		sort.Strings(modulesToSearch)
	} else {
		modulesToSearch = strings.Split(modules, ",")
		for i, module := range modulesToSearch {
			modulesToSearch[i] = strings.TrimSpace(module)
		}
	}

	for _, moduleName := range modulesToSearch {
		config, exists := s.Registry.Get(moduleName)
		if !exists {
			s.Logger.Warn("Search module not registered",
				logger.String("module", moduleName))
			continue
		}

		results, err := s.searchWithConfig(config, query, limit)
		if err != nil {
			s.Logger.Error("Failed to search module",
				logger.String("module", moduleName),
				logger.String("error", err.Error()))
			continue
		}

		if len(results) > 0 {
			response.Results[moduleName] = results
			response.Modules = append(response.Modules, moduleName)
			response.Total += len(results)
		}
	}

	s.Emitter.Emit(SearchPerformedEvent, response)

	return response, nil
}

// searchWithConfig searches using a registered search config
func (s *SearchService) searchWithConfig(config *SearchConfig, query string, limit int) ([]SearchResult, error) {
	if config.CustomSearchFunc != nil {
		return config.CustomSearchFunc(s.DB, query, limit)
	}
	return s.defaultSearch(config, query, limit)
}

// defaultSearch builds the dialect-aware substring predicate over the
// table's searchable columns and runs it
func (s *SearchService) defaultSearch(config *SearchConfig, query string, limit int) ([]SearchResult, error) {
	columns, err := s.searchColumns(config)
	if err != nil {
		return nil, err
	}

	predicateCfg := search.Config{
		Fields:        config.Fields,
		CaseSensitive: config.CaseSensitive || s.CaseSensitive,
		Dialect:       s.Dialect,
	}
	predicate := search.Build(predicateCfg, predicateCfg.Scope(columns), query)
	if predicate.Empty() {
		// Blank query or no searchable columns: match no rows, skip the database
		return []SearchResult{}, nil
	}

	rows, err := s.DB.Table(config.Table).
		Where("deleted_at IS NULL").
		Where(predicate.Expression, predicate.Args()).
		Limit(limit).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resultColumns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	for rows.Next() {
		values := make([]any, len(resultColumns))
		valuePointers := make([]any, len(resultColumns))
		for i := range values {
			valuePointers[i] = &values[i]
		}

		if err := rows.Scan(valuePointers...); err != nil {
			continue
		}

		rowData := make(map[string]any, len(resultColumns))
		for i, col := range resultColumns {
			if b, ok := values[i].([]byte); ok {
				rowData[col] = string(b)
			} else {
				rowData[col] = values[i]
			}
		}

		results = append(results, s.createBasicSearchResult(config, rowData))
	}

	return results, rows.Err()
}

// searchColumns returns the table's text-like columns, introspecting on the
// first use and caching the result until the next refresh
func (s *SearchService) searchColumns(config *SearchConfig) ([]string, error) {
	s.mu.RLock()
	cached, ok := s.columns[config.Table]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	columns, err := search.TextColumns(s.DB, config.Table)
	if err != nil || len(columns) == 0 {
		// Introspection can fail before migrations have run; trust the
		// configured field list until the schema is available
		if err != nil {
			s.Logger.Warn("Column introspection failed, using configured fields",
				logger.String("table", config.Table),
				logger.String("error", err.Error()))
		}
		return config.Fields, nil
	}

	s.mu.Lock()
	s.columns[config.Table] = columns
	s.mu.Unlock()

	return columns, nil
}

// RefreshColumns re-introspects the text-like columns of every registered
// table, replacing the cache. Run from the scheduler so schema migrations
// are picked up without a restart
func (s *SearchService) RefreshColumns(ctx context.Context) error {
	fresh := make(map[string][]string)
	for name, config := range s.Registry.GetAll() {
		if err := ctx.Err(); err != nil {
			return err
		}
		columns, err := search.TextColumns(s.DB, config.Table)
		if err != nil {
			s.Logger.Warn("Failed to refresh search columns",
				logger.String("module", name),
				logger.String("table", config.Table),
				logger.String("error", err.Error()))
			continue
		}
		fresh[config.Table] = columns
	}

	s.mu.Lock()
	for table, columns := range fresh {
		s.columns[table] = columns
	}
	s.mu.Unlock()

	return nil
}

// createBasicSearchResult creates a search result from raw row data.
// Models can implement ToSearchResult for custom formatting via
// RegisterWithCustomSearch
func (s *SearchService) createBasicSearchResult(config *SearchConfig, rowData map[string]any) SearchResult {
	var id uint
	if idVal, ok := rowData["id"]; ok {
		switch v := idVal.(type) {
		case int64:
			id = uint(v)
		case uint:
			id = v
		case uint64:
			id = uint(v)
		}
	}

	// Title, subtitle and description come from the first three configured
	// fields, in order
	var title, subtitle, description string
	if len(config.Fields) > 0 {
		title = s.toString(rowData[config.Fields[0]])
	}
	if len(config.Fields) > 1 {
		subtitle = s.toString(rowData[config.Fields[1]])
	}
	if len(config.Fields) > 2 {
		description = s.toString(rowData[config.Fields[2]])
	}

	return SearchResult{
		Id:          id,
		Type:        config.Type,
		Title:       title,
		Subtitle:    subtitle,
		Description: description,
		URL:         fmt.Sprintf("/app/%s/%d", config.Name, id),
		Metadata:    rowData,
	}
}

// toString converts a raw row value to a single-line string
func (s *SearchService) toString(val any) string {
	if val == nil {
		return ""
	}
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return strings.TrimSpace(strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " "))
	}
}
