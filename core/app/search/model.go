package search

// SearchResponse groups results from a global search by module
type SearchResponse struct {
	Query    string                    `json:"query"`    // Original search query
	Total    int                       `json:"total"`    // Total results across all modules
	Results  map[string][]SearchResult `json:"results"`  // Results grouped by module
	Modules  []string                  `json:"modules"`  // Modules that were searched
	Duration string                    `json:"duration"` // Search duration
}

// SearchResult is a single hit from any searchable module
type SearchResult struct {
	Id          uint   `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Metadata    any    `json:"metadata"`
}

// SearchRequest is the query surface of the global search endpoint
type SearchRequest struct {
	Query   string `form:"q" binding:"required,min=2" example:"john"`   // Search query (minimum 2 characters)
	Modules string `form:"modules,omitempty" example:"posts,settings"`  // Comma-separated modules to search
	Limit   int    `form:"limit,omitempty" example:"20"`                // Results per module (default: 10)
}
