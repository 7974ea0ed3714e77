package types

// ErrorResponse is the standard error payload returned by controllers
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the standard message payload for operations without a body
type SuccessResponse struct {
	Message string `json:"message"`
}

// Pagination describes the paging state of a list response
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// PaginatedResponse wraps list data with its pagination metadata
type PaginatedResponse struct {
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
