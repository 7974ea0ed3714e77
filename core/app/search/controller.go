package search

import (
	"net/http"
	"strconv"
	"time"

	"scout/core/router"
	"scout/core/types"
)

type SearchController struct {
	Service *SearchService
}

func NewSearchController(service *SearchService) *SearchController {
	return &SearchController{
		Service: service,
	}
}

func (c *SearchController) Routes(router *router.RouterGroup) {
	// Global search endpoint
	router.GET("/search", c.Search)
}

// Search godoc
// @Summary Global search across modules
// @Description Search across all registered searchable modules
// @Tags Global/Search
// @Security ApiKeyAuth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param q query string true "Search query (minimum 2 characters)" example("john")
// @Param modules query string false "Comma-separated modules to search" example("posts,settings")
// @Param limit query int false "Results per module (defaults to SEARCH_DEFAULT_LIMIT)" example(20)
// @Success 200 {object} search.SearchResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /search [get]
func (c *SearchController) Search(ctx *router.Context) error {
	startTime := time.Now()

	query := ctx.Query("q")
	if query == "" {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Search query (q) is required"})
	}
	if len(query) < 2 {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Search query must be at least 2 characters"})
	}

	modules := ctx.Query("modules")
	// Zero means "use the service's configured default limit"
	limit := 0
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	response, err := c.Service.GlobalSearch(query, modules, limit)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Search failed: " + err.Error()})
	}

	response.Duration = time.Since(startTime).String()

	return ctx.JSON(http.StatusOK, response)
}
