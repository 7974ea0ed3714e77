package posts

import (
	"errors"
	"net/http"
	"strconv"

	"scout/app/models"
	"scout/core/router"
	"scout/core/types"

	"gorm.io/gorm"
)

type PostController struct {
	Service *PostService
}

func NewPostController(service *PostService) *PostController {
	return &PostController{
		Service: service,
	}
}

func (c *PostController) Routes(router *router.RouterGroup) {
	router.GET("/posts", c.List)
	router.GET("/posts/:id", c.Get)
	router.POST("/posts", c.Create)
	router.PUT("/posts/:id", c.Update)
	router.DELETE("/posts/:id", c.Delete)
}

// List godoc
// @Summary List posts
// @Description Get a paginated list of posts
// @Tags App/Post
// @Security ApiKeyAuth
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10)"
// @Param sort query string false "Field to sort by"
// @Param order query string false "Sort order (asc or desc)"
// @Success 200 {object} types.PaginatedResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /posts [get]
func (c *PostController) List(ctx *router.Context) error {
	var page, limit *int
	var sortBy, sortOrder *string

	if pageStr := ctx.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = &parsed
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = &parsed
		}
	}
	if sortStr := ctx.Query("sort"); sortStr != "" {
		sortBy = &sortStr
	}
	if orderStr := ctx.Query("order"); orderStr != "" {
		sortOrder = &orderStr
	}

	response, err := c.Service.GetAll(page, limit, sortBy, sortOrder)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch posts: " + err.Error()})
	}

	return ctx.JSON(http.StatusOK, response)
}

// Get godoc
// @Summary Get a post
// @Description Get a single post by id
// @Tags App/Post
// @Security ApiKeyAuth
// @Security BearerAuth
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} models.PostResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /posts/{id} [get]
func (c *PostController) Get(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid post id"})
	}

	item, err := c.Service.GetById(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Post not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch post: " + err.Error()})
	}

	return ctx.JSON(http.StatusOK, item.ToResponse())
}

// Create godoc
// @Summary Create a post
// @Description Create a new post
// @Tags App/Post
// @Security ApiKeyAuth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param post body models.CreatePostRequest true "Post payload"
// @Success 201 {object} models.PostResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /posts [post]
func (c *PostController) Create(ctx *router.Context) error {
	var req models.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request: " + err.Error()})
	}

	item, err := c.Service.Create(&req)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to create post: " + err.Error()})
	}

	return ctx.JSON(http.StatusCreated, item.ToResponse())
}

// Update godoc
// @Summary Update a post
// @Description Update an existing post
// @Tags App/Post
// @Security ApiKeyAuth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Post id"
// @Param post body models.UpdatePostRequest true "Post payload"
// @Success 200 {object} models.PostResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /posts/{id} [put]
func (c *PostController) Update(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid post id"})
	}

	var req models.UpdatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request: " + err.Error()})
	}

	item, err := c.Service.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Post not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to update post: " + err.Error()})
	}

	return ctx.JSON(http.StatusOK, item.ToResponse())
}

// Delete godoc
// @Summary Delete a post
// @Description Delete a post by id
// @Tags App/Post
// @Security ApiKeyAuth
// @Security BearerAuth
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} types.SuccessResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /posts/{id} [delete]
func (c *PostController) Delete(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid post id"})
	}

	if err := c.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Post not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to delete post: " + err.Error()})
	}

	return ctx.JSON(http.StatusOK, types.SuccessResponse{Message: "Post deleted"})
}
