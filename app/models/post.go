package models

import (
	"fmt"
	"time"

	"scout/core/app/search"

	"gorm.io/gorm"
)

// Post represents a post entity
type Post struct {
	Id        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Title     string         `json:"title" gorm:"type:varchar(200)"`
	Slug      string         `json:"slug" gorm:"type:varchar(200);index"`
	Excerpt   string         `json:"excerpt" gorm:"type:text"`
	Content   string         `json:"content" gorm:"type:text"`
	Published bool           `json:"published"`
}

// TableName returns the table name for the Post model
func (m *Post) TableName() string {
	return "posts"
}

// GetId returns the Id of the model
func (m *Post) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Post) GetModelName() string {
	return "post"
}

// GetSearchFields returns the columns searched by the global search
func (m *Post) GetSearchFields() []string {
	return []string{"title", "excerpt", "content"}
}

// GetSearchTable returns the database table name for search
func (m *Post) GetSearchTable() string {
	return m.TableName()
}

// GetSearchType returns the search result type identifier
func (m *Post) GetSearchType() string {
	return m.GetModelName()
}

// ToSearchResult converts the post to a search result
func (m *Post) ToSearchResult() search.SearchResult {
	return search.SearchResult{
		Id:          m.Id,
		Type:        m.GetSearchType(),
		Title:       m.Title,
		Subtitle:    m.Slug,
		Description: m.Excerpt,
		URL:         fmt.Sprintf("/app/posts/%d", m.Id),
		Metadata:    m,
	}
}

// PostResponse represents the API response for Post
type PostResponse struct {
	Id        uint           `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Excerpt   string         `json:"excerpt"`
	Content   string         `json:"content"`
	Published bool           `json:"published"`
}

// PostListResponse represents the response for list operations (optimized for performance)
type PostListResponse struct {
	Id        uint           `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Excerpt   string         `json:"excerpt"`
	Published bool           `json:"published"`
}

// ToResponse converts the model to an API response
func (m *Post) ToResponse() *PostResponse {
	if m == nil {
		return nil
	}
	return &PostResponse{
		Id:        m.Id,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: m.DeletedAt,
		Title:     m.Title,
		Slug:      m.Slug,
		Excerpt:   m.Excerpt,
		Content:   m.Content,
		Published: m.Published,
	}
}

// ToListResponse converts the model to a list response (without content for fast listing)
func (m *Post) ToListResponse() *PostListResponse {
	if m == nil {
		return nil
	}
	return &PostListResponse{
		Id:        m.Id,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: m.DeletedAt,
		Title:     m.Title,
		Slug:      m.Slug,
		Excerpt:   m.Excerpt,
		Published: m.Published,
	}
}

// Preload preloads all the model's relationships
func (m *Post) Preload(db *gorm.DB) *gorm.DB {
	return db
}

// CreatePostRequest represents the request payload for creating a Post
type CreatePostRequest struct {
	Title     string `json:"title" binding:"required"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

// UpdatePostRequest represents the request payload for updating a Post
type UpdatePostRequest struct {
	Title     string `json:"title,omitempty"`
	Slug      string `json:"slug,omitempty"`
	Excerpt   string `json:"excerpt,omitempty"`
	Content   string `json:"content,omitempty"`
	Published *bool  `json:"published,omitempty"`
}
