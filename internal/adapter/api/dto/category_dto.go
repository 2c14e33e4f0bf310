package dto

import (
	"time"

	"github.com/rssarti/PDV-Delivery/internal/domain/category"
)

// CategoryRequest representa a requisição de categoria
type CategoryRequest struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	ParentCategoryID string `json:"parent_category_id"`
}

// CategoryResponse representa a resposta de categoria
type CategoryResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	ParentCategoryID string    `json:"parent_category_id,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CategoryListResponse representa a resposta de lista de categorias
type CategoryListResponse struct {
	Items      []CategoryResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToCategoryResponse converte uma categoria do domínio para DTO
func ToCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		ParentCategoryID: c.ParentCategoryID,
		IsActive:         c.IsActive,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// ToCategoryListResponse converte uma lista de categorias do domínio para DTO
func ToCategoryListResponse(categories []*category.Category, total, page, size int) *CategoryListResponse {
	items := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = *ToCategoryResponse(c)
	}

	return &CategoryListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
