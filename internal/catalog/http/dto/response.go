// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	"github.com/portalaudio/cms/internal/catalog/domain"
)

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MapCategoryToResponse converts a domain category to an API response.
func MapCategoryToResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		ImageURL:    category.ImageURL,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// ListCategoriesResponse represents a paginated list of categories in API responses.
type ListCategoriesResponse struct {
	Data []CategoryResponse `json:"data"`
}

// MapCategoriesToListResponse converts a slice of domain categories to a list API response.
func MapCategoriesToListResponse(categories []*domain.Category) ListCategoriesResponse {
	categoryResponses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		categoryResponses = append(categoryResponses, MapCategoryToResponse(category))
	}
	return ListCategoriesResponse{
		Data: categoryResponses,
	}
}

// CategorySummary is the compact category shape embedded in product responses.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Slug           string           `json:"slug"`
	Category       *CategorySummary `json:"category,omitempty"`
	Description    string           `json:"description"`
	Specifications map[string]any   `json:"specifications"`
	Price          *float64         `json:"price"`
	Brand          string           `json:"brand"`
	Origin         string           `json:"origin"`
	Availability   string           `json:"availability"`
	Images         []string         `json:"images"`
	Featured       bool             `json:"featured"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// MapProductToResponse converts a domain product to an API response.
func MapProductToResponse(product *domain.Product) ProductResponse {
	response := ProductResponse{
		ID:             product.ID.String(),
		Name:           product.Name,
		Slug:           product.Slug,
		Description:    product.Description,
		Specifications: product.Specifications,
		Price:          product.Price,
		Brand:          product.Brand,
		Origin:         product.Origin,
		Availability:   product.Availability,
		Images:         product.Images,
		Featured:       product.Featured,
		CreatedAt:      product.CreatedAt,
		UpdatedAt:      product.UpdatedAt,
	}
	if response.Specifications == nil {
		response.Specifications = map[string]any{}
	}
	if response.Images == nil {
		response.Images = []string{}
	}
	if product.Category != nil {
		response.Category = &CategorySummary{
			ID:   product.Category.ID.String(),
			Name: product.Category.Name,
			Slug: product.Category.Slug,
		}
	}
	return response
}

// ListProductsResponse represents a paginated list of products in API responses.
type ListProductsResponse struct {
	Data []ProductResponse `json:"data"`
}

// MapProductsToListResponse converts a slice of domain products to a list API response.
func MapProductsToListResponse(products []*domain.Product) ListProductsResponse {
	productResponses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		productResponses = append(productResponses, MapProductToResponse(product))
	}
	return ListProductsResponse{
		Data: productResponses,
	}
}
