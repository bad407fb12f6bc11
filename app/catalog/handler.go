// Package catalog serves the public storefront reads.
package catalog

import (
	"net/http"

	"github.com/goshop/catalog-api/app/api"
	"github.com/goshop/catalog-api/models"
)

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      *string `json:"image"`
	CategoryID uint    `json:"category_id"`
}

type CategoryProvider interface {
	GetAllCategories() ([]models.Category, error)
}

type ProductProvider interface {
	GetAllProducts() ([]models.Product, error)
}

type CatalogHandler struct {
	categories CategoryProvider
	products   ProductProvider
}

func NewCatalogHandler(c CategoryProvider, p ProductProvider) *CatalogHandler {
	return &CatalogHandler{
		categories: c,
		products:   p,
	}
}

func (h *CatalogHandler) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.GetAllCategories()
	if err != nil {
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			ID:   c.ID,
			Name: c.Name,
		}
	}

	api.WriteJSON(w, http.StatusOK, response)
}

func (h *CatalogHandler) HandleGetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetAllProducts()
	if err != nil {
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ProductResponse{
			ID:         p.ID,
			Name:       p.Name,
			Price:      p.Price.InexactFloat64(),
			Image:      p.Image,
			CategoryID: p.CategoryID,
		}
	}

	api.WriteJSON(w, http.StatusOK, response)
}
