// Package products implements the admin product endpoints. Create and
// update accept multipart form data so an image file can travel with the
// other fields.
package products

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/goshop/catalog-api/app/api"
	"github.com/goshop/catalog-api/models"
)

// multipartMemory is the in-memory parse threshold; larger parts spill to
// temp files. The request body itself is capped by the transport layer.
const multipartMemory = 8 << 20

type ProductResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      *string `json:"image"`
	CategoryID uint    `json:"category_id"`
}

type ProductProvider interface {
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Save(product *models.Product) error
	Delete(product *models.Product) error
}

type ImageStore interface {
	Save(src io.Reader, originalName string, productID uint) (string, error)
	Remove(productID uint)
}

type ProductHandler struct {
	repo   ProductProvider
	images ImageStore
}

func NewProductHandler(r ProductProvider, images ImageStore) *ProductHandler {
	return &ProductHandler{
		repo:   r,
		images: images,
	}
}

func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.Error(w, http.StatusNotFound, err.Error())
			return
		}
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, toResponse(product))
}

// HandleCreate inserts the product first, so the generated id is available
// to name the image file, then attaches the image in a second commit.
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	name := r.FormValue("name")
	priceStr := r.FormValue("price")
	categoryStr := r.FormValue("category_id")

	if name == "" || priceStr == "" || categoryStr == "" {
		api.Error(w, http.StatusBadRequest, "name, price and category_id are required")
		return
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	categoryID, err := strconv.ParseUint(categoryStr, 10, 32)
	if err != nil {
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	product := &models.Product{
		Name:       name,
		Price:      price,
		CategoryID: uint(categoryID),
	}
	if err := h.repo.Create(product); err != nil {
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if file, header, err := r.FormFile("image"); err == nil && header.Filename != "" {
		defer file.Close()

		path, err := h.images.Save(file, header.Filename, product.ID)
		if err != nil {
			api.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if path != "" {
			product.Image = &path
			if err := h.repo.Save(product); err != nil {
				api.Error(w, http.StatusInternalServerError, err.Error())
				return
			}
		}
	}

	api.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Product added successfully",
		"product": toResponse(product),
	})
}

// HandleUpdate applies partial updates: only fields present in the form
// overwrite the stored values.
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.Error(w, http.StatusNotFound, err.Error())
			return
		}
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	if name := r.FormValue("name"); name != "" {
		product.Name = name
	}
	if priceStr := r.FormValue("price"); priceStr != "" {
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			api.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		product.Price = price
	}
	if categoryStr := r.FormValue("category_id"); categoryStr != "" {
		categoryID, err := strconv.ParseUint(categoryStr, 10, 32)
		if err != nil {
			api.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		product.CategoryID = uint(categoryID)
	}

	if file, header, err := r.FormFile("image"); err == nil && header.Filename != "" {
		defer file.Close()

		// The replacement may carry a different extension, so the old file
		// is removed first rather than relying on the overwrite.
		h.images.Remove(product.ID)

		path, err := h.images.Save(file, header.Filename, product.ID)
		if err != nil {
			api.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if path != "" {
			product.Image = &path
		}
	}

	if err := h.repo.Save(product); err != nil {
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Product updated successfully",
	})
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.Error(w, http.StatusNotFound, err.Error())
			return
		}
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Best effort; a leftover file never blocks the row delete.
	h.images.Remove(product.ID)

	if err := h.repo.Delete(product); err != nil {
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Product deleted successfully",
	})
}

func toResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price.InexactFloat64(),
		Image:      p.Image,
		CategoryID: p.CategoryID,
	}
}

func parseID(r *http.Request) (uint, error) {
	id64, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id64), nil
}
