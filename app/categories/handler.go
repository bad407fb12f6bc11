// Package categories implements the admin category endpoints.
package categories

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/goshop/catalog-api/app/api"
	"github.com/goshop/catalog-api/models"
)

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CategoryProvider interface {
	GetAllCategories() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	FindByName(name string) (*models.Category, error)
	FindByNameExcluding(name string, id uint) (*models.Category, error)
	Create(category *models.Category) error
	Save(category *models.Category) error
	DeleteWithProducts(category *models.Category) error
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories()
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

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Name == "" {
		api.Error(w, http.StatusBadRequest, "missing category name")
		return
	}

	existing, err := h.repo.FindByName(input.Name)
	if err != nil {
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if existing != nil {
		api.Error(w, http.StatusBadRequest, "a category with this name already exists")
		return
	}

	category := &models.Category{Name: input.Name}
	if err := h.repo.Create(category); err != nil {
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Category added successfully",
		"category": CategoryResponse{
			ID:   category.ID,
			Name: category.Name,
		},
	})
}

func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var input struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Name == "" {
		api.Error(w, http.StatusBadRequest, "missing category name")
		return
	}

	category, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			api.Error(w, http.StatusNotFound, err.Error())
			return
		}
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	// A category may keep its current name; only other categories count as
	// duplicates.
	existing, err := h.repo.FindByNameExcluding(input.Name, id)
	if err != nil {
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if existing != nil {
		api.Error(w, http.StatusBadRequest, "a category with this name already exists")
		return
	}

	category.Name = input.Name
	if err := h.repo.Save(category); err != nil {
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Category updated successfully",
	})
}

func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid category id")
		return
	}

	category, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			api.Error(w, http.StatusNotFound, err.Error())
			return
		}
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.repo.DeleteWithProducts(category); err != nil {
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Category and its products deleted successfully",
	})
}

func parseID(r *http.Request) (uint, error) {
	id64, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id64), nil
}
