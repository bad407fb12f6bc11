package categories

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goshop/catalog-api/models"
)

// --- Mock Repository ---

type MockCategoryRepo struct {
	Categories []models.Category

	ListErr   error
	CreateErr error
	SaveErr   error
	DeleteErr error

	LastCreated *models.Category
	LastSaved   *models.Category
	LastDeleted *models.Category
}

func (m *MockCategoryRepo) GetAllCategories() ([]models.Category, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Categories, nil
}

func (m *MockCategoryRepo) GetByID(id uint) (*models.Category, error) {
	for i := range m.Categories {
		if m.Categories[i].ID == id {
			c := m.Categories[i]
			return &c, nil
		}
	}
	return nil, models.ErrCategoryNotFound
}

func (m *MockCategoryRepo) FindByName(name string) (*models.Category, error) {
	for i := range m.Categories {
		if m.Categories[i].Name == name {
			c := m.Categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepo) FindByNameExcluding(name string, id uint) (*models.Category, error) {
	for i := range m.Categories {
		if m.Categories[i].Name == name && m.Categories[i].ID != id {
			c := m.Categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepo) Create(category *models.Category) error {
	m.LastCreated = category
	if m.CreateErr != nil {
		return m.CreateErr
	}
	category.ID = uint(len(m.Categories) + 1)
	return nil
}

func (m *MockCategoryRepo) Save(category *models.Category) error {
	m.LastSaved = category
	return m.SaveErr
}

func (m *MockCategoryRepo) DeleteWithProducts(category *models.Category) error {
	m.LastDeleted = category
	return m.DeleteErr
}

// --- Tests ---

func TestHandleList(t *testing.T) {
	testCases := []struct {
		name               string
		repo               *MockCategoryRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Success with multiple categories",
			repo: &MockCategoryRepo{
				Categories: []models.Category{
					{ID: 1, Name: "Drinks"},
					{ID: 2, Name: "Snacks"},
				},
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []CategoryResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 2)
				assert.Equal(t, uint(1), resp[0].ID)
				assert.Equal(t, "Snacks", resp[1].Name)
			},
		},
		{
			name:               "Success with empty list",
			repo:               &MockCategoryRepo{},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []CategoryResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 0)
			},
		},
		{
			name:               "Repository error",
			repo:               &MockCategoryRepo{ListErr: errors.New("db down")},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewCategoryHandler(tc.repo)
			req := httptest.NewRequest("GET", "/api/admin/categories", nil)
			rec := httptest.NewRecorder()

			handler.HandleList(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

func TestHandleCreate(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		repo               *MockCategoryRepo
		expectedStatusCode int
		checkRepoCall      func(t *testing.T, repo *MockCategoryRepo)
	}{
		{
			name:               "Success",
			requestBody:        `{"name":"Drinks"}`,
			repo:               &MockCategoryRepo{},
			expectedStatusCode: http.StatusCreated,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.NotNil(t, repo.LastCreated)
				assert.Equal(t, "Drinks", repo.LastCreated.Name)
			},
		},
		{
			name:               "Invalid JSON body",
			requestBody:        `{invalid json`,
			repo:               &MockCategoryRepo{},
			expectedStatusCode: http.StatusBadRequest,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Nil(t, repo.LastCreated)
			},
		},
		{
			name:               "Missing name",
			requestBody:        `{}`,
			repo:               &MockCategoryRepo{},
			expectedStatusCode: http.StatusBadRequest,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Nil(t, repo.LastCreated)
			},
		},
		{
			name:        "Duplicate name",
			requestBody: `{"name":"Drinks"}`,
			repo: &MockCategoryRepo{
				Categories: []models.Category{{ID: 1, Name: "Drinks"}},
			},
			expectedStatusCode: http.StatusBadRequest,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Nil(t, repo.LastCreated, "Create must not run for a duplicate name")
			},
		},
		{
			name:               "Repository error on create",
			requestBody:        `{"name":"Toys"}`,
			repo:               &MockCategoryRepo{CreateErr: errors.New("insert failed")},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewCategoryHandler(tc.repo)
			req := httptest.NewRequest("POST", "/api/admin/categories", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.HandleCreate(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, tc.repo)
			}
		})
	}
}

func TestHandleCreateReturnsNewCategory(t *testing.T) {
	repo := &MockCategoryRepo{}
	handler := NewCategoryHandler(repo)
	req := httptest.NewRequest("POST", "/api/admin/categories", strings.NewReader(`{"name":"Drinks"}`))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message  string           `json:"message"`
		Category CategoryResponse `json:"category"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Category added successfully", resp.Message)
	assert.Equal(t, uint(1), resp.Category.ID)
	assert.Equal(t, "Drinks", resp.Category.Name)
}

func TestHandleUpdate(t *testing.T) {
	existing := []models.Category{
		{ID: 1, Name: "Drinks"},
		{ID: 2, Name: "Snacks"},
	}

	testCases := []struct {
		name               string
		id                 string
		requestBody        string
		repo               *MockCategoryRepo
		expectedStatusCode int
		checkRepoCall      func(t *testing.T, repo *MockCategoryRepo)
	}{
		{
			name:               "Rename",
			id:                 "1",
			requestBody:        `{"name":"Beverages"}`,
			repo:               &MockCategoryRepo{Categories: existing},
			expectedStatusCode: http.StatusOK,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.NotNil(t, repo.LastSaved)
				assert.Equal(t, "Beverages", repo.LastSaved.Name)
			},
		},
		{
			name:               "Rename to own current name succeeds",
			id:                 "1",
			requestBody:        `{"name":"Drinks"}`,
			repo:               &MockCategoryRepo{Categories: existing},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "Rename to another category's name",
			id:                 "1",
			requestBody:        `{"name":"Snacks"}`,
			repo:               &MockCategoryRepo{Categories: existing},
			expectedStatusCode: http.StatusBadRequest,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Nil(t, repo.LastSaved)
			},
		},
		{
			name:               "Not found",
			id:                 "99",
			requestBody:        `{"name":"Beverages"}`,
			repo:               &MockCategoryRepo{Categories: existing},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "Missing name",
			id:                 "1",
			requestBody:        `{}`,
			repo:               &MockCategoryRepo{Categories: existing},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Invalid id",
			id:                 "abc",
			requestBody:        `{"name":"Beverages"}`,
			repo:               &MockCategoryRepo{Categories: existing},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewCategoryHandler(tc.repo)
			req := httptest.NewRequest("PUT", "/api/admin/categories/"+tc.id, strings.NewReader(tc.requestBody))
			req.SetPathValue("id", tc.id)
			rec := httptest.NewRecorder()

			handler.HandleUpdate(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, tc.repo)
			}
		})
	}
}

func TestHandleDelete(t *testing.T) {
	testCases := []struct {
		name               string
		id                 string
		repo               *MockCategoryRepo
		expectedStatusCode int
		checkRepoCall      func(t *testing.T, repo *MockCategoryRepo)
	}{
		{
			name: "Success deletes category with its products",
			id:   "1",
			repo: &MockCategoryRepo{
				Categories: []models.Category{{ID: 1, Name: "Drinks"}},
			},
			expectedStatusCode: http.StatusOK,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.NotNil(t, repo.LastDeleted)
				assert.Equal(t, uint(1), repo.LastDeleted.ID)
			},
		},
		{
			name:               "Not found",
			id:                 "99",
			repo:               &MockCategoryRepo{},
			expectedStatusCode: http.StatusNotFound,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Nil(t, repo.LastDeleted)
			},
		},
		{
			name: "Repository error",
			id:   "1",
			repo: &MockCategoryRepo{
				Categories: []models.Category{{ID: 1, Name: "Drinks"}},
				DeleteErr:  errors.New("delete failed"),
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewCategoryHandler(tc.repo)
			req := httptest.NewRequest("DELETE", "/api/admin/categories/"+tc.id, nil)
			req.SetPathValue("id", tc.id)
			rec := httptest.NewRecorder()

			handler.HandleDelete(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, tc.repo)
			}
		})
	}
}
