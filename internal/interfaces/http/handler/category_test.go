package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/infrastructure/persistence/models"
	"github.com/inventorydb/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) createCategory(t *testing.T, token, name, code string) CategoryResponse {
	t.Helper()
	w := e.do(t, http.MethodPost, "/admin/category", token, map[string]string{
		"name":        name,
		"code":        code,
		"description": name + " items",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp CategoryResponse
	decode(t, w, &resp)
	return resp
}


func TestCategoryHandler_CRUD(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	created := env.createCategory(t, token, "Tools", "TL")
	assert.Equal(t, "Tools", created.Name)
	assert.Equal(t, "TL", created.Code)
	assert.Empty(t, created.Products)

	w := env.do(t, http.MethodGet, "/admin/category_by_id/"+created.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, []any{}, raw["products"])

	w = env.do(t, http.MethodGet, "/admin/category_by_name/Tools", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPut, "/admin/category/"+created.ID.String(), token, map[string]string{
		"description": "Hand tools",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated CategoryResponse
	decode(t, w, &updated)
	assert.Equal(t, "Tools", updated.Name)
	assert.Equal(t, "Hand tools", updated.Description)

	env.createCategory(t, token, "Books", "BK")
	w = env.do(t, http.MethodGet, "/admin/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []CategoryResponse
	decode(t, w, &list)
	assert.Len(t, list, 2)
}

func TestCategoryHandler_NotFound(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()

	w := env.do(t, http.MethodGet, "/admin/category_by_id/"+id.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Category with identifier "+id.String()+" not found", detailOf(t, w))

	w = env.do(t, http.MethodGet, "/admin/category_by_name/Missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Category with identifier Missing not found", detailOf(t, w))
}

func TestCategoryHandler_MalformedID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/admin/category_by_id/not-a-uuid", "", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.ValidationErrorResponse
	decode(t, w, &resp)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, []string{"path", "id"}, resp.Errors[0].Loc)
}

func TestCategoryHandler_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)
	env.createCategory(t, token, "Tools", "TL")

	w := env.do(t, http.MethodPost, "/admin/category", token, map[string]string{
		"name": "Tools", "code": "T2", "description": "again",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodPost, "/admin/category", token, map[string]string{
		"name": "Other", "code": "TL", "description": "again",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCategoryHandler_WritesRequireAuth(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.NewString()

	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, "/admin/category", map[string]string{"name": "Tools", "code": "TL", "description": "x"}},
		{http.MethodPut, "/admin/category/" + id, map[string]string{"name": "Tools"}},
		{http.MethodDelete, "/admin/category/" + id, nil},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			w := env.do(t, tt.method, tt.path, "", tt.body)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	w := env.do(t, http.MethodGet, "/admin/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCategoryHandler_DeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	tools := env.createCategory(t, token, "Tools", "TL")
	hammer := env.createProduct(t, token, tools.ID, "Hammer", "HAM-1", "12.50")
	w := env.do(t, http.MethodPost, "/admin/inventory", token, map[string]any{
		"product_id": hammer.ID, "country": "NG", "quantity": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.do(t, http.MethodDelete, "/admin/category/"+tools.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"detail":"success"}`, w.Body.String())

	w = env.do(t, http.MethodGet, "/admin/product_by_id/"+hammer.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var n int64
	require.NoError(t, env.db.DB.Model(&models.InventoryModel{}).Count(&n).Error)
	assert.Zero(t, n)

	w = env.do(t, http.MethodDelete, "/admin/category/"+tools.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
