package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pantry-scan/internal/core/catalog"
	"pantry-scan/internal/core/match"
	"pantry-scan/internal/core/session"
	"pantry-scan/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	dto *common.RecipeDTO
	err error
}

func (f *fakeLookup) Lookup(_ context.Context, name string) (*common.RecipeDTO, error) {
	if common.NormalizeName(name) == "" {
		return nil, common.NewValidationError("food name must not be empty")
	}
	return f.dto, f.err
}

func newRecipeRouter(t *testing.T, lookup RecipeLookup) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewStore(30*time.Minute, time.Hour)
	t.Cleanup(store.Close)

	cat := catalog.NewMemoryCatalog(nil)
	h := NewHandler(match.NewMatcher(cat), store, lookup, cat)

	r := gin.New()
	r.POST("/recipes/match", h.HandleMatch)
	r.GET("/recipes/food/:name", h.HandleFoodLookup)
	r.POST("/recipes/shopping-list", h.HandleShoppingList)
	return r, store
}

func doJSON(r *gin.Engine, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMatchWithExplicitIngredients(t *testing.T) {
	r, _ := newRecipeRouter(t, &fakeLookup{})

	w := doJSON(r, http.MethodPost, "/recipes/match", "", gin.H{
		"ingredients": []string{"chicken", "soy sauce"},
		"mode":        "partial",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "partial", resp.Mode)
	assert.NotEmpty(t, resp.Results)
}

func TestMatchUsesSession(t *testing.T) {
	r, store := newRecipeRouter(t, &fakeLookup{})

	_, err := store.AddManual("user-1", "garlic")
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/recipes/match", "user-1", gin.H{
		"use_session": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Garlic"}, resp.Input)
	assert.NotEmpty(t, resp.Results)
}

func TestMatchInvalidMode(t *testing.T) {
	r, _ := newRecipeRouter(t, &fakeLookup{})

	w := doJSON(r, http.MethodPost, "/recipes/match", "", gin.H{
		"ingredients": []string{"chicken"},
		"mode":        "fuzzy",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFoodLookup(t *testing.T) {
	lookup := &fakeLookup{dto: &common.RecipeDTO{
		Title:          "Pork Sinigang",
		SourceProvider: "themealdb",
	}}
	r, _ := newRecipeRouter(t, lookup)

	w := doJSON(r, http.MethodGet, "/recipes/food/sinigang", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp FoodLookupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sinigang", resp.FoodName)
	require.NotNil(t, resp.Recipe)
	assert.Equal(t, "themealdb", resp.Recipe.SourceProvider)
}

func TestShoppingListFromCatalogIDs(t *testing.T) {
	r, _ := newRecipeRouter(t, &fakeLookup{})

	w := doJSON(r, http.MethodPost, "/recipes/shopping-list", "", gin.H{
		"recipe_ids":       []string{"adobo"},
		"have_ingredients": []string{"garlic", "soy sauce"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ShoppingListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Items)
	for _, item := range resp.Items {
		assert.NotEqual(t, "Garlic", item.Name)
		assert.NotEqual(t, "Soy Sauce", item.Name)
		assert.False(t, item.Checked)
	}
}

func TestShoppingListUnknownRecipeID(t *testing.T) {
	r, _ := newRecipeRouter(t, &fakeLookup{})

	w := doJSON(r, http.MethodPost, "/recipes/shopping-list", "", gin.H{
		"recipe_ids": []string{"missing"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShoppingListRequiresInput(t *testing.T) {
	r, _ := newRecipeRouter(t, &fakeLookup{})

	w := doJSON(r, http.MethodPost, "/recipes/shopping-list", "", gin.H{
		"have_ingredients": []string{"garlic"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
