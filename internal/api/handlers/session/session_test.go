package session

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	coresession "pantry-scan/internal/core/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *coresession.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := coresession.NewStore(30*time.Minute, time.Hour)
	t.Cleanup(store.Close)

	h := NewHandler(store)
	r := gin.New()
	r.GET("/session/ingredients", h.HandleList)
	r.POST("/session/ingredients", h.HandleAdd)
	r.DELETE("/session/ingredients/:name", h.HandleRemove)
	r.DELETE("/session", h.HandleClear)
	return r, store
}

func doRequest(r *gin.Engine, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListEmptySession(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/session/ingredients", "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Ingredients []interface{} `json:"ingredients"`
		Count       int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Ingredients)
}

func TestMissingUserHeader(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/session/ingredients", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddAndDuplicate(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/session/ingredients", "user-1", gin.H{"name": "tomato"})
	require.Equal(t, http.StatusCreated, w.Code)

	// 重複新增回 409，階段不變
	w = doRequest(r, http.MethodPost, "/session/ingredients", "user-1", gin.H{"name": "TOMATO"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(r, http.MethodGet, "/session/ingredients", "user-1", nil)
	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}

func TestAddEmptyName(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/session/ingredients", "user-1", gin.H{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveNotFound(t *testing.T) {
	r, store := newTestRouter(t)

	// 完全沒有工作階段
	w := doRequest(r, http.MethodDelete, "/session/ingredients/tomato", "user-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 有階段但無此食材
	_, err := store.AddManual("user-1", "onion")
	require.NoError(t, err)
	w = doRequest(r, http.MethodDelete, "/session/ingredients/tomato", "user-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveAndClear(t *testing.T) {
	r, store := newTestRouter(t)

	_, err := store.AddManual("user-1", "tomato")
	require.NoError(t, err)
	_, err = store.AddManual("user-1", "onion")
	require.NoError(t, err)

	w := doRequest(r, http.MethodDelete, "/session/ingredients/Tomato", "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, store.List("user-1"), 1)

	w = doRequest(r, http.MethodDelete, "/session", "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.List("user-1"))
}
