package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"member-admin/internal/member/repository"
	"member-admin/internal/member/repository/memory"
	"member-admin/internal/member/usecase"
	"member-admin/internal/model"
	pkgLog "member-admin/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource []model.Member

func (s staticSource) Fetch(ctx context.Context) ([]model.Member, error) {
	out := make([]model.Member, len(s))
	copy(out, s)
	return out, nil
}

func (s staticSource) Name() string { return "static" }

func members(n int) staticSource {
	ms := make(staticSource, n)
	for i := range ms {
		role := "member"
		if i < 3 {
			role = "admin"
		}
		ms[i] = model.Member{
			ID:    fmt.Sprintf("%d", i+1),
			Name:  fmt.Sprintf("Person %d", i+1),
			Email: fmt.Sprintf("person%d@mailinator.com", i+1),
			Role:  role,
		}
	}
	return ms
}

func newTestRouter(t *testing.T, cfg usecase.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := pkgLog.NewNop()
	uc := usecase.New(l, members(25), nil, func() repository.Repository { return memory.New(l) }, cfg)
	h := New(l, uc, nil)

	r := gin.New()
	h.RegisterPages(r)
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

type envelope struct {
	ErrorCode int      `json:"error_code"`
	Message   string   `json:"message"`
	Data      viewResp `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func mountJSON(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, env := do(t, r, http.MethodPost, "/api/v1/views", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotEmpty(t, env.Data.ViewID)
	return env.Data.ViewID
}

func TestAPIMountAndPaginate(t *testing.T) {
	r := newTestRouter(t, usecase.Config{})

	w, env := do(t, r, http.MethodPost, "/api/v1/views", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, env.Data.Members, 10)
	assert.Equal(t, 3, env.Data.Pagination.TotalPages)
	assert.Equal(t, "0 of 25 row(s) selected.", env.Data.Selection.Label)
	assert.Len(t, env.Data.Controls, 7)

	id := env.Data.ViewID
	w, env = do(t, r, http.MethodPut, "/api/v1/views/"+id+"/page", goToPageReq{Page: 3})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, env.Data.Pagination.CurrentPage)
	assert.Len(t, env.Data.Members, 5)

	_, env = do(t, r, http.MethodPut, "/api/v1/views/"+id+"/page", goToPageReq{Page: 4})
	assert.Equal(t, 3, env.Data.Pagination.CurrentPage)
}

func TestAPISearch(t *testing.T) {
	r := newTestRouter(t, usecase.Config{})
	id := mountJSON(t, r)

	w, env := do(t, r, http.MethodPut, "/api/v1/views/"+id+"/search", searchReq{Query: "Admin"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, env.Data.Members, 3)
	assert.Equal(t, 1, env.Data.Pagination.TotalPages)
	assert.Equal(t, "Admin", env.Data.Query)
}

func TestAPISelectionAndDelete(t *testing.T) {
	r := newTestRouter(t, usecase.Config{})
	id := mountJSON(t, r)

	_, env := do(t, r, http.MethodPost, "/api/v1/views/"+id+"/selection/1", nil)
	assert.True(t, env.Data.Members[0].Selected)
	_, env = do(t, r, http.MethodPost, "/api/v1/views/"+id+"/selection/2", nil)
	assert.Equal(t, 2, env.Data.Selection.Count)
	assert.True(t, env.Data.Selection.CanDelete)

	_, env = do(t, r, http.MethodDelete, "/api/v1/views/"+id+"/members", nil)
	assert.Equal(t, 23, env.Data.Selection.Total)
	assert.Zero(t, env.Data.Selection.Count)
	assert.Equal(t, "3", env.Data.Members[0].ID)

	_, env = do(t, r, http.MethodPost, "/api/v1/views/"+id+"/selection/page", nil)
	assert.True(t, env.Data.Selection.PageSelected)
	_, env = do(t, r, http.MethodDelete, "/api/v1/views/"+id+"/selection", nil)
	assert.Zero(t, env.Data.Selection.Count)

	_, env = do(t, r, http.MethodDelete, "/api/v1/views/"+id+"/members/3", nil)
	assert.Equal(t, 22, env.Data.Selection.Total)

	_, env = do(t, r, http.MethodDelete, "/api/v1/views/"+id+"/page", nil)
	assert.Equal(t, 12, env.Data.Selection.Total)
}

func TestAPIEdit(t *testing.T) {
	r := newTestRouter(t, usecase.Config{})
	id := mountJSON(t, r)

	_, env := do(t, r, http.MethodPost, "/api/v1/views/"+id+"/edit/10", nil)
	assert.Equal(t, "10", env.Data.Editing)

	w, env := do(t, r, http.MethodPatch, "/api/v1/views/"+id+"/members/10", updateFieldReq{Field: "name", Value: "Alice"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice", env.Data.Members[9].Name)

	_, env = do(t, r, http.MethodPost, "/api/v1/views/"+id+"/edit/save", nil)
	assert.Empty(t, env.Data.Editing)

	_, env = do(t, r, http.MethodPut, "/api/v1/views/"+id+"/search", searchReq{Query: "alice"})
	require.Len(t, env.Data.Members, 1)
	assert.Equal(t, "10", env.Data.Members[0].ID)
}

func TestAPIErrors(t *testing.T) {
	r := newTestRouter(t, usecase.Config{ValidateEdits: true})
	id := mountJSON(t, r)

	w, env := do(t, r, http.MethodGet, "/api/v1/views/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 140001, env.ErrorCode)

	w, env = do(t, r, http.MethodPatch, "/api/v1/views/"+id+"/members/1", updateFieldReq{Field: "id", Value: "9"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 140003, env.ErrorCode)

	w, env = do(t, r, http.MethodPatch, "/api/v1/views/"+id+"/members/1", map[string]any{"value": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 140005, env.ErrorCode)

	do(t, r, http.MethodPost, "/api/v1/views/"+id+"/edit/1", nil)
	w, env = do(t, r, http.MethodPatch, "/api/v1/views/"+id+"/members/1", updateFieldReq{Field: "email", Value: "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 140004, env.ErrorCode)

	w, _ = do(t, r, http.MethodDelete, "/api/v1/views/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, r, http.MethodGet, "/api/v1/views/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestPages(t *testing.T) {
	r := newTestRouter(t, usecase.Config{})

	w := get(r, "/")
	require.Equal(t, http.StatusSeeOther, w.Code)
	loc := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(loc, "/views/"))

	w = get(r, loc)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Members List")
	assert.Contains(t, body, "0 of 25 row(s) selected.")
	assert.Contains(t, body, "Person 10")
	assert.NotContains(t, body, "Person 11")

	w = postForm(r, loc+"/search", url.Values{"query": {"admin"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, loc, w.Header().Get("Location"))

	body = get(r, loc).Body.String()
	assert.Contains(t, body, "Person 3")
	assert.NotContains(t, body, "Person 4<")

	postForm(r, loc+"/edit", url.Values{"member_id": {"2"}})
	body = get(r, loc).Body.String()
	assert.Contains(t, body, `name="email" value="person2@mailinator.com"`)

	postForm(r, loc+"/save", url.Values{"member_id": {"2"}, "name": {"Alice"}, "email": {"alice@example.com"}, "role": {"admin"}})
	body = get(r, loc).Body.String()
	assert.Contains(t, body, "Alice")
	assert.NotContains(t, body, `name="email"`)

	postForm(r, loc+"/select", url.Values{"member_id": {"1"}})
	assert.Contains(t, get(r, loc).Body.String(), "1 of 3 row(s) selected.")

	postForm(r, loc+"/delete-selected", nil)
	assert.Contains(t, get(r, loc).Body.String(), "0 of 2 row(s) selected.")

	w = postForm(r, loc+"/page", url.Values{"page": {"abc"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestPagesSaveAllFieldsWhenRowLeavesFilter(t *testing.T) {
	r := newTestRouter(t, usecase.Config{})
	loc := get(r, "/").Header().Get("Location")

	postForm(r, loc+"/search", url.Values{"query": {"person 2"}})
	postForm(r, loc+"/edit", url.Values{"member_id": {"2"}})
	w := postForm(r, loc+"/save", url.Values{"member_id": {"2"}, "name": {"Carol"}, "email": {"carol@example.com"}, "role": {"owner"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	postForm(r, loc+"/search", url.Values{"query": {"carol"}})
	body := get(r, loc).Body.String()
	assert.Contains(t, body, "carol@example.com")
	assert.Contains(t, body, "owner")
}

func TestPagesValidationError(t *testing.T) {
	r := newTestRouter(t, usecase.Config{ValidateEdits: true})
	loc := get(r, "/").Header().Get("Location")

	postForm(r, loc+"/edit", url.Values{"member_id": {"1"}})
	w := postForm(r, loc+"/save", url.Values{"member_id": {"1"}, "email": {"bad"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "error=")

	body := get(r, w.Header().Get("Location")).Body.String()
	assert.Contains(t, body, `class="error"`)
	// Still in edit mode.
	assert.Contains(t, body, `name="email"`)
}

func TestPagesUnknownView(t *testing.T) {
	r := newTestRouter(t, usecase.Config{})

	w := get(r, "/views/unknown")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = postForm(r, "/views/unknown/search", url.Values{"query": {"x"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}
