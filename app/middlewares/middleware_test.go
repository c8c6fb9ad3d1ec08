package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/josuecastillodev/ecommerce/app/helpers"
	"github.com/josuecastillodev/ecommerce/app/models"
	"github.com/josuecastillodev/ecommerce/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/unrolled/render"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubBrandRepo struct {
	repositories.BrandRepositoryImpl
	brands map[string]*models.Brand
	err    error
}

func (s *stubBrandRepo) GetByID(ctx context.Context, id string) (*models.Brand, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.brands[id], nil
}

func brandEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := helpers.BrandIDFromContext(r.Context()); id != nil {
			w.Write([]byte(*id))
			return
		}
		w.Write([]byte("none"))
	})
}

func TestBrandScopeMiddleware(t *testing.T) {
	repo := &stubBrandRepo{brands: map[string]*models.Brand{
		"active":   {ID: "active", Active: true},
		"other":    {ID: "other", Active: true},
		"inactive": {ID: "inactive", Active: false},
	}}
	handler := BrandScopeMiddleware(repo, render.New(), zap.NewNop())(brandEcho())

	tests := []struct {
		name   string
		header string
		query  string
		status int
		body   string
	}{
		{name: "no brand", status: http.StatusOK, body: "none"},
		{name: "header", header: "active", status: http.StatusOK, body: "active"},
		{name: "query", query: "other", status: http.StatusOK, body: "other"},
		{name: "header wins", header: "active", query: "other", status: http.StatusOK, body: "active"},
		{name: "unknown", query: "ghost", status: http.StatusNotFound},
		{name: "inactive", header: "inactive", status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/store/categories"
			if tt.query != "" {
				target += "?brand_id=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set(helpers.BrandIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}

	t.Run("lookup failure", func(t *testing.T) {
		failing := &stubBrandRepo{err: assert.AnError}
		h := BrandScopeMiddleware(failing, render.New(), zap.NewNop())(brandEcho())
		req := httptest.NewRequest(http.MethodGet, "/store/categories?brand_id=x", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"server_error"`)
	})
}

func TestAdminAuthMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	tests := []struct {
		name   string
		token  string
		header string
		status int
	}{
		{name: "valid", token: "s3cret", header: "Bearer s3cret", status: http.StatusNoContent},
		{name: "lowercase scheme", token: "s3cret", header: "bearer s3cret", status: http.StatusNoContent},
		{name: "wrong token", token: "s3cret", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "missing header", token: "s3cret", status: http.StatusUnauthorized},
		{name: "no configured token", token: "", header: "Bearer anything", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := AdminAuthMiddleware(tt.token, render.New(), zap.NewNop())(ok)
			req := httptest.NewRequest(http.MethodGet, "/admin/categories", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/brands", nil))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "POST", fields["method"])
		assert.Equal(t, "/admin/brands", fields["path"])
		assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	}
}

func TestMethodOverrideMiddleware(t *testing.T) {
	var got string
	h := MethodOverrideMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Method
	}))

	req := httptest.NewRequest(http.MethodPost, "/admin/categories/1", nil)
	req.Header.Set("X-HTTP-Method-Override", "delete")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, http.MethodDelete, got)

	req = httptest.NewRequest(http.MethodPost, "/admin/categories/1", nil)
	req.Header.Set("X-HTTP-Method-Override", "TRACE")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, http.MethodPost, got)

	req = httptest.NewRequest(http.MethodGet, "/admin/categories/1", nil)
	req.Header.Set("X-HTTP-Method-Override", "DELETE")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, http.MethodGet, got)
}
