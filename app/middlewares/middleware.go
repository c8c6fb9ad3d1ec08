package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/josuecastillodev/ecommerce/app/helpers"
	"github.com/josuecastillodev/ecommerce/app/repositories"
	"github.com/josuecastillodev/ecommerce/app/utils/apperr"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

const (
	msgBrandNotFound  = "The specified brand does not exist."
	msgBrandInactive  = "The specified brand is not active."
	msgBrandLookupErr = "Error validating the brand."
)

// BrandScopeMiddleware resolves the optional storefront brand from the
// X-Brand-Id header, falling back to the brand_id query parameter, and stores
// it in the request context. Unknown brands get 404 and inactive ones 403.
func BrandScopeMiddleware(brandRepo repositories.BrandRepositoryImpl, rnd *render.Render, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			brandID := strings.TrimSpace(r.Header.Get(helpers.BrandIDHeader))
			if brandID == "" {
				brandID = strings.TrimSpace(r.URL.Query().Get("brand_id"))
			}
			if brandID == "" {
				next.ServeHTTP(w, r)
				return
			}

			brand, err := brandRepo.GetByID(r.Context(), brandID)
			if err != nil {
				logger.Error("brand lookup failed", zap.String("brand_id", brandID), zap.Error(err))
				helpers.RenderError(rnd, w, http.StatusInternalServerError, apperr.TypeServerError, msgBrandLookupErr)
				return
			}
			if brand == nil {
				helpers.RenderError(rnd, w, http.StatusNotFound, apperr.TypeNotFound, msgBrandNotFound)
				return
			}
			if !brand.Active {
				helpers.RenderError(rnd, w, http.StatusForbidden, apperr.TypeForbidden, msgBrandInactive)
				return
			}

			next.ServeHTTP(w, r.WithContext(helpers.WithBrand(r.Context(), brand)))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// MethodOverrideMiddleware lets clients limited to POST send PUT, PATCH or
// DELETE through the X-HTTP-Method-Override header. It must wrap the router,
// since route matching happens on the rewritten method.
func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch override := strings.ToUpper(r.Header.Get("X-HTTP-Method-Override")); override {
			case http.MethodPut, http.MethodPatch, http.MethodDelete:
				r.Method = override
			}
		}
		next.ServeHTTP(w, r)
	})
}
