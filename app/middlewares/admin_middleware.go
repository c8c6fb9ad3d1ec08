package middlewares

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/josuecastillodev/ecommerce/app/helpers"
	"github.com/josuecastillodev/ecommerce/app/utils/apperr"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

const msgUnauthorized = "A valid admin token is required."

// AdminAuthMiddleware accepts requests carrying "Authorization: Bearer <token>".
// With an empty token every request is rejected.
func AdminAuthMiddleware(token string, rnd *render.Render, logger *zap.Logger) func(http.Handler) http.Handler {
	expected := []byte(token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			given, ok := bearerToken(r)
			if !ok || len(expected) == 0 || subtle.ConstantTimeCompare([]byte(given), expected) != 1 {
				logger.Warn("admin request rejected",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				helpers.RenderError(rnd, w, http.StatusUnauthorized, apperr.TypeUnauthorized, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
