package admin

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/josuecastillodev/ecommerce/app/helpers"
	"github.com/josuecastillodev/ecommerce/app/services"
	"github.com/josuecastillodev/ecommerce/app/utils/apperr"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

const (
	msgValidationFailed = "Validation failed"
	msgInvalidQuery     = "Invalid query parameters"
	msgInvalidBody      = "Request body must be a valid JSON object"
)

type AdminHandler struct {
	render      *render.Render
	validator   *validator.Validate
	categorySvc *services.CategoryService
	brandSvc    *services.BrandService
	logger      *zap.Logger
}

func NewAdminHandler(
	render *render.Render,
	validator *validator.Validate,
	categorySvc *services.CategoryService,
	brandSvc *services.BrandService,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		render:      render,
		validator:   validator,
		categorySvc: categorySvc,
		brandSvc:    brandSvc,
		logger:      logger,
	}
}

// decode reads a JSON body into dst and validates it. It writes the error
// response itself and reports whether the handler should continue.
func (h *AdminHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		helpers.RenderError(h.render, w, http.StatusBadRequest, apperr.TypeInvalidData, msgInvalidBody)
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		helpers.RenderValidationError(h.render, w, h.logger, "validate request", msgValidationFailed, err)
		return false
	}
	return true
}

func (h *AdminHandler) fail(w http.ResponseWriter, op string, err error) {
	helpers.RenderAppError(h.render, w, h.logger, op, err)
}
