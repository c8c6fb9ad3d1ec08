package helpers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/josuecastillodev/ecommerce/app/utils/apperr"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func RenderError(rnd *render.Render, w http.ResponseWriter, status int, errType, message string) {
	_ = rnd.JSON(w, status, ErrorResponse{Type: errType, Message: message})
}

// RenderAppError maps err through apperr.Classify. Server errors are logged
// with op, their details never reach the client.
func RenderAppError(rnd *render.Render, w http.ResponseWriter, log *zap.Logger, op string, err error) {
	status, errType, message := apperr.Classify(err)
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", zap.Error(err))
	}
	RenderError(rnd, w, status, errType, message)
}

// RenderValidationError writes a 400 with per-field messages for validator
// failures and falls back to RenderAppError for anything else.
func RenderValidationError(rnd *render.Render, w http.ResponseWriter, log *zap.Logger, op, message string, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		RenderAppError(rnd, w, log, op, err)
		return
	}
	_ = rnd.JSON(w, http.StatusBadRequest, ErrorResponse{
		Type:    apperr.TypeInvalidData,
		Message: message,
		Errors:  FormatValidationErrors(verrs),
	})
}
