package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/josuecastillodev/ecommerce/app/helpers"
	"github.com/josuecastillodev/ecommerce/app/services"
	"github.com/josuecastillodev/ecommerce/app/utils/apperr"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

const msgInvalidQuery = "Invalid query parameters"

// CategoryHandler serves the storefront category endpoints. Only active
// categories are visible here.
type CategoryHandler struct {
	svc    *services.CategoryService
	render *render.Render
	logger *zap.Logger
}

func NewCategoryHandler(svc *services.CategoryService, r *render.Render, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, render: r, logger: logger}
}

func boolParam(value string, fallback bool) (bool, bool) {
	switch value {
	case "":
		return fallback, true
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func (h *CategoryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tree, okTree := boolParam(q.Get("tree"), false)
	includeGlobal, okGlobal := boolParam(q.Get("include_global"), true)
	if !okTree || !okGlobal {
		helpers.RenderError(h.render, w, http.StatusBadRequest, apperr.TypeInvalidData, msgInvalidQuery)
		return
	}

	ctx := r.Context()
	brandID := helpers.BrandIDFromContext(ctx)

	var (
		result interface{}
		count  int
		err    error
	)
	switch {
	case brandID != nil && includeGlobal && tree:
		t, e := h.svc.GetCategoryTreeForBrand(ctx, *brandID)
		result, count, err = t, len(t), e
	case brandID != nil && includeGlobal:
		list, e := h.svc.GetCategoriesForBrand(ctx, *brandID)
		result, count, err = list, len(list), e
	case tree:
		t, e := h.svc.GetCategoryTree(ctx, brandID, true)
		result, count, err = t, len(t), e
	default:
		list, e := h.svc.ListActiveCategories(ctx, brandID)
		result, count, err = list, len(list), e
	}
	if err != nil {
		helpers.RenderAppError(h.render, w, h.logger, "store categories", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"categories": result,
		"count":      count,
	})
}

func (h *CategoryHandler) CategoryBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	detail, err := h.svc.GetStoreCategoryBySlug(r.Context(), slug, helpers.BrandIDFromContext(r.Context()))
	if err != nil {
		helpers.RenderAppError(h.render, w, h.logger, "store category by slug", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"category": detail})
}
