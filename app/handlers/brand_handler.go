package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/josuecastillodev/ecommerce/app/helpers"
	"github.com/josuecastillodev/ecommerce/app/services"
	"github.com/josuecastillodev/ecommerce/app/utils/apperr"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

const storeBrandLimit = 20

type BrandHandler struct {
	svc    *services.BrandService
	render *render.Render
	logger *zap.Logger
}

func NewBrandHandler(svc *services.BrandService, r *render.Render, logger *zap.Logger) *BrandHandler {
	return &BrandHandler{svc: svc, render: r, logger: logger}
}

func (h *BrandHandler) Brands(w http.ResponseWriter, r *http.Request) {
	offset, limit := 0, storeBrandLimit
	var err error
	if v := r.URL.Query().Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil || offset < 0 {
			helpers.RenderError(h.render, w, http.StatusBadRequest, apperr.TypeInvalidData, msgInvalidQuery)
			return
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit < 1 || limit > 100 {
			helpers.RenderError(h.render, w, http.StatusBadRequest, apperr.TypeInvalidData, msgInvalidQuery)
			return
		}
	}

	brands, count, err := h.svc.ListActiveBrands(r.Context(), offset, limit)
	if err != nil {
		helpers.RenderAppError(h.render, w, h.logger, "store brands", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"brands": brands,
		"count":  count,
		"offset": offset,
		"limit":  limit,
	})
}

func (h *BrandHandler) BrandBySlug(w http.ResponseWriter, r *http.Request) {
	brand, err := h.svc.GetActiveBrandBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		helpers.RenderAppError(h.render, w, h.logger, "store brand by slug", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"brand": brand})
}
