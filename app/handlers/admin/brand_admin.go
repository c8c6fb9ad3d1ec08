package admin

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/josuecastillodev/ecommerce/app/helpers"
	"github.com/josuecastillodev/ecommerce/app/models"
	"github.com/josuecastillodev/ecommerce/app/repositories"
	"github.com/josuecastillodev/ecommerce/app/services"
	"github.com/josuecastillodev/ecommerce/app/utils/apperr"
)

type brandListQuery struct {
	Active string `json:"active" validate:"omitempty,oneof=true false all"`
	Offset int    `json:"offset" validate:"min=0"`
	Limit  int    `json:"limit" validate:"min=1,max=100"`
}

func (h *AdminHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := brandListQuery{Active: q.Get("active")}
	offset, okOffset := intParam(q.Get("offset"), 0)
	limit, okLimit := intParam(q.Get("limit"), defaultListLimit)
	if !okOffset || !okLimit {
		helpers.RenderError(h.render, w, http.StatusBadRequest, apperr.TypeInvalidData, msgInvalidQuery)
		return
	}
	query.Offset, query.Limit = offset, limit
	if err := h.validator.Struct(query); err != nil {
		helpers.RenderValidationError(h.render, w, h.logger, "validate brand query", msgInvalidQuery, err)
		return
	}

	filter := repositories.BrandFilter{
		Name:   q.Get("name"),
		Offset: query.Offset,
		Limit:  query.Limit,
	}
	if query.Active == "true" || query.Active == "false" {
		active := query.Active == "true"
		filter.Active = &active
	}

	brands, count, err := h.brandSvc.ListBrands(r.Context(), filter)
	if err != nil {
		h.fail(w, "list brands", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"brands": brands,
		"count":  count,
		"offset": query.Offset,
		"limit":  query.Limit,
	})
}

func (h *AdminHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var input services.CreateBrandInput
	if !h.decode(w, r, &input) {
		return
	}

	brand, err := h.brandSvc.CreateBrand(r.Context(), input)
	if err != nil {
		h.fail(w, "create brand", err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"brand": brand})
}

func (h *AdminHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	brand, err := h.brandSvc.GetBrand(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, "get brand", err)
		return
	}
	h.renderBrand(w, brand)
}

func (h *AdminHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	var input services.UpdateBrandInput
	if !h.decode(w, r, &input) {
		return
	}

	brand, err := h.brandSvc.UpdateBrand(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		h.fail(w, "update brand", err)
		return
	}
	h.renderBrand(w, brand)
}

func (h *AdminHandler) ActivateBrand(w http.ResponseWriter, r *http.Request) {
	brand, err := h.brandSvc.ActivateBrand(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, "activate brand", err)
		return
	}
	h.renderBrand(w, brand)
}

func (h *AdminHandler) DeactivateBrand(w http.ResponseWriter, r *http.Request) {
	brand, err := h.brandSvc.DeactivateBrand(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, "deactivate brand", err)
		return
	}
	h.renderBrand(w, brand)
}

func (h *AdminHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.brandSvc.DeleteBrand(r.Context(), id); err != nil {
		h.fail(w, "delete brand", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"id":      id,
		"object":  "brand",
		"deleted": true,
	})
}

func (h *AdminHandler) renderBrand(w http.ResponseWriter, brand *models.Brand) {
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"brand": brand})
}
