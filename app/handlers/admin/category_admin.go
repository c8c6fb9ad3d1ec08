package admin

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/josuecastillodev/ecommerce/app/helpers"
	"github.com/josuecastillodev/ecommerce/app/repositories"
	"github.com/josuecastillodev/ecommerce/app/services"
	"github.com/josuecastillodev/ecommerce/app/utils/apperr"
)

const defaultListLimit = 50

type categoryListQuery struct {
	IsActive string `json:"is_active" validate:"omitempty,oneof=true false all"`
	Tree     string `json:"tree" validate:"omitempty,oneof=true false"`
	Offset   int    `json:"offset" validate:"min=0"`
	Limit    int    `json:"limit" validate:"min=1,max=100"`
}

type ReorderCategoriesRequest struct {
	CategoryIDs []string `json:"category_ids" validate:"min=1,dive,required"`
	ParentID    *string  `json:"parent_id"`
}

type MoveCategoryRequest struct {
	NewParentID helpers.Optional[string] `json:"new_parent_id"`
}

// scopeParam turns a query value into an id filter. The literal "null"
// selects rows where the column is NULL.
func scopeParam(value string) *repositories.NullableID {
	switch value {
	case "":
		return nil
	case "null":
		return repositories.MatchNull()
	default:
		return repositories.MatchID(value)
	}
}

// intParam parses an optional integer query value. ok is false when the value
// is present but not a number.
func intParam(value string, fallback int) (n int, ok bool) {
	if value == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := categoryListQuery{
		IsActive: q.Get("is_active"),
		Tree:     q.Get("tree"),
	}
	fieldErrors := map[string]string{}
	var ok bool
	if query.Offset, ok = intParam(q.Get("offset"), 0); !ok {
		fieldErrors["offset"] = "offset must be a number."
	}
	if query.Limit, ok = intParam(q.Get("limit"), defaultListLimit); !ok {
		fieldErrors["limit"] = "limit must be a number."
	}
	if len(fieldErrors) > 0 {
		_ = h.render.JSON(w, http.StatusBadRequest, helpers.ErrorResponse{
			Type:    apperr.TypeInvalidData,
			Message: msgInvalidQuery,
			Errors:  fieldErrors,
		})
		return
	}
	if err := h.validator.Struct(query); err != nil {
		helpers.RenderValidationError(h.render, w, h.logger, "validate category query", msgInvalidQuery, err)
		return
	}

	brandScope := scopeParam(q.Get("brand_id"))

	if query.Tree == "true" {
		var brandID *string
		if brandScope != nil {
			brandID = brandScope.ID
		}
		tree, err := h.categorySvc.GetCategoryTree(r.Context(), brandID, false)
		if err != nil {
			h.fail(w, "category tree", err)
			return
		}
		_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
			"categories": tree,
			"count":      len(tree),
		})
		return
	}

	filter := repositories.CategoryFilter{
		BrandID:  brandScope,
		ParentID: scopeParam(q.Get("parent_id")),
		Offset:   query.Offset,
		Limit:    query.Limit,
	}
	if query.IsActive == "true" || query.IsActive == "false" {
		active := query.IsActive == "true"
		filter.IsActive = &active
	}

	categories, count, err := h.categorySvc.ListCategories(r.Context(), filter, q.Get("search"))
	if err != nil {
		h.fail(w, "list categories", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
		"count":      count,
		"offset":     query.Offset,
		"limit":      query.Limit,
	})
}

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input services.CreateCategoryInput
	if !h.decode(w, r, &input) {
		return
	}

	category, err := h.categorySvc.CreateCategory(r.Context(), input)
	if err != nil {
		h.fail(w, "create category", err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"category": category})
}

func (h *AdminHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	detail, err := h.categorySvc.GetCategory(r.Context(), id)
	if err != nil {
		h.fail(w, "get category", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"category": detail})
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input services.UpdateCategoryInput
	if !h.decode(w, r, &input) {
		return
	}

	category, err := h.categorySvc.UpdateCategory(r.Context(), id, input)
	if err != nil {
		h.fail(w, "update category", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"category": category})
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.categorySvc.DeleteCategory(r.Context(), id); err != nil {
		h.fail(w, "delete category", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"id":      id,
		"object":  "category",
		"deleted": true,
	})
}

func (h *AdminHandler) MoveCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req MoveCategoryRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !req.NewParentID.Set {
		_ = h.render.JSON(w, http.StatusBadRequest, helpers.ErrorResponse{
			Type:    apperr.TypeInvalidData,
			Message: msgValidationFailed,
			Errors:  map[string]string{"new_parent_id": "new_parent_id is required."},
		})
		return
	}

	detail, err := h.categorySvc.MoveCategory(r.Context(), id, req.NewParentID.Value)
	if err != nil {
		h.fail(w, "move category", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"category": detail})
}

func (h *AdminHandler) ReorderCategories(w http.ResponseWriter, r *http.Request) {
	var req ReorderCategoriesRequest
	if !h.decode(w, r, &req) {
		return
	}

	categories, err := h.categorySvc.ReorderCategories(r.Context(), req.CategoryIDs, req.ParentID)
	if err != nil {
		h.fail(w, "reorder categories", err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
		"message":    "Categories reordered successfully",
	})
}
