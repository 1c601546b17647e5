package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/posledger/pkg/errhttp"
	"github.com/ghuser/posledger/pkg/httpx"
	"github.com/ghuser/posledger/pkg/pagination"
	pkgvalidator "github.com/ghuser/posledger/pkg/validator"
	appsvcs "github.com/ghuser/posledger/services/catalog/application/services"
	"github.com/ghuser/posledger/services/catalog/domain/models"
)

// CategoryResponse is the JSON shape of a category.
type CategoryResponse struct {
	ID            uuid.UUID `json:"id"            example:"550e8400-e29b-41d4-a716-446655440000"`
	Name          string    `json:"name"          example:"Stationery"`
	Description   string    `json:"description"   example:"Pens, notebooks, and office supplies"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt" example:"2024-01-15T10:30:00Z"`
} // @name CategoryResponse

func categoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, LastUpdatedAt: c.LastUpdatedAt}
}

// CategoryRequest is the request body for category create and update.
type CategoryRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=255" example:"Stationery"`
	Description string `json:"description" validate:"max=1024"               example:"Pens, notebooks, and office supplies"`
} // @name CategoryRequest

// PostCategoryHandler handles POST /categories requests.
type PostCategoryHandler struct {
	svc *appsvcs.Services
}

// NewPostCategoryHandler returns a PostCategoryHandler backed by the given services.
func NewPostCategoryHandler(svc *appsvcs.Services) *PostCategoryHandler {
	return &PostCategoryHandler{svc: svc}
}

// Execute creates a new category.
//
//	@Summary	Create category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CategoryRequest	true	"Category"
//	@Success	201		{object}	CategoryResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/categories [post]
func (h *PostCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CategoryRequest](w, r)
	if !ok {
		return
	}
	c, err := h.svc.Category.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, categoryResponse(c))
}

// ListCategoriesHandler handles GET /categories requests.
type ListCategoriesHandler struct {
	svc *appsvcs.Services
}

// NewListCategoriesHandler returns a ListCategoriesHandler backed by the given services.
func NewListCategoriesHandler(svc *appsvcs.Services) *ListCategoriesHandler {
	return &ListCategoriesHandler{svc: svc}
}

// Execute lists categories.
//
//	@Summary	List categories
//	@Tags		categories
//	@Produce	json
//	@Param		page	query		int	false	"1-based page number"
//	@Success	200		{object}	pagination.Page[CategoryResponse]
//	@Router		/categories [get]
func (h *ListCategoriesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	cats, total, err := h.svc.Category.List(r.Context(), pagination.PageParam(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	out := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		out[i] = categoryResponse(c)
	}
	httpx.JSON(w, http.StatusOK, pagination.NewPage(out, total))
}

// PutCategoryHandler handles PUT /categories/{id} requests.
type PutCategoryHandler struct {
	svc *appsvcs.Services
}

// NewPutCategoryHandler returns a PutCategoryHandler backed by the given services.
func NewPutCategoryHandler(svc *appsvcs.Services) *PutCategoryHandler {
	return &PutCategoryHandler{svc: svc}
}

// Execute renames a category or changes its description.
//
//	@Summary	Update category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Category ID"
//	@Param		request	body		CategoryRequest	true	"Category"
//	@Success	200		{object}	CategoryResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/categories/{id} [put]
func (h *PutCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "id must be a UUID"})
		return
	}
	req, ok := pkgvalidator.ValidateRequest[CategoryRequest](w, r)
	if !ok {
		return
	}
	c, err := h.svc.Category.Update(r.Context(), id, req.Name, req.Description)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, categoryResponse(c))
}

// DeleteCategoryHandler handles DELETE /categories/{id} requests.
type DeleteCategoryHandler struct {
	svc *appsvcs.Services
}

// NewDeleteCategoryHandler returns a DeleteCategoryHandler backed by the given services.
func NewDeleteCategoryHandler(svc *appsvcs.Services) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{svc: svc}
}

// Execute deletes a category that no item references.
//
//	@Summary	Delete category
//	@Tags		categories
//	@Param		id	path	string	true	"Category ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/categories/{id} [delete]
func (h *DeleteCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "id must be a UUID"})
		return
	}
	if err := h.svc.Category.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
