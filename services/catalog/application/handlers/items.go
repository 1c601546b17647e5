package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/posledger/pkg/errhttp"
	"github.com/ghuser/posledger/pkg/httpx"
	"github.com/ghuser/posledger/pkg/pagination"
	pkgvalidator "github.com/ghuser/posledger/pkg/validator"
	appsvcs "github.com/ghuser/posledger/services/catalog/application/services"
	"github.com/ghuser/posledger/services/catalog/domain/models"
	"github.com/ghuser/posledger/services/catalog/domain/repositories"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

// ItemResponse is the JSON shape of a catalog item.
type ItemResponse struct {
	ID                   uuid.UUID `json:"id"                   example:"123e4567-e89b-12d3-a456-426614174000"`
	Name                 string    `json:"name"                 example:"Pilot G2 Gel Pen"`
	UnitPrice            string    `json:"unitPrice"            example:"150.00"`
	StockAvailable       int       `json:"stockAvailable"       example:"42"`
	DiscountRate         string    `json:"discountRate"         example:"10.00"`
	DiscountThresholdQty int       `json:"discountThresholdQty" example:"5"`
	CategoryID           uuid.UUID `json:"categoryId"           example:"550e8400-e29b-41d4-a716-446655440000"`
	LastUpdatedAt        time.Time `json:"lastUpdatedAt"        example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

func itemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:                   item.ID,
		Name:                 item.Name,
		UnitPrice:            item.UnitPrice.StringFixed(2),
		StockAvailable:       item.StockAvailable,
		DiscountRate:         item.DiscountRate.StringFixed(2),
		DiscountThresholdQty: item.DiscountThresholdQty,
		CategoryID:           item.CategoryID,
		LastUpdatedAt:        item.LastUpdatedAt,
	}
}

func itemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = itemResponse(item)
	}
	return out
}

// CreateItemRequest is the request body for POST /items.
type CreateItemRequest struct {
	Name                 string `json:"name"                 validate:"required,min=1,max=255"  example:"Pilot G2 Gel Pen"`
	UnitPrice            string `json:"unitPrice"            validate:"required"                example:"150.00"`
	StockAvailable       int    `json:"stockAvailable"       validate:"gte=0"                   example:"42"`
	DiscountRate         string `json:"discountRate"         validate:"omitempty"               example:"10.00"`
	DiscountThresholdQty int    `json:"discountThresholdQty" validate:"gte=0"                   example:"5"`
	CategoryID           string `json:"categoryId"           validate:"required,uuid"           example:"550e8400-e29b-41d4-a716-446655440000"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new catalog item.
//
//	@Summary		Create item
//	@Description	Creates a new catalog item with price, stock, and discount rule
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	unitPrice, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "unitPrice must be a decimal number"})
		return
	}
	discountRate := decimal.Zero
	if req.DiscountRate != "" {
		if discountRate, err = decimal.NewFromString(req.DiscountRate); err != nil {
			httpx.JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "discountRate must be a decimal number"})
			return
		}
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "categoryId must be a UUID"})
		return
	}

	item, err := h.svc.Item.Create(r.Context(), req.Name, unitPrice, req.StockAvailable, discountRate, req.DiscountThresholdQty, categoryID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, itemResponse(item))
}

// GetItemHandler handles GET /items/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute retrieves one catalog item.
//
//	@Summary	Get item
//	@Tags		items
//	@Produce	json
//	@Param		id	path		string	true	"Item ID"
//	@Success	200	{object}	ItemResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "id must be a UUID"})
		return
	}
	item, err := h.svc.Item.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, itemResponse(item))
}

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists catalog items, optionally filtered by name substring or category.
//
//	@Summary	List items
//	@Tags		items
//	@Produce	json
//	@Param		page		query		int		false	"1-based page number"
//	@Param		name		query		string	false	"Name substring filter"
//	@Param		categoryId	query		string	false	"Category filter"
//	@Success	200			{object}	pagination.Page[ItemResponse]
//	@Router		/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	f := repositories.ItemFilter{
		Name: r.URL.Query().Get("name"),
		Page: pagination.PageParam(r),
	}
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "categoryId must be a UUID"})
			return
		}
		f.CategoryID = categoryID
	}

	items, total, err := h.svc.Item.List(r.Context(), f)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, pagination.NewPage(itemResponses(items), total))
}

// UpdateItemRequest is the request body for PUT /items/{id}.
type UpdateItemRequest struct {
	Name                 string `json:"name"                 validate:"required,min=1,max=255"`
	UnitPrice            string `json:"unitPrice"            validate:"required"`
	DiscountRate         string `json:"discountRate"         validate:"omitempty"`
	DiscountThresholdQty int    `json:"discountThresholdQty" validate:"gte=0"`
	CategoryID           string `json:"categoryId"           validate:"required,uuid"`
} // @name UpdateItemRequest

// PutItemHandler handles PUT /items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute updates an item's name, price, discount rule, or category.
// Stock is never written here; use the stock endpoint.
//
//	@Summary	Update item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Item ID"
//	@Param		request	body		UpdateItemRequest	true	"Item update request"
//	@Success	200		{object}	ItemResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "id must be a UUID"})
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	current, err := h.svc.Item.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	unitPrice, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "unitPrice must be a decimal number"})
		return
	}
	discountRate := decimal.Zero
	if req.DiscountRate != "" {
		if discountRate, err = decimal.NewFromString(req.DiscountRate); err != nil {
			httpx.JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "discountRate must be a decimal number"})
			return
		}
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "categoryId must be a UUID"})
		return
	}

	// Revalidate through the constructor, then carry identity and stock over.
	updated, err := models.NewItem(req.Name, unitPrice, current.StockAvailable, discountRate, req.DiscountThresholdQty, categoryID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	updated.ID = current.ID

	if err := h.svc.Item.Update(r.Context(), updated); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, itemResponse(updated))
}

// AdjustStockRequest is the request body for PATCH /items/{id}/stock.
// Delta is signed: negative sells or writes off stock, positive restocks.
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required" example:"-3"`
} // @name AdjustStockRequest

// PatchStockHandler handles PATCH /items/{id}/stock requests.
type PatchStockHandler struct {
	svc *appsvcs.Services
}

// NewPatchStockHandler returns a PatchStockHandler backed by the given services.
func NewPatchStockHandler(svc *appsvcs.Services) *PatchStockHandler {
	return &PatchStockHandler{svc: svc}
}

// Execute applies a signed stock adjustment as one conditional write.
//
//	@Summary	Adjust stock
//	@Description	Applies stock += delta only when the result stays non-negative
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Item ID"
//	@Param		request	body		AdjustStockRequest	true	"Signed stock delta"
//	@Success	200		{object}	ItemResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/items/{id}/stock [patch]
func (h *PatchStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "id must be a UUID"})
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AdjustStockRequest](w, r)
	if !ok {
		return
	}
	item, err := h.svc.Item.AdjustStock(r.Context(), id, req.Delta)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, itemResponse(item))
}

// UpdateDiscountRequest is the request body for PATCH /items/{id}/discount.
type UpdateDiscountRequest struct {
	DiscountRate         string `json:"discountRate"         validate:"required" example:"10.00"`
	DiscountThresholdQty int    `json:"discountThresholdQty" validate:"gte=0"    example:"5"`
} // @name UpdateDiscountRequest

// PatchDiscountHandler handles PATCH /items/{id}/discount requests.
type PatchDiscountHandler struct {
	svc *appsvcs.Services
}

// NewPatchDiscountHandler returns a PatchDiscountHandler backed by the given services.
func NewPatchDiscountHandler(svc *appsvcs.Services) *PatchDiscountHandler {
	return &PatchDiscountHandler{svc: svc}
}

// Execute changes an item's discount rule.
//
//	@Summary	Update discount rule
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Item ID"
//	@Param		request	body		UpdateDiscountRequest	true	"Discount rule"
//	@Success	200		{object}	ItemResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/items/{id}/discount [patch]
func (h *PatchDiscountHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "id must be a UUID"})
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateDiscountRequest](w, r)
	if !ok {
		return
	}
	rate, err := decimal.NewFromString(req.DiscountRate)
	if err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "discountRate must be a decimal number"})
		return
	}
	if err := h.svc.Item.UpdateDiscount(r.Context(), id, rate, req.DiscountThresholdQty); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	item, err := h.svc.Item.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, itemResponse(item))
}

// ListLowStockHandler handles GET /items/low-stock requests.
type ListLowStockHandler struct {
	svc       *appsvcs.Services
	threshold int
}

// NewListLowStockHandler returns a ListLowStockHandler with the configured
// low-stock threshold.
func NewListLowStockHandler(svc *appsvcs.Services, threshold int) *ListLowStockHandler {
	return &ListLowStockHandler{svc: svc, threshold: threshold}
}

// Execute lists items with stock strictly below the configured threshold.
//
//	@Summary	List low-stock items
//	@Tags		items
//	@Produce	json
//	@Success	200	{array}	ItemResponse
//	@Router		/items/low-stock [get]
func (h *ListLowStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.ListLowStock(r.Context(), h.threshold)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, itemResponses(items))
}
