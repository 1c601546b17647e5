package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/posledger/pkg/errhttp"
	"github.com/ghuser/posledger/pkg/httpx"
	"github.com/ghuser/posledger/pkg/pagination"
	pkgvalidator "github.com/ghuser/posledger/pkg/validator"
	appsvcs "github.com/ghuser/posledger/services/sale/application/services"
	"github.com/ghuser/posledger/services/sale/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"insufficient stock"`
} // @name SaleErrorResponse

// SaleLineResponse is the JSON shape of one sale line.
type SaleLineResponse struct {
	ID             uuid.UUID `json:"id"`
	ItemID         uuid.UUID `json:"itemId"`
	ItemName       string    `json:"itemName"       example:"Pilot G2 Gel Pen"`
	CategoryID     uuid.UUID `json:"categoryId"`
	UnitPrice      string    `json:"unitPrice"      example:"100.00"`
	Qty            int       `json:"qty"            example:"5"`
	DiscountAmount string    `json:"discountAmount" example:"10.00"`
	ItemTotal      string    `json:"itemTotal"      example:"450.00"`
} // @name SaleLineResponse

// SaleResponse is the JSON shape of a sale with its lines.
type SaleResponse struct {
	ID            uuid.UUID          `json:"id"`
	CustomerID    uuid.UUID          `json:"customerId"`
	CustomerName  string             `json:"customerName,omitempty"  example:"Nimal Perera"`
	CustomerPhone string             `json:"customerPhone,omitempty" example:"0771234567"`
	SubTotal      string             `json:"subTotal"      example:"500.00"`
	TotalDiscount string             `json:"totalDiscount" example:"50.00"`
	TotalAmount   string             `json:"totalAmount"   example:"450.00"`
	Paid          string             `json:"paid"          example:"450.00"`
	Balance       string             `json:"balance"       example:"0.00"`
	SoldAt        time.Time          `json:"soldAt"`
	Lines         []SaleLineResponse `json:"lines"`
} // @name SaleResponse

func saleResponse(s *models.Sale) SaleResponse {
	lines := make([]SaleLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = SaleLineResponse{
			ID:             l.ID,
			ItemID:         l.ItemID,
			ItemName:       l.ItemName,
			CategoryID:     l.CategoryID,
			UnitPrice:      l.UnitPrice.StringFixed(2),
			Qty:            l.Qty,
			DiscountAmount: l.DiscountAmount.StringFixed(2),
			ItemTotal:      l.ItemTotal.StringFixed(2),
		}
	}
	return SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		SubTotal:      s.SubTotal.StringFixed(2),
		TotalDiscount: s.TotalDiscount.StringFixed(2),
		TotalAmount:   s.TotalAmount.StringFixed(2),
		Paid:          s.Paid.StringFixed(2),
		Balance:       s.Balance.StringFixed(2),
		SoldAt:        s.SoldAt,
		Lines:         lines,
	}
}

func saleResponses(sales []*models.Sale) []SaleResponse {
	out := make([]SaleResponse, len(sales))
	for i, s := range sales {
		out[i] = saleResponse(s)
	}
	return out
}

// SaleLineRequest is one requested line in a sale.
type SaleLineRequest struct {
	ItemID string `json:"itemId" validate:"required,uuid" example:"123e4567-e89b-12d3-a456-426614174000"`
	Qty    int    `json:"qty"    validate:"required,gt=0" example:"5"`
} // @name SaleLineRequest

// CreateSaleRequest is the request body for POST /sales. Name and address are
// required only when the telephone is new to the directory.
type CreateSaleRequest struct {
	CustomerName    string            `json:"customerName"    validate:"omitempty,max=255" example:"Nimal Perera"`
	Telephone       string            `json:"telephone"       validate:"required,min=3,max=32" example:"0771234567"`
	CustomerAddress string            `json:"customerAddress" validate:"omitempty,max=512" example:"12 Galle Road, Colombo"`
	Paid            string            `json:"paid"            validate:"required" example:"450.00"`
	Lines           []SaleLineRequest `json:"lines"           validate:"required,min=1,dive"`
} // @name CreateSaleRequest

// PostSaleHandler handles POST /sales requests.
type PostSaleHandler struct {
	svc *appsvcs.Services
}

// NewPostSaleHandler returns a PostSaleHandler backed by the given services.
func NewPostSaleHandler(svc *appsvcs.Services) *PostSaleHandler {
	return &PostSaleHandler{svc: svc}
}

// Execute records one sale atomically: customer resolution, stock decrements,
// and the ledger insert commit together or not at all.
//
//	@Summary		Create sale
//	@Description	Records a sale as one atomic transaction
//	@Tags			sales
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateSaleRequest	true	"Sale"
//	@Success		201		{object}	SaleResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/sales [post]
func (h *PostSaleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateSaleRequest](w, r)
	if !ok {
		return
	}
	paid, err := decimal.NewFromString(req.Paid)
	if err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "paid must be a decimal number"})
		return
	}

	in := appsvcs.CreateSaleInput{
		CustomerName:    req.CustomerName,
		Telephone:       req.Telephone,
		CustomerAddress: req.CustomerAddress,
		Paid:            paid,
		Lines:           make([]appsvcs.SaleLineInput, len(req.Lines)),
	}
	for i, l := range req.Lines {
		itemID, err := uuid.Parse(l.ItemID)
		if err != nil {
			httpx.JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "itemId must be a UUID"})
			return
		}
		in.Lines[i] = appsvcs.SaleLineInput{ItemID: itemID, Qty: l.Qty}
	}

	sale, err := h.svc.Sale.CreateSale(r.Context(), in)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, saleResponse(sale))
}

// GetSaleHandler handles GET /sales/{id} requests.
type GetSaleHandler struct {
	svc *appsvcs.Services
}

// NewGetSaleHandler returns a GetSaleHandler backed by the given services.
func NewGetSaleHandler(svc *appsvcs.Services) *GetSaleHandler {
	return &GetSaleHandler{svc: svc}
}

// Execute retrieves one sale with its lines.
//
//	@Summary	Get sale
//	@Tags		sales
//	@Produce	json
//	@Param		id	path		string	true	"Sale ID"
//	@Success	200	{object}	SaleResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/sales/{id} [get]
func (h *GetSaleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "id must be a UUID"})
		return
	}
	sale, err := h.svc.Sale.GetSale(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saleResponse(sale))
}

// ListSalesHandler handles GET /sales requests.
type ListSalesHandler struct {
	svc *appsvcs.Services
}

// NewListSalesHandler returns a ListSalesHandler backed by the given services.
func NewListSalesHandler(svc *appsvcs.Services) *ListSalesHandler {
	return &ListSalesHandler{svc: svc}
}

// Execute lists sales, newest first.
//
//	@Summary	List sales
//	@Tags		sales
//	@Produce	json
//	@Param		page	query		int	false	"1-based page number"
//	@Success	200		{object}	pagination.Page[SaleResponse]
//	@Router		/sales [get]
func (h *ListSalesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	sales, total, err := h.svc.Sale.ListSales(r.Context(), pagination.PageParam(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, pagination.NewPage(saleResponses(sales), total))
}

// ListRecentSalesHandler handles GET /sales/recent requests.
type ListRecentSalesHandler struct {
	svc *appsvcs.Services
}

// NewListRecentSalesHandler returns a ListRecentSalesHandler backed by the given services.
func NewListRecentSalesHandler(svc *appsvcs.Services) *ListRecentSalesHandler {
	return &ListRecentSalesHandler{svc: svc}
}

// Execute returns the latest sales without the pagination envelope.
//
//	@Summary	List recent sales
//	@Tags		sales
//	@Produce	json
//	@Param		limit	query	int	false	"Max sales to return (default 10)"
//	@Success	200		{array}	SaleResponse
//	@Router		/sales/recent [get]
func (h *ListRecentSalesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	sales, err := h.svc.Sale.ListRecent(r.Context(), limit)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saleResponses(sales))
}

// SearchSalesHandler handles GET /sales/search requests.
type SearchSalesHandler struct {
	svc *appsvcs.Services
}

// NewSearchSalesHandler returns a SearchSalesHandler backed by the given services.
func NewSearchSalesHandler(svc *appsvcs.Services) *SearchSalesHandler {
	return &SearchSalesHandler{svc: svc}
}

// Execute lists one customer's sales by exact telephone.
//
//	@Summary	Search sales by customer phone
//	@Tags		sales
//	@Produce	json
//	@Param		telephone	query		string	true	"Customer telephone"
//	@Param		page		query		int		false	"1-based page number"
//	@Success	200			{object}	pagination.Page[SaleResponse]
//	@Router		/sales/search [get]
func (h *SearchSalesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	telephone := r.URL.Query().Get("telephone")
	if telephone == "" {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "telephone query parameter is required"})
		return
	}
	sales, total, err := h.svc.Sale.SearchByPhone(r.Context(), telephone, pagination.PageParam(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, pagination.NewPage(saleResponses(sales), total))
}

// UpdatePaymentRequest is the request body for PUT /sales/{id}/payment.
type UpdatePaymentRequest struct {
	Paid string `json:"paid" validate:"required" example:"450.00"`
} // @name UpdatePaymentRequest

// PutPaymentHandler handles PUT /sales/{id}/payment requests.
type PutPaymentHandler struct {
	svc *appsvcs.Services
}

// NewPutPaymentHandler returns a PutPaymentHandler backed by the given services.
func NewPutPaymentHandler(svc *appsvcs.Services) *PutPaymentHandler {
	return &PutPaymentHandler{svc: svc}
}

// Execute updates a sale's paid amount; the balance is recomputed from the
// stored total. No other sale field changes.
//
//	@Summary	Update payment
//	@Tags		sales
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Sale ID"
//	@Param		request	body		UpdatePaymentRequest	true	"New paid amount"
//	@Success	200		{object}	SaleResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/sales/{id}/payment [put]
func (h *PutPaymentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "id must be a UUID"})
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdatePaymentRequest](w, r)
	if !ok {
		return
	}
	paid, err := decimal.NewFromString(req.Paid)
	if err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "paid must be a decimal number"})
		return
	}
	sale, err := h.svc.Sale.UpdatePayment(r.Context(), id, paid)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saleResponse(sale))
}
