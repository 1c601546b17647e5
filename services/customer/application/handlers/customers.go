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
	appsvcs "github.com/ghuser/posledger/services/customer/application/services"
	"github.com/ghuser/posledger/services/customer/domain/models"
	"github.com/ghuser/posledger/services/customer/domain/repositories"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"customer not found"`
} // @name CustomerErrorResponse

// CustomerResponse is the JSON shape of a directory record.
type CustomerResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string    `json:"name"        example:"Nimal Perera"`
	Telephone   string    `json:"telephone"   example:"0771234567"`
	Address     string    `json:"address"     example:"12 Galle Road, Colombo"`
	IsActive    bool      `json:"isActive"    example:"true"`
	LastUpdated time.Time `json:"lastUpdated" example:"2024-01-15T10:30:00Z"`
} // @name CustomerResponse

func customerResponse(c *models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Telephone:   c.Telephone,
		Address:     c.Address,
		IsActive:    c.IsActive,
		LastUpdated: c.LastUpdated,
	}
}

// CreateCustomerRequest is the request body for POST /customers.
type CreateCustomerRequest struct {
	Name      string `json:"name"      validate:"required,min=1,max=255" example:"Nimal Perera"`
	Telephone string `json:"telephone" validate:"required,min=3,max=32"  example:"0771234567"`
	Address   string `json:"address"   validate:"required,min=1,max=512" example:"12 Galle Road, Colombo"`
} // @name CreateCustomerRequest

// PostCustomerHandler handles POST /customers requests.
type PostCustomerHandler struct {
	svc *appsvcs.Services
}

// NewPostCustomerHandler returns a PostCustomerHandler backed by the given services.
func NewPostCustomerHandler(svc *appsvcs.Services) *PostCustomerHandler {
	return &PostCustomerHandler{svc: svc}
}

// Execute registers a new customer.
//
//	@Summary	Create customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateCustomerRequest	true	"Customer"
//	@Success	201		{object}	CustomerResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/customers [post]
func (h *PostCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateCustomerRequest](w, r)
	if !ok {
		return
	}
	c, err := h.svc.Customer.Create(r.Context(), req.Name, req.Telephone, req.Address)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, customerResponse(c))
}

// GetCustomerHandler handles GET /customers/{id} requests.
type GetCustomerHandler struct {
	svc *appsvcs.Services
}

// NewGetCustomerHandler returns a GetCustomerHandler backed by the given services.
func NewGetCustomerHandler(svc *appsvcs.Services) *GetCustomerHandler {
	return &GetCustomerHandler{svc: svc}
}

// Execute retrieves one customer by ID.
//
//	@Summary	Get customer
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		string	true	"Customer ID"
//	@Success	200	{object}	CustomerResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/customers/{id} [get]
func (h *GetCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "id must be a UUID"})
		return
	}
	c, err := h.svc.Customer.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, customerResponse(c))
}

// FindByPhoneHandler handles GET /customers/phone/{telephone} requests.
type FindByPhoneHandler struct {
	svc *appsvcs.Services
}

// NewFindByPhoneHandler returns a FindByPhoneHandler backed by the given services.
func NewFindByPhoneHandler(svc *appsvcs.Services) *FindByPhoneHandler {
	return &FindByPhoneHandler{svc: svc}
}

// Execute retrieves one customer by exact telephone.
//
//	@Summary	Find customer by phone
//	@Tags		customers
//	@Produce	json
//	@Param		telephone	path		string	true	"Telephone"
//	@Success	200			{object}	CustomerResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/customers/phone/{telephone} [get]
func (h *FindByPhoneHandler) Execute(w http.ResponseWriter, r *http.Request) {
	telephone := chi.URLParam(r, "telephone")
	c, err := h.svc.Customer.FindByPhone(r.Context(), telephone)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, customerResponse(c))
}

// ListCustomersHandler handles GET /customers requests.
type ListCustomersHandler struct {
	svc *appsvcs.Services
}

// NewListCustomersHandler returns a ListCustomersHandler backed by the given services.
func NewListCustomersHandler(svc *appsvcs.Services) *ListCustomersHandler {
	return &ListCustomersHandler{svc: svc}
}

// Execute lists customers, most recently updated first.
//
//	@Summary	List customers
//	@Tags		customers
//	@Produce	json
//	@Param		page	query		int		false	"1-based page number"
//	@Param		name	query		string	false	"Name substring filter"
//	@Param		active	query		bool	false	"Active customers only"
//	@Success	200		{object}	pagination.Page[CustomerResponse]
//	@Router		/customers [get]
func (h *ListCustomersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	f := repositories.CustomerFilter{
		Name:       r.URL.Query().Get("name"),
		ActiveOnly: r.URL.Query().Get("active") == "true",
		Page:       pagination.PageParam(r),
	}
	customers, total, err := h.svc.Customer.List(r.Context(), f)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	out := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = customerResponse(c)
	}
	httpx.JSON(w, http.StatusOK, pagination.NewPage(out, total))
}

// PatchCustomerHandler handles PATCH /customers/{id} requests.
type PatchCustomerHandler struct {
	svc *appsvcs.Services
}

// NewPatchCustomerHandler returns a PatchCustomerHandler backed by the given services.
func NewPatchCustomerHandler(svc *appsvcs.Services) *PatchCustomerHandler {
	return &PatchCustomerHandler{svc: svc}
}

// Execute partially updates a customer. Omitted and empty fields keep their
// stored values.
//
//	@Summary	Patch customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Customer ID"
//	@Param		request	body		models.CustomerPatch	true	"Fields to change"
//	@Success	200		{object}	CustomerResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/customers/{id} [patch]
func (h *PatchCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "id must be a UUID"})
		return
	}
	patch, ok := pkgvalidator.ValidateRequest[models.CustomerPatch](w, r)
	if !ok {
		return
	}
	c, err := h.svc.Customer.Patch(r.Context(), id, *patch)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, customerResponse(c))
}
