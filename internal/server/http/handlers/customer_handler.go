package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/customerhub/internal/server/http/dto"
)

// CustomerHandler serves the customers resource.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// List handles GET /customers.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.facade.Customers(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomersResponse(customers))
}

// Get handles GET /customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		respondMessage(c, http.StatusNotFound, MessageCustomerNotFound)
		return
	}

	customer, err := h.facade.Customer(c.Request.Context(), id)
	if err != nil {
		respondNotFoundOr(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CustomerEnvelope{Success: true, Customer: dto.NewCustomerResponse(*customer)})
}

// Update handles PUT /customers/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		respondMessage(c, http.StatusNotFound, MessageCustomerNotFound)
		return
	}

	// An absent body clears every field, like an empty object.
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondMessage(c, http.StatusBadRequest, MessageInvalidBody)
		return
	}

	if err := h.facade.UpdateCustomer(c.Request.Context(), id, req.ToModel()); err != nil {
		respondNotFoundOr(c, err)
		return
	}
	respondMessage(c, http.StatusOK, MessageCustomerUpdated)
}

// Delete handles DELETE /customers/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		respondMessage(c, http.StatusNotFound, MessageCustomerNotFound)
		return
	}

	if err := h.facade.DeleteCustomer(c.Request.Context(), id); err != nil {
		respondNotFoundOr(c, err)
		return
	}
	respondMessage(c, http.StatusOK, MessageCustomerDeleted)
}

// Search handles GET /search?query=.
func (h *CustomerHandler) Search(c *gin.Context) {
	customers, err := h.facade.SearchCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomersResponse(customers))
}

// customerID parses the path id. Anything but a positive integer cannot address a row.
func customerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
