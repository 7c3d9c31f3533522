package handler

import (
	"encoding/json"
	"net/http"

	"invoice-dashboard-backend/internal/actions"
	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	actions   *actions.InvoiceActions
	invoices  *repository.InvoiceRepository
	customers *repository.CustomerRepository
	cache     *cache.PathCache
}

func NewInvoiceHandler(
	a *actions.InvoiceActions,
	invoices *repository.InvoiceRepository,
	customers *repository.CustomerRepository,
	pathCache *cache.PathCache,
) *InvoiceHandler {
	return &InvoiceHandler{
		actions:   a,
		invoices:  invoices,
		customers: customers,
		cache:     pathCache,
	}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form payload"})
		return
	}
	h.respond(c, h.actions.Create(c.Request.PostForm))
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form payload"})
		return
	}
	h.respond(c, h.actions.Update(c.Param("id"), c.Request.PostForm))
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	h.respond(c, h.actions.Delete(c.Param("id")))
}

// List serves the invoice listing, rendered once per revalidation cycle.
func (h *InvoiceHandler) List(c *gin.Context) {
	if payload, ok := h.cache.Get(actions.InvoicesPath); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	invoices, err := h.invoices.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load invoices"})
		return
	}

	payload, err := json.Marshal(gin.H{"invoices": invoices})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render invoices"})
		return
	}

	h.cache.Put(actions.InvoicesPath, payload)
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// Customers feeds the customer dropdown on the invoice form.
func (h *InvoiceHandler) Customers(c *gin.Context) {
	customers, err := h.customers.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// respond maps an action State onto the wire: redirect, field errors,
// database failure, or plain success.
func (h *InvoiceHandler) respond(c *gin.Context, st actions.State) {
	switch {
	case st.RedirectTo != "":
		c.Redirect(http.StatusSeeOther, st.RedirectTo)
	case st.Errors != nil:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": st.Errors, "message": st.Message})
	case st.Message != "":
		c.JSON(http.StatusInternalServerError, gin.H{"message": st.Message})
	default:
		c.Status(http.StatusNoContent)
	}
}
