package actions

import (
	"encoding/json"
	"log"
	"math"
	"net/url"
	"time"

	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/validation"

	"gorm.io/datatypes"
)

type InvoiceActions struct {
	invoices    *repository.InvoiceRepository
	audits      *repository.AuditLogRepository
	revalidator cache.Revalidator
}

func NewInvoiceActions(
	invoices *repository.InvoiceRepository,
	audits *repository.AuditLogRepository,
	revalidator cache.Revalidator,
) *InvoiceActions {
	return &InvoiceActions{
		invoices:    invoices,
		audits:      audits,
		revalidator: revalidator,
	}
}

// Create validates the form, inserts the invoice with the amount in cents
// and the current UTC day, and redirects back to the listing. Validation
// failures never reach the database.
func (a *InvoiceActions) Create(form url.Values) State {
	parsed, fieldErrs := validation.ParseInvoiceForm(form)
	if fieldErrs != nil {
		return State{Errors: fieldErrs, Message: "Missing Fields. Failed to Create Invoice."}
	}

	invoice := &models.Invoice{
		CustomerID: parsed.CustomerID,
		Amount:     toCents(parsed.Amount),
		Status:     parsed.Status,
		Date:       time.Now().UTC().Format("2006-01-02"),
	}
	if err := a.invoices.Create(invoice); err != nil {
		return State{Message: "Database Error: Failed to Create Invoice."}
	}

	a.audit("create", invoice.ID.String(), form)
	a.revalidator.RevalidatePath(InvoicesPath)
	return State{RedirectTo: InvoicesPath}
}

// Update validates through the same schema as Create and rewrites
// customer_id, amount and status for the given id. An id that matches no
// row still counts as success and redirects.
func (a *InvoiceActions) Update(id string, form url.Values) State {
	parsed, fieldErrs := validation.ParseInvoiceForm(form)
	if fieldErrs != nil {
		return State{Errors: fieldErrs, Message: "Missing Fields. Failed to Update Invoice."}
	}

	if err := a.invoices.UpdateFields(id, parsed.CustomerID, toCents(parsed.Amount), parsed.Status); err != nil {
		return State{Message: "Database Error: Failed to Update Invoice."}
	}

	a.audit("update", id, form)
	a.revalidator.RevalidatePath(InvoicesPath)
	return State{RedirectTo: InvoicesPath}
}

// Delete removes the invoice and revalidates the listing. No redirect: the
// delete form lives inside the listing view itself.
func (a *InvoiceActions) Delete(id string) State {
	if err := a.invoices.Delete(id); err != nil {
		return State{Message: "Database Error: Failed to Delete Invoice."}
	}

	a.audit("delete", id, nil)
	a.revalidator.RevalidatePath(InvoicesPath)
	return State{}
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// audit is best-effort; a failed write must not fail the action.
func (a *InvoiceActions) audit(action, invoiceID string, form url.Values) {
	payload, err := json.Marshal(form)
	if err != nil {
		payload = nil
	}
	entry := &models.ActionAuditLog{
		Action:    action,
		InvoiceID: invoiceID,
		Form:      datatypes.JSON(payload),
	}
	if err := a.audits.Create(entry); err != nil {
		log.Println("audit log write failed:", err)
	}
}
