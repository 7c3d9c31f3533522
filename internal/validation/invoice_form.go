package validation

import (
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// InvoiceForm is the validated shape of an invoice form submission. Create
// and update share it; id and date are never taken from the client.
type InvoiceForm struct {
	CustomerID string  `validate:"required"`
	Amount     float64 `validate:"gt=0"`
	Status     string  `validate:"oneof=pending paid"`
}

// FieldErrors maps a form field key to its ordered error messages.
type FieldErrors map[string][]string

var fieldMessages = map[string]struct{ key, msg string }{
	"CustomerID": {"customerId", "Please select a customer."},
	"Amount":     {"amount", "Please enter an amount greater than $0."},
	"Status":     {"status", "Please select an invoice status."},
}

// ParseInvoiceForm applies the invoice schema to raw form input. A missing
// or non-numeric amount leaves Amount at zero, so the gt rule reports it
// under the same message as an explicit zero.
func ParseInvoiceForm(form url.Values) (InvoiceForm, FieldErrors) {
	f := InvoiceForm{
		CustomerID: form.Get("customerId"),
		Status:     form.Get("status"),
	}
	f.Amount, _ = strconv.ParseFloat(form.Get("amount"), 64)

	err := validate.Struct(f)
	if err == nil {
		return f, nil
	}

	errs := FieldErrors{}
	for _, ve := range err.(validator.ValidationErrors) {
		fm, ok := fieldMessages[ve.StructField()]
		if !ok {
			continue
		}
		errs[fm.key] = append(errs[fm.key], fm.msg)
	}
	return InvoiceForm{}, errs
}
