package actions

// InvoicesPath is the listing view that invoice mutations revalidate and
// redirect back to.
const InvoicesPath = "/dashboard/invoices"

// State is the outcome of one form action: field errors plus a summary
// message, a bare failure message, or an explicit redirect target. The
// redirect is data handed back to the transport layer, never a non-local
// exit.
type State struct {
	Errors     map[string][]string `json:"errors,omitempty"`
	Message    string              `json:"message,omitempty"`
	RedirectTo string              `json:"-"`
}

func (s State) OK() bool {
	return s.Errors == nil && s.Message == ""
}
