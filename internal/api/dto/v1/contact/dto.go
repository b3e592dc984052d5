package contact

// ContactRequest represents a contact form submission. Binding carries
// no required tags on purpose: the honeypot check must run before any
// field validation, so parsing is purely structural and semantic
// validation happens in the handler.
type ContactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email" validate:"omitempty"`
	Company      string `json:"company,omitempty"`
	Message      string `json:"message"`
	InterestedIn string `json:"interestedIn,omitempty"`
	// Honeypot. Bots commonly fill fields named like 'website';
	// legitimate clients leave it empty.
	Website string `json:"website,omitempty"`
}

// Fields is the validated view of a request after trimming. Field
// order matters: missing-field failures are reported before format
// failures.
type Fields struct {
	Name         string `validate:"required"`
	Email        string `validate:"required,contact_email"`
	Message      string `validate:"required"`
	Company      string
	InterestedIn string
}

// AckResponse is the public acknowledgment shape. It is returned both
// for real deliveries and for honeypot hits so automated submitters
// cannot tell the two apart.
type AckResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse carries the user-facing error message. Internal error
// detail never crosses this boundary.
type ErrorResponse struct {
	Error string `json:"error"`
}
