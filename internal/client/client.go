// Package client implements the submission side of the contact form:
// local field validation, the honeypot pre-check, and result mapping.
// The CLI wraps it; anything embedding the form can reuse it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	contactdto "github.com/viggen-group/viggenweb/internal/api/dto/v1/contact"
	"github.com/viggen-group/viggenweb/internal/api/validation"
)

// User-facing messages, matching the website form.
const (
	MsgNameRequired    = "Please enter your name."
	MsgEmailRequired   = "Please enter your email."
	MsgEmailInvalid    = "Please enter a valid email address."
	MsgMessageRequired = "Please enter a message."
	MsgSent            = "Thanks — your message has been sent."
	MsgReceived        = "Thanks — we will be in touch shortly."
	MsgNetworkError    = "Network error. Please check your connection."
	MsgGenericError    = "Something went wrong. Please try again later."
)

// Draft is an in-progress submission.
type Draft struct {
	Name         string
	Email        string
	Company      string
	InterestedIn string
	Message      string
	// Website is the honeypot; a human never fills it.
	Website string
}

// Result is the outcome shown to the user.
type Result struct {
	OK      bool
	Message string
}

// Client submits contact drafts to the website backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL, e.g.
// https://viggen.example.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Validate checks the draft locally and returns the first failing
// check's message, or "" when the draft is valid. Check order: name,
// email present, email format, message.
func Validate(d Draft) string {
	if strings.TrimSpace(d.Name) == "" {
		return MsgNameRequired
	}
	email := strings.TrimSpace(d.Email)
	if email == "" {
		return MsgEmailRequired
	}
	if !validation.IsValidEmail(email) {
		return MsgEmailInvalid
	}
	if strings.TrimSpace(d.Message) == "" {
		return MsgMessageRequired
	}
	return ""
}

// Submit sends the draft to the backend and maps the outcome to a
// user-facing result. A filled honeypot fabricates success without a
// network call, so an automated filler sees nothing unusual. The
// returned error covers request-construction failures only; transport
// and server failures land in the Result.
func (c *Client) Submit(ctx context.Context, d Draft) (*Result, error) {
	if strings.TrimSpace(d.Website) != "" {
		return &Result{OK: true, Message: MsgReceived}, nil
	}

	payload := contactdto.ContactRequest{
		Name:         strings.TrimSpace(d.Name),
		Email:        strings.TrimSpace(d.Email),
		Company:      strings.TrimSpace(d.Company),
		InterestedIn: d.InterestedIn,
		Message:      strings.TrimSpace(d.Message),
		Website:      d.Website,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contact", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Result{OK: false, Message: MsgNetworkError}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Result{OK: true, Message: MsgSent}, nil
	}

	// Surface the server's reported message when it sent one
	var serverErr contactdto.ErrorResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&serverErr); decodeErr == nil && serverErr.Error != "" {
		return &Result{OK: false, Message: serverErr.Error}, nil
	}
	return &Result{OK: false, Message: MsgGenericError}, nil
}
