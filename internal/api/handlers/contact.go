package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/viggen-group/viggenweb/internal/api/constants"
	contactdto "github.com/viggen-group/viggenweb/internal/api/dto/v1/contact"
	"github.com/viggen-group/viggenweb/internal/service"
	"github.com/viggen-group/viggenweb/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// User-facing messages. Everything else about a failure stays in the
// server log.
const (
	msgMissingFields    = "Missing required fields: name, email, and message are required"
	msgInvalidEmail     = "Invalid email address"
	msgNotConfigured    = "Email delivery is not configured. Please set SMTP_URL."
	msgDeliveryFailed   = "Failed to deliver message. Please try again later."
	msgInternalFailure  = "Internal server error"
	msgValidationFailed = "Invalid submission"
)

// ContactHandler runs the submission pipeline after the rate limiter
// and the parse middleware: honeypot, field validation, email-format
// validation, delivery.
type ContactHandler struct {
	mailer   service.Mailer
	validate *validator.Validate
}

// NewContactHandler creates a new contact handler
func NewContactHandler(mailer service.Mailer, validate *validator.Validate) *ContactHandler {
	return &ContactHandler{
		mailer:   mailer,
		validate: validate,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	data, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		c.JSON(http.StatusInternalServerError, contactdto.ErrorResponse{Error: msgInternalFailure})
		return
	}
	req, ok := data.(*contactdto.ContactRequest)
	if !ok {
		c.JSON(http.StatusInternalServerError, contactdto.ErrorResponse{Error: msgInternalFailure})
		return
	}

	// Honeypot spam protection: a filled 'website' field means an
	// automated submitter. Respond with plain success and deliver
	// nothing, so the bot cannot learn the field is a trap.
	if req.Website != "" {
		c.JSON(http.StatusOK, contactdto.AckResponse{OK: true})
		return
	}

	fields := contactdto.Fields{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Message:      strings.TrimSpace(req.Message),
		Company:      strings.TrimSpace(req.Company),
		InterestedIn: strings.TrimSpace(req.InterestedIn),
	}

	if err := h.validate.Struct(fields); err != nil {
		c.JSON(http.StatusBadRequest, contactdto.ErrorResponse{Error: validationMessage(err)})
		return
	}

	msg := &service.ContactMessage{
		Name:         fields.Name,
		Email:        fields.Email,
		Company:      fields.Company,
		InterestedIn: fields.InterestedIn,
		Message:      fields.Message,
	}

	if err := h.mailer.SendContactMessage(msg); err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			utils.LogError(err, "contact form delivery misconfigured")
			c.JSON(http.StatusInternalServerError, contactdto.ErrorResponse{Error: msgNotConfigured})
			return
		}
		utils.LogError(err, "contact form delivery error")
		c.JSON(http.StatusInternalServerError, contactdto.ErrorResponse{Error: msgDeliveryFailed})
		return
	}

	c.JSON(http.StatusOK, contactdto.AckResponse{OK: true})
}

// validationMessage maps validator failures to the public messages.
// Missing required fields are reported before a bad email format.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return msgValidationFailed
	}
	for _, e := range verrs {
		if e.Tag() == "required" {
			return msgMissingFields
		}
	}
	for _, e := range verrs {
		if e.Tag() == "contact_email" {
			return msgInvalidEmail
		}
	}
	return msgValidationFailed
}
