package controllers

import (
	"log/slog"
	"net/http"
	"net/url"

	"eventmanagement/internal/delivery/http/helpers"
	"eventmanagement/internal/domain"
	"eventmanagement/internal/metrics"
)

// Form response bodies and redirect target.
const (
	MsgContactFailed    = "Error saving contact form data"
	MsgInvitationFailed = "Error saving invitation form data"
	FormRedirect        = "/"
)

// ContactRequest is the form body for POST /submitContactForm.
type ContactRequest domain.ContactInput

// BindForm implements helpers.FormBinder.
func (r *ContactRequest) BindForm(v url.Values) {
	r.Name = v.Get("name")
	r.Email = v.Get("email")
	r.Number = v.Get("number")
	r.Subject = v.Get("subject")
	r.Message = v.Get("message")
}

// InvitationRequest is the form body for POST /invi.
type InvitationRequest domain.InvitationInput

// BindForm implements helpers.FormBinder.
func (r *InvitationRequest) BindForm(v url.Values) {
	r.Name = v.Get("name")
	r.Email = v.Get("email")
	r.Venue = v.Get("venue")
	r.Date = v.Get("date")
	r.Time = v.Get("time")
	r.Subject = v.Get("subject")
}

// ContactController handles contact-form submissions.
type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

// NewContactController creates a ContactController with the given logger and service.
func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{Logger: logger, Service: svc}
}

// Submit godoc
// @Summary Submit the contact form
// @Description Store a contact message. Identical submissions are stored as separate records.
// @Tags forms
// @Accept x-www-form-urlencoded,mpfd,json
// @Produce plain
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param number formData string false "Phone number"
// @Param subject formData string false "Subject"
// @Param message formData string true "Message"
// @Success 302 "Redirect to /"
// @Failure 400 {string} string "Invalid request body"
// @Failure 500 {string} string "Error saving contact form data"
// @Router /submitContactForm [post]
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !helpers.DecodeForm(w, r, &req) {
		return
	}
	contact, err := c.Service.Submit(r.Context(), domain.ContactInput(req))
	metrics.RecordFormSubmission("contact", err)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteText(w, http.StatusInternalServerError, MsgContactFailed)
		return
	}
	c.Logger.InfoContext(r.Context(), "contact form saved", "id", contact.ID)
	helpers.Redirect(w, r, FormRedirect)
}

// InvitationController handles invitation submissions.
type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

// NewInvitationController creates an InvitationController with the given logger and service.
func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{Logger: logger, Service: svc}
}

// Submit godoc
// @Summary Submit an invitation
// @Description Store an event invitation. All fields are required; date is YYYY-MM-DD or RFC 3339.
// @Tags forms
// @Accept x-www-form-urlencoded,mpfd,json
// @Produce plain
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param venue formData string true "Venue"
// @Param date formData string true "Date (YYYY-MM-DD)"
// @Param time formData string true "Time"
// @Param subject formData string true "Subject"
// @Success 302 "Redirect to /"
// @Failure 400 {string} string "Invalid request body"
// @Failure 500 {string} string "Error saving invitation form data"
// @Router /invi [post]
func (c *InvitationController) Submit(w http.ResponseWriter, r *http.Request) {
	var req InvitationRequest
	if !helpers.DecodeForm(w, r, &req) {
		return
	}
	inv, err := c.Service.Submit(r.Context(), domain.InvitationInput(req))
	metrics.RecordFormSubmission("invitation", err)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteText(w, http.StatusInternalServerError, MsgInvitationFailed)
		return
	}
	c.Logger.InfoContext(r.Context(), "invitation saved", "id", inv.ID)
	helpers.Redirect(w, r, FormRedirect)
}
