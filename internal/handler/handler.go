// Package handler contains HTTP handlers for the form-ingestion API.
package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/charliemac24/myosystems/internal/apperror"
	"github.com/charliemac24/myosystems/internal/auditlog"
	"github.com/charliemac24/myosystems/internal/model"
	"github.com/charliemac24/myosystems/internal/notifier"
	"github.com/charliemac24/myosystems/internal/ratelimit"
)

type successResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Error   string              `json:"error"`
	Details []map[string]string `json:"details,omitempty"`
}

// Handler wires the submission pipeline: guard, validate, persist, notify, respond.
type Handler struct {
	log      *zap.Logger
	limiter  *ratelimit.Limiter
	audit    *auditlog.Logger
	notify   *notifier.Notifier
	validate *validator.Validate
}

// New creates a new Handler instance.
func New(log *zap.Logger, l *ratelimit.Limiter, a *auditlog.Logger, n *notifier.Notifier, v *validator.Validate) *Handler {
	return &Handler{log: log, limiter: l, audit: a, notify: n, validate: v}
}

// NewValidator builds the validator used for all form payloads. Field names in
// validation errors are the JSON names the client sent, not Go struct names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Healthz is a simple health check endpoint.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Contact receives generic contact and pricing inquiries.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	var sub model.ContactSubmission
	h.submit(w, r, &sub)
}

// AttendanceEnquiry receives product-specific attendance monitoring enquiries.
func (h *Handler) AttendanceEnquiry(w http.ResponseWriter, r *http.Request) {
	var sub model.AttendanceEnquiry
	h.submit(w, r, &sub)
}

// submit runs the shared pipeline. Only the rate limiter, decoding, validation
// and the honeypot can change the response; once a submission looks legitimate
// the user gets success regardless of persistence or delivery problems.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request, sub model.Submission) {
	addr := clientAddr(r)

	if !h.limiter.Allow(addr) {
		h.log.Warn("rate limit exceeded", zap.String("addr", addr), zap.String("path", r.URL.Path))
		h.respondError(w, http.StatusTooManyRequests, errorResponse{
			Error: "Too many requests. Please try again later.",
		})
		return
	}

	if err := json.NewDecoder(r.Body).Decode(sub); err != nil {
		h.log.Error("failed to decode json", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, errorResponse{
			Error: "invalid request payload",
		})
		return
	}

	if err := h.validate.Struct(sub); err != nil {
		h.log.Warn("validation failed", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid form data",
			Details: apperror.CustomValidationError(err),
		})
		return
	}

	if sub.Honeypot() != "" {
		// same generic body as a validation failure so bots learn nothing
		h.log.Warn("honeypot field filled", zap.String("addr", addr), zap.String("kind", sub.Kind()))
		h.respondError(w, http.StatusBadRequest, errorResponse{
			Error: "Invalid form data",
		})
		return
	}

	if err := h.audit.Append(sub, addr); err != nil {
		h.log.Error("failed to append audit record",
			zap.String("kind", sub.Kind()), zap.Error(err))
	}

	if err := h.notify.Notify(r.Context(), sub); err != nil {
		h.log.Error("failed to send notification email",
			zap.String("kind", sub.Kind()), zap.Error(err))
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(successResponse{Success: true})
}

func (h *Handler) respondError(w http.ResponseWriter, code int, body errorResponse) {
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("unable to write response stream", zap.Error(err))
	}
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
