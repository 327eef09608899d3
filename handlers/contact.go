package handlers

import (
	"context"
	"errors"
	"net/http"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ynot-advisory/landing/metrics"
	"github.com/ynot-advisory/landing/models"
	"github.com/ynot-advisory/landing/operations"
	"github.com/ynot-advisory/landing/validators"
	"github.com/ynot-advisory/landing/views"
)

const (
	channelAPI  = "api"
	channelForm = "form"
)

// Handler serves the landing page and the contact endpoints.
type Handler struct {
	BasePath         string
	TurnstileSiteKey string
	Submitter        operations.Submitter
	Verifier         validators.Verifier
	Metrics          *metrics.ContactMetrics
	Logger           *zap.Logger
}

func (h *Handler) formAction() string {
	return path.Join(h.BasePath, "contact")
}

// submit runs a decoded submission through captcha, validation and the
// submitter. The returned outcome is one of the metrics.Outcome values.
func (h *Handler) submit(ctx context.Context, sub models.ContactSubmission, ip, channel string) (operations.Result, string, error) {
	if errs := validators.ValidateSubmission(sub); errs != nil {
		return operations.Result{}, metrics.OutcomeInvalid, errs
	}

	if h.Verifier != nil {
		if err := h.Verifier.Verify(ctx, sub.TurnstileToken, ip); err != nil {
			return operations.Result{}, metrics.OutcomeRejected, err
		}
	}

	start := time.Now()
	res, err := h.Submitter.Submit(ctx, sub, operations.Meta{RemoteIP: ip})
	h.Metrics.ObserveSubmitLatency(h.Submitter.Mode(), time.Since(start).Seconds())
	if err != nil {
		h.Logger.Error("contact submission failed", zap.String("channel", channel), zap.Error(err))
		return operations.Result{}, metrics.OutcomeFailed, err
	}
	if res.Duplicate {
		return res, metrics.OutcomeDuplicate, nil
	}
	return res, metrics.OutcomeAccepted, nil
}

// ContactAPI handles POST /api/contact with a JSON body.
func (h *Handler) ContactAPI(c *gin.Context) {
	var sub models.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		h.Metrics.ObserveSubmission(channelAPI, metrics.OutcomeInvalid)
		c.JSON(http.StatusBadRequest, models.ContactResponse{
			Success: false,
			Message: "Request body must be a JSON contact submission",
		})
		return
	}

	res, outcome, err := h.submit(c.Request.Context(), sub, c.ClientIP(), channelAPI)
	h.Metrics.ObserveSubmission(channelAPI, outcome)
	if err != nil {
		status, body := apiError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, models.ContactResponse{
		Success: true,
		ID:      res.ID,
		Message: "Message sent successfully!",
	})
}

func apiError(err error) (int, models.ContactResponse) {
	var fieldErrs validators.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		return http.StatusUnprocessableEntity, models.ContactResponse{
			Message: "Please correct the highlighted fields",
			Errors:  fieldErrs.Map(),
		}
	case errors.Is(err, validators.ErrTokenRequired), errors.Is(err, validators.ErrTokenInvalid):
		return http.StatusForbidden, models.ContactResponse{
			Message: "Captcha verification failed, please try again",
		}
	case errors.Is(err, operations.ErrDeliveryFailed):
		return http.StatusBadGateway, models.ContactResponse{
			Message: "Something went wrong. Please try again.",
		}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, models.ContactResponse{
			Message: "Request cancelled",
		}
	default:
		return http.StatusInternalServerError, models.ContactResponse{
			Message: "internal_server_error",
		}
	}
}

// ContactForm handles the script-free form post and re-renders the page.
func (h *Handler) ContactForm(c *gin.Context) {
	var sub models.ContactSubmission
	if err := c.ShouldBind(&sub); err != nil {
		h.Metrics.ObserveSubmission(channelForm, metrics.OutcomeInvalid)
		h.renderHome(c, http.StatusBadRequest, views.FormState{Toast: views.FailedToast()})
		return
	}

	_, outcome, err := h.submit(c.Request.Context(), sub, c.ClientIP(), channelForm)
	h.Metrics.ObserveSubmission(channelForm, outcome)
	if err == nil {
		h.renderHome(c, http.StatusOK, views.FormState{Toast: views.SentToast()})
		return
	}

	status, _ := apiError(err)
	state := views.FormState{Values: sub, Toast: views.FailedToast()}
	var fieldErrs validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		state.Errors = fieldErrs
		state.Toast = views.InvalidToast()
	}
	// Never echo the captcha token back into the page.
	state.Values.TurnstileToken = ""
	h.renderHome(c, status, state)
}
