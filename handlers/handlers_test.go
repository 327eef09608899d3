package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynot-advisory/landing/metrics"
	"github.com/ynot-advisory/landing/models"
	"github.com/ynot-advisory/landing/operations"
	"github.com/ynot-advisory/landing/validators"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSubmitter struct {
	mu    sync.Mutex
	calls []models.ContactSubmission
	err   error
}

func (f *fakeSubmitter) Mode() string { return "fake" }

func (f *fakeSubmitter) Submit(ctx context.Context, s models.ContactSubmission, meta operations.Meta) (operations.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, s)
	if f.err != nil {
		return operations.Result{}, f.err
	}
	return operations.Result{ID: fmt.Sprintf("sub-%d", len(f.calls))}, nil
}

type fakeVerifier struct{ err error }

func (f fakeVerifier) Verify(context.Context, string, string) error { return f.err }

func newTestRouter(t *testing.T, sub operations.Submitter, verifier validators.Verifier) *gin.Engine {
	t.Helper()
	reg := prometheus.NewRegistry()
	h := &Handler{
		BasePath:  "/ynot-advisory",
		Submitter: sub,
		Verifier:  verifier,
		Metrics:   metrics.NewContactMetrics(reg),
	}
	return NewRouter(h, RouterConfig{RateLimitPerMinute: 6000, Gatherer: reg})
}

func postJSON(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/ynot-advisory/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) models.ContactResponse {
	t.Helper()
	var resp models.ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

const validJSON = `{"firstName":"A","lastName":"B","email":"a@b.com","message":"1234567890"}`

func TestContactAPI_Accepted(t *testing.T) {
	sub := &fakeSubmitter{}
	r := newTestRouter(t, sub, nil)

	w := postJSON(r, validJSON)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "sub-1", resp.ID)
	assert.Equal(t, "Message sent successfully!", resp.Message)
	require.Len(t, sub.calls, 1)
	assert.Equal(t, "a@b.com", sub.calls[0].Email)
}

func TestContactAPI_ValidationFailure(t *testing.T) {
	sub := &fakeSubmitter{}
	r := newTestRouter(t, sub, nil)

	w := postJSON(r, `{"firstName":"","lastName":"B","email":"not-an-email","message":"short"}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, map[string]string{
		"firstName": "First name is required",
		"email":     "Please enter a valid email address",
		"message":   "Message must be at least 10 characters long",
	}, resp.Errors)
	assert.Empty(t, sub.calls)
}

func TestContactAPI_MalformedJSON(t *testing.T) {
	sub := &fakeSubmitter{}
	r := newTestRouter(t, sub, nil)

	w := postJSON(r, `{"firstName":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decode(t, w).Success)
	assert.Empty(t, sub.calls)
}

func TestContactAPI_DeliveryFailure(t *testing.T) {
	sub := &fakeSubmitter{err: fmt.Errorf("%w: sendgrid down", operations.ErrDeliveryFailed)}
	r := newTestRouter(t, sub, nil)

	w := postJSON(r, validJSON)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.False(t, decode(t, w).Success)
	assert.Len(t, sub.calls, 1)
}

func TestContactAPI_CaptchaRejected(t *testing.T) {
	sub := &fakeSubmitter{}
	r := newTestRouter(t, sub, fakeVerifier{err: validators.ErrTokenInvalid})

	w := postJSON(r, validJSON)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, sub.calls)
}

func TestContactForm_Success(t *testing.T) {
	sub := &fakeSubmitter{}
	r := newTestRouter(t, sub, nil)

	w := postForm(r, url.Values{
		"firstName": {"Ada"},
		"lastName":  {"Lovelace"},
		"email":     {"ada@example.com"},
		"company":   {"Engines"},
		"message":   {"Tell me more about strategy."},
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Message sent successfully!")
	assert.NotContains(t, body, `value="Ada"`)
	require.Len(t, sub.calls, 1)
	assert.Equal(t, "Engines", sub.calls[0].Company)
}

func TestContactForm_InlineErrors(t *testing.T) {
	sub := &fakeSubmitter{}
	r := newTestRouter(t, sub, nil)

	w := postForm(r, url.Values{
		"firstName": {"Ada"},
		"email":     {"ada@example.com"},
		"message":   {"short"},
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Last name is required")
	assert.Contains(t, body, "Message must be at least 10 characters long")
	assert.Contains(t, body, `value="Ada"`)
	assert.Empty(t, sub.calls)
}

func TestPages(t *testing.T) {
	r := newTestRouter(t, &fakeSubmitter{}, nil)

	home := get(r, "/ynot-advisory")
	assert.Equal(t, http.StatusOK, home.Code)
	assert.Contains(t, home.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, home.Body.String(), `action="/ynot-advisory/contact"`)

	for _, path := range []string{"/", "/about", "/ynot-advisory/nope"} {
		w := get(r, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "404 Page Not Found", path)
	}
}

func TestFormAction(t *testing.T) {
	for base, want := range map[string]string{
		"/ynot-advisory": "/ynot-advisory/contact",
		"/":              "/contact",
		"/x/":            "/x/contact",
	} {
		h := &Handler{BasePath: base}
		assert.Equal(t, want, h.formAction(), base)
	}
}

func TestRootBasePath(t *testing.T) {
	reg := prometheus.NewRegistry()
	sub := &fakeSubmitter{}
	r := NewRouter(&Handler{
		BasePath:  "/",
		Submitter: sub,
		Metrics:   metrics.NewContactMetrics(reg),
	}, RouterConfig{RateLimitPerMinute: 6000, Gatherer: reg})

	home := get(r, "/")
	require.Equal(t, http.StatusOK, home.Code)
	assert.Contains(t, home.Body.String(), `action="/contact"`)
	assert.NotContains(t, home.Body.String(), `action="//contact"`)

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(url.Values{
		"firstName": {"Ada"},
		"lastName":  {"Lovelace"},
		"email":     {"ada@example.com"},
		"message":   {"Tell me more about strategy."},
	}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, sub.calls, 1)
}

func TestHealthStaticAndMetrics(t *testing.T) {
	r := newTestRouter(t, &fakeSubmitter{}, nil)

	health := get(r, "/health")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.JSONEq(t, `{"status":"ok"}`, health.Body.String())

	css := get(r, "/static/styles.css")
	assert.Equal(t, http.StatusOK, css.Code)

	postJSON(r, validJSON)
	m := get(r, "/metrics")
	assert.Equal(t, http.StatusOK, m.Code)
	assert.Contains(t, m.Body.String(), `ynot_contact_submissions_total{channel="api",outcome="accepted"} 1`)
}
