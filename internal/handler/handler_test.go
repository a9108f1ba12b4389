package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anexos/internal/config"
	"anexos/internal/domain"
	"anexos/internal/handler"
	"anexos/internal/router"
	"anexos/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router *gin.Engine
	token  string
}

type sessionEnvelope struct {
	Success bool                 `json:"success"`
	Data    service.SessionState `json:"data"`
	Error   *handler.APIError    `json:"error"`
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			AccessTokenExpiry: time.Hour,
			Issuer:            "anexos-test",
		},
		Access:  config.AccessConfig{Password: "demo2024"},
		Session: config.SessionConfig{TTL: time.Hour, MaxPerInstance: 100},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	authSvc := service.NewAuthService(cfg.Access, cfg.JWT)
	sessionSvc := service.NewSessionService(cfg.Session)

	r := router.Setup(
		cfg,
		authSvc,
		handler.NewAuthHandler(authSvc),
		handler.NewWizardHandler(sessionSvc),
		handler.NewDocumentHandler(sessionSvc),
		handler.NewHealthHandler(),
	)

	result, err := authSvc.Access(service.AccessInput{Password: "demo2024"})
	require.NoError(t, err)

	return &testEnv{router: r, token: result.Token}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if e.token != "" {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) session(t *testing.T, w *httptest.ResponseRecorder) service.SessionState {
	t.Helper()
	var env sessionEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data
}

func validMasivosData() map[string]any {
	f := domain.NewMasivosForm()
	f.CompanyName = "Acme S.A.C."
	f.TaxID = "20123456789"
	f.ContactName = "María Torres"
	f.ContactPhone = "987654321"
	f.ContactEmail1 = "mtorres@acme.com.pe"
	f.Services.Remuneraciones = true
	f.Currencies.Soles = true
	f.AccountSoles = domain.Account{Kind: domain.AccountCorriente, Number: "193-1234567-0-01"}
	f.SetControl(domain.ServiceRemuneraciones, domain.CurrencySoles, domain.AmountControls{
		MaxBatch:   "100000",
		MaxPayment: "5000",
	})
	return map[string]any{"data": f}
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/healthz", nil).Code)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/readyz", nil).Code)
}

func TestAccessGate(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/auth/access", map[string]string{"password": "demo2024"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")

	w = env.do(t, http.MethodPost, "/api/v1/auth/access", map[string]string{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}

func TestWizardRequiresToken(t *testing.T) {
	env := newTestEnv(t)
	env.token = ""

	w := env.do(t, http.MethodPost, "/api/v1/sessions", map[string]string{"flow": "pagos-masivos"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/sessions", map[string]string{"flow": "pagos-masivos"})
	require.Equal(t, http.StatusCreated, w.Code)

	st := env.session(t, w)
	assert.Equal(t, domain.FlowPagosMasivos, st.Flow)
	assert.Equal(t, "company-identity", st.CurrentStep)
	assert.Len(t, st.VisibleSteps, 7)
}

func TestCreateSessionUnknownFlow(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/sessions", map[string]string{"flow": "leasing"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNKNOWN_FLOW")
}

func TestGetUnknownSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/sessions/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_NOT_FOUND")

	w = env.do(t, http.MethodGet, "/api/v1/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_SESSION_ID")
}

func TestNextValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/sessions", map[string]string{"flow": "pagos-masivos"})
	require.Equal(t, http.StatusCreated, w.Code)
	st := env.session(t, w)

	w = env.do(t, http.MethodPost, "/api/v1/sessions/"+st.ID.String()+"/next", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "STEP_VALIDATION_FAILED")
	assert.Contains(t, w.Body.String(), "companyName")
}

func TestMasivosEndToEnd(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/sessions", map[string]string{"flow": "pagos-masivos"})
	require.Equal(t, http.StatusCreated, w.Code)
	st := env.session(t, w)
	base := "/api/v1/sessions/" + st.ID.String()

	w = env.do(t, http.MethodPut, base+"/data", validMasivosData())
	require.Equal(t, http.StatusOK, w.Code)

	// Walk every step up to review.
	for i := 0; i < 6; i++ {
		w = env.do(t, http.MethodPost, base+"/next", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	st = env.session(t, w)
	require.Equal(t, "review", st.CurrentStep)

	w = env.do(t, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	st = env.session(t, w)
	assert.True(t, st.Submitted)

	w = env.do(t, http.MethodGet, base+"/document", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acme S.A.C.")
	assert.Contains(t, w.Body.String(), "remuneraciones")

	w = env.do(t, http.MethodGet, base+"/document/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Anexo_Pagos_Masivos_Acme_S_A_C_.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w = env.do(t, http.MethodGet, base+"/document/print", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "ANEXO PAGOS MASIVOS")

	w = env.do(t, http.MethodGet, base+"/document/xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestSubmitOutsideReview(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/sessions", map[string]string{"flow": "recaudacion"})
	require.Equal(t, http.StatusCreated, w.Code)
	st := env.session(t, w)

	w = env.do(t, http.MethodPost, "/api/v1/sessions/"+st.ID.String()+"/submit", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_AT_REVIEW")
}

func TestDocumentBeforeSubmit(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/sessions", map[string]string{"flow": "recaudacion"})
	require.Equal(t, http.StatusCreated, w.Code)
	st := env.session(t, w)

	w = env.do(t, http.MethodGet, "/api/v1/sessions/"+st.ID.String()+"/document", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_SUBMITTED")
}

func TestJumpValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/sessions", map[string]string{"flow": "pagos-masivos"})
	require.Equal(t, http.StatusCreated, w.Code)
	st := env.session(t, w)
	base := "/api/v1/sessions/" + st.ID.String()

	w = env.do(t, http.MethodPost, base+"/jump", map[string]string{"step_id": "controls"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "STEP_NOT_VISITED")

	w = env.do(t, http.MethodPost, base+"/jump", map[string]string{"step_id": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNKNOWN_STEP")
}

func TestPolicyChangeEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/sessions", map[string]string{"flow": "recaudacion"})
	require.Equal(t, http.StatusCreated, w.Code)
	st := env.session(t, w)

	w = env.do(t, http.MethodPut, "/api/v1/sessions/"+st.ID.String()+"/data", map[string]any{
		"policy_change": map[string]any{"field": "accepts_overdue", "value": true},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var env2 struct {
		Data struct {
			Form domain.RecaudacionForm `json:"form"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env2))
	assert.True(t, env2.Data.Form.Policy.AcceptsOverdue)
	assert.False(t, env2.Data.Form.Policy.RequiresSequential)
}
