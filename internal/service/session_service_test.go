package service

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anexos/internal/config"
	"anexos/internal/domain"
	"anexos/internal/wizard"
)

func testSessionService(t *testing.T) SessionService {
	t.Helper()
	return NewSessionService(config.SessionConfig{
		TTL:            time.Hour,
		SweepInterval:  time.Minute,
		MaxPerInstance: 100,
	})
}

func validMasivosForm() *domain.MasivosForm {
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
	return f
}

func validRecaudacionForm() *domain.RecaudacionForm {
	f := domain.NewRecaudacionForm()
	f.CodigoUnico = "CU0012345"
	f.PuntoServicio = "Lima Centro"
	f.RazonSocial = "Acme S.A.C."
	f.TaxID = "20123456789"
	f.GiroEmpresa = "Educación"
	f.NombreComercial = "ACME"
	f.NumeroServicio = "001"
	f.NombreServicio = "PENSIONES"
	f.HorarioRecaudacion = "L-V 9:00-18:00"
	f.MonedaSoles = true
	f.CanalAppBanca = true
	f.CodigoIdentificadorDeudor = "COD-ALUMNO"
	f.NumeroCaracteresDeudor = "10"
	f.ComisionAgenteEmpresaSoles = "2.50"
	f.CuentasCobranzas = []domain.AccountEntry{
		{Percentage: "100", Kind: domain.AccountCorriente, Currency: domain.CurrencySoles, Number: "193-1234567-0-01"},
	}
	f.CuentasComisiones = []domain.AccountEntry{
		{Percentage: "100", Kind: domain.AccountCorriente, Currency: domain.CurrencySoles, Number: "193-1234567-0-01"},
	}
	f.CorreosConsolidacion = []string{"tesoreria@acme.com.pe"}
	f.CorreosConfirmacion = []string{"finanzas@acme.com.pe"}
	f.NombreContacto = "María Torres"
	f.CorreoContacto = "mtorres@acme.com.pe"
	f.TelefonoContacto = "987654321"
	return f
}

func updateWith(t *testing.T, svc SessionService, id uuid.UUID, form any) *SessionState {
	t.Helper()
	raw, err := json.Marshal(form)
	require.NoError(t, err)
	st, err := svc.UpdateData(id, UpdateDataInput{Data: raw})
	require.NoError(t, err)
	return st
}

func advanceToReview(t *testing.T, svc SessionService, id uuid.UUID) *SessionState {
	t.Helper()
	var st *SessionState
	for i := 0; i < 20; i++ {
		next, v, err := svc.Next(id)
		require.NoError(t, err)
		require.True(t, v.CanProceed, "step %s blocked: %v", next.CurrentStep, v.Errors)
		st = next
		if st.CurrentStep == wizard.StepReview {
			return st
		}
	}
	t.Fatal("never reached the review step")
	return nil
}

func TestCreateRejectsUnknownFlow(t *testing.T) {
	svc := testSessionService(t)
	_, err := svc.Create(domain.Flow("prestamos"))
	assert.ErrorIs(t, err, domain.ErrUnknownFlow)
}

func TestCreateStartsAtFirstStep(t *testing.T) {
	svc := testSessionService(t)
	st, err := svc.Create(domain.FlowPagosMasivos)
	require.NoError(t, err)

	assert.Equal(t, "company-identity", st.CurrentStep)
	assert.Equal(t, 0, st.StepIndex)
	assert.False(t, st.Submitted)
	// Additional step hidden until Proveedores or Pagos Varios is selected.
	assert.Len(t, st.VisibleSteps, 7)
}

func TestGetUnknownSession(t *testing.T) {
	svc := testSessionService(t)
	_, err := svc.Get(uuid.New())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestNextBlocksWithErrorMap(t *testing.T) {
	svc := testSessionService(t)
	st, err := svc.Create(domain.FlowPagosMasivos)
	require.NoError(t, err)

	next, v, err := svc.Next(st.ID)
	require.NoError(t, err)
	assert.False(t, v.CanProceed)
	assert.Contains(t, v.Errors, "companyName")
	assert.Equal(t, "company-identity", next.CurrentStep)
	require.NotNil(t, next.LastValidation)
	assert.False(t, next.LastValidation.CanProceed)
}

func TestBackClearsLastValidation(t *testing.T) {
	svc := testSessionService(t)
	st, err := svc.Create(domain.FlowPagosMasivos)
	require.NoError(t, err)
	updateWith(t, svc, st.ID, validMasivosForm())

	_, _, err = svc.Next(st.ID)
	require.NoError(t, err)

	back, err := svc.Back(st.ID)
	require.NoError(t, err)
	assert.Equal(t, "company-identity", back.CurrentStep)
	assert.Nil(t, back.LastValidation)
}

func TestMasivosFullFlowToDocument(t *testing.T) {
	svc := testSessionService(t)
	st, err := svc.Create(domain.FlowPagosMasivos)
	require.NoError(t, err)
	updateWith(t, svc, st.ID, validMasivosForm())

	review := advanceToReview(t, svc, st.ID)
	assert.Equal(t, wizard.StepReview, review.CurrentStep)

	submitted, err := svc.Submit(st.ID)
	require.NoError(t, err)
	assert.True(t, submitted.Submitted)

	doc, err := svc.Document(st.ID)
	require.NoError(t, err)
	annex, ok := doc.(*domain.MasivosAnnex)
	require.True(t, ok)
	assert.Equal(t, "Acme S.A.C.", annex.CompanyName)
	assert.Equal(t, "remuneraciones", annex.ServiceList)
	assert.Equal(t, domain.CurrencySoles, annex.Currency)
}

func TestSubmitOnlyFromReview(t *testing.T) {
	svc := testSessionService(t)
	st, err := svc.Create(domain.FlowPagosMasivos)
	require.NoError(t, err)

	_, err = svc.Submit(st.ID)
	assert.ErrorIs(t, err, domain.ErrNotAtReview)
}

func TestSubmitRevalidatesEveryStep(t *testing.T) {
	svc := testSessionService(t)
	st, err := svc.Create(domain.FlowPagosMasivos)
	require.NoError(t, err)
	updateWith(t, svc, st.ID, validMasivosForm())
	advanceToReview(t, svc, st.ID)

	// Invalidate an earlier step from the review screen.
	broken := validMasivosForm()
	broken.TaxID = "201234"
	updateWith(t, svc, st.ID, broken)

	_, err = svc.Submit(st.ID)
	var sve *SubmitValidationError
	require.ErrorAs(t, err, &sve)
	assert.Contains(t, sve.Steps, "company-identity")

	// The session survives for correction.
	_, err = svc.Get(st.ID)
	assert.NoError(t, err)
}

func TestDocumentBeforeSubmit(t *testing.T) {
	svc := testSessionService(t)
	st, err := svc.Create(domain.FlowPagosMasivos)
	require.NoError(t, err)

	_, err = svc.Document(st.ID)
	assert.ErrorIs(t, err, domain.ErrNotSubmitted)
	_, err = svc.RenderPDF(st.ID)
	assert.ErrorIs(t, err, domain.ErrNotSubmitted)
}

func TestRenderTargetsAfterSubmit(t *testing.T) {
	svc := testSessionService(t)
	st, err := svc.Create(domain.FlowPagosMasivos)
	require.NoError(t, err)
	updateWith(t, svc, st.ID, validMasivosForm())
	advanceToReview(t, svc, st.ID)
	_, err = svc.Submit(st.ID)
	require.NoError(t, err)

	pdf, err := svc.RenderPDF(st.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anexo_Pagos_Masivos_Acme_S_A_C_.pdf", pdf.Filename)
	assert.Equal(t, "application/pdf", pdf.ContentType)
	assert.True(t, bytes.HasPrefix(pdf.Content, []byte("%PDF")))

	html, err := svc.RenderPrint(st.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anexo_Pagos_Masivos_Acme_S_A_C_.html", html.Filename)
	assert.Contains(t, string(html.Content), "ANEXO PAGOS MASIVOS")

	xlsx, err := svc.RenderXLSX(st.ID)
	require.NoError(t, err)
	assert.Contains(t, xlsx.Filename, "Anexo_Pagos_Masivos_Acme_S_A_C")
	assert.NotEmpty(t, xlsx.Content)
}

func TestRecaudacionFullFlow(t *testing.T) {
	svc := testSessionService(t)
	st, err := svc.Create(domain.FlowRecaudacion)
	require.NoError(t, err)
	assert.Len(t, st.VisibleSteps, 11)

	updateWith(t, svc, st.ID, validRecaudacionForm())
	advanceToReview(t, svc, st.ID)

	submitted, err := svc.Submit(st.ID)
	require.NoError(t, err)
	assert.True(t, submitted.Submitted)

	doc, err := svc.Document(st.ID)
	require.NoError(t, err)
	annex, ok := doc.(*domain.RecaudacionAnnex)
	require.True(t, ok)
	assert.Equal(t, "Acme S.A.C.", annex.RazonSocial)
	assert.True(t, annex.ObligaPagosSucesivos)
}

func TestUpdateDataNormalizesCaps(t *testing.T) {
	svc := testSessionService(t)
	st, err := svc.Create(domain.FlowRecaudacion)
	require.NoError(t, err)

	form := validRecaudacionForm()
	form.NombreComercial = "NOMBRECOMERCIALDEMASIADOLARGO"
	form.CodigoIdentificadorDeudor = "COD/ALU,MNO-2024"
	state := updateWith(t, svc, st.ID, form)

	f, ok := state.Form.(*domain.RecaudacionForm)
	require.True(t, ok)
	assert.Len(t, f.NombreComercial, 13)
	assert.Equal(t, "CODALUMNO-202", f.CodigoIdentificadorDeudor)
}

func TestUpdateDataKeepsAccentedNamesIntact(t *testing.T) {
	svc := testSessionService(t)
	st, err := svc.Create(domain.FlowRecaudacion)
	require.NoError(t, err)

	form := validRecaudacionForm()
	form.NombreComercial = "EÑEÑEÑE" // 7 runes, 10 bytes; under the cap
	form.NombreServicio = "EDUCACIÓN PERÚ SUR"
	state := updateWith(t, svc, st.ID, form)

	f, ok := state.Form.(*domain.RecaudacionForm)
	require.True(t, ok)
	assert.Equal(t, "EÑEÑEÑE", f.NombreComercial, "short accented names are never truncated")
	assert.Equal(t, "EDUCACIÓN PER", f.NombreServicio, "caps count characters")
	assert.True(t, utf8.ValidString(f.NombreServicio))
}

func TestUpdateDataRejectsMalformedPayload(t *testing.T) {
	svc := testSessionService(t)
	st, err := svc.Create(domain.FlowPagosMasivos)
	require.NoError(t, err)

	_, err = svc.UpdateData(st.ID, UpdateDataInput{Data: json.RawMessage(`{"company_name": 42}`)})
	assert.ErrorIs(t, err, domain.ErrInvalidFormData)
}

func TestPolicyChangeCascades(t *testing.T) {
	svc := testSessionService(t)
	st, err := svc.Create(domain.FlowRecaudacion)
	require.NoError(t, err)

	state, err := svc.UpdateData(st.ID, UpdateDataInput{
		PolicyChange: &PolicyChangeInput{Field: domain.PolicyAcceptsOverdue, Value: true},
	})
	require.NoError(t, err)

	f, ok := state.Form.(*domain.RecaudacionForm)
	require.True(t, ok)
	assert.True(t, f.Policy.AcceptsOverdue)
	assert.False(t, f.Policy.RequiresSequential, "overdue on releases the sequential requirement")
}

func TestPolicyChangeOnMasivosSession(t *testing.T) {
	svc := testSessionService(t)
	st, err := svc.Create(domain.FlowPagosMasivos)
	require.NoError(t, err)

	_, err = svc.UpdateData(st.ID, UpdateDataInput{
		PolicyChange: &PolicyChangeInput{Field: domain.PolicyAcceptsOverdue, Value: true},
	})
	assert.ErrorIs(t, err, domain.ErrFlowMismatch)
}

func TestJumpBeyondFurthestRejected(t *testing.T) {
	svc := testSessionService(t)
	st, err := svc.Create(domain.FlowPagosMasivos)
	require.NoError(t, err)

	_, err = svc.Jump(st.ID, "controls")
	assert.ErrorIs(t, err, domain.ErrStepNotVisited)
	_, err = svc.Jump(st.ID, "no-such-step")
	assert.ErrorIs(t, err, domain.ErrUnknownStep)

	updateWith(t, svc, st.ID, validMasivosForm())
	advanceToReview(t, svc, st.ID)

	jumped, err := svc.Jump(st.ID, "contact-info")
	require.NoError(t, err)
	assert.Equal(t, "contact-info", jumped.CurrentStep)
	assert.Equal(t, wizard.StepReview, jumped.FurthestStep)
}

func TestSessionLimit(t *testing.T) {
	svc := NewSessionService(config.SessionConfig{TTL: time.Hour, MaxPerInstance: 1})
	_, err := svc.Create(domain.FlowPagosMasivos)
	require.NoError(t, err)
	_, err = svc.Create(domain.FlowRecaudacion)
	assert.ErrorIs(t, err, domain.ErrSessionLimit)
}

func TestSweepRemovesExpiredSessions(t *testing.T) {
	svc := NewSessionService(config.SessionConfig{TTL: time.Hour, MaxPerInstance: 10}).(*sessionService)
	st, err := svc.Create(domain.FlowPagosMasivos)
	require.NoError(t, err)

	svc.sweep(time.Now().Add(2 * time.Hour))
	_, err = svc.Get(st.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
