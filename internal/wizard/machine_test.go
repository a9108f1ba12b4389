package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"anexos/internal/domain"
)

func fillMasivosStep(f *domain.MasivosForm, stepID string) {
	switch stepID {
	case "company-identity":
		f.CompanyName = "Acme S.A.C."
		f.TaxID = "20123456789"
	case "contact-info":
		f.ContactName = "María Torres"
		f.ContactPhone = "987654321"
		f.ContactEmail1 = "mtorres@acme.com.pe"
	case "services":
		f.Services.Remuneraciones = true
	case "currency":
		f.Currencies.Soles = true
	case "account":
		f.AccountSoles = domain.Account{Kind: domain.AccountCorriente, Number: "193-1234567-0-01"}
	case "controls":
		for _, svc := range domain.ServiceKinds {
			if f.Services.Selected(svc) {
				f.SetControl(svc, domain.CurrencySoles, domain.AmountControls{MaxBatch: "100000", MaxPayment: "5000"})
			}
		}
	}
}

func TestMachineHappyPathToReview(t *testing.T) {
	m := NewMasivosMachine()

	for !m.AtReview() {
		fillMasivosStep(m.Form(), m.Current().ID)
		v, moved := m.Next()
		assert.True(t, moved, "step %s should advance: %v", m.Current().ID, v.Errors)
	}
	assert.Equal(t, StepReview, m.Current().ID)

	// Next at review never moves; submission is the caller's job.
	_, moved := m.Next()
	assert.False(t, moved)
}

func TestMachineNextBlocksOnInvalidStep(t *testing.T) {
	m := NewMasivosMachine()

	v, moved := m.Next()
	assert.False(t, moved)
	assert.False(t, v.CanProceed)
	assert.Equal(t, 0, m.Index())
	assert.Contains(t, v.Errors, "companyName")
}

func TestMachineBackNeverValidates(t *testing.T) {
	m := NewMasivosMachine()
	fillMasivosStep(m.Form(), "company-identity")
	_, moved := m.Next()
	assert.True(t, moved)

	// The contact step is empty and invalid, but Back still works.
	assert.True(t, m.Back())
	assert.Equal(t, 0, m.Index())
	assert.False(t, m.Back(), "already at the first step")
}

func TestAdditionalStepVisibility(t *testing.T) {
	m := NewMasivosMachine()
	ids := func() []string {
		var out []string
		for _, s := range m.VisibleSteps() {
			out = append(out, s.ID)
		}
		return out
	}

	assert.NotContains(t, ids(), "additional")
	assert.Len(t, m.VisibleSteps(), 7)

	m.Form().Services.Proveedores = true
	assert.Contains(t, ids(), "additional")
	assert.Len(t, m.VisibleSteps(), 8)

	m.Form().Services.Proveedores = false
	m.Form().Services.PagosVarios = true
	assert.Contains(t, ids(), "additional")
}

func TestReclampAfterStepDisappears(t *testing.T) {
	m := NewMasivosMachine()
	m.Form().Services.Proveedores = true

	// Walk to the review step (index 7 of 8).
	for !m.AtReview() {
		fillMasivosStep(m.Form(), m.Current().ID)
		if _, moved := m.Next(); !moved {
			t.Fatalf("stuck at %s", m.Current().ID)
		}
	}
	assert.Equal(t, 7, m.Index())

	// Deselecting Proveedores hides the additional step; the position
	// clamps back onto the last visible step.
	m.Form().Services.Proveedores = false
	m.Reclamp()
	assert.Equal(t, 6, m.Index())
	assert.Equal(t, StepReview, m.Current().ID)
}

func TestJumpToOnlyReachedSteps(t *testing.T) {
	m := NewMasivosMachine()
	fillMasivosStep(m.Form(), "company-identity")
	m.Next()
	fillMasivosStep(m.Form(), "contact-info")
	m.Next()

	assert.NoError(t, m.JumpTo("company-identity"))
	assert.Equal(t, 0, m.Index())

	// Forward within the already-visited range is allowed.
	assert.NoError(t, m.JumpTo("services"))
	assert.Equal(t, 2, m.Index())

	// Beyond the furthest visited step it is not.
	assert.ErrorIs(t, m.JumpTo("controls"), domain.ErrStepNotVisited)
	assert.ErrorIs(t, m.JumpTo("no-such-step"), domain.ErrUnknownStep)
}

func TestAdvisoryStepNeverBlocks(t *testing.T) {
	m := NewMasivosMachine()
	m.Form().Services.PagosVarios = true
	for m.Current().ID != "additional" {
		fillMasivosStep(m.Form(), m.Current().ID)
		if _, moved := m.Next(); !moved {
			t.Fatalf("stuck at %s", m.Current().ID)
		}
	}

	m.Form().Additional.MaxDaysVarios = "999"
	v, moved := m.Next()
	assert.True(t, moved, "advisory errors must not block")
	assert.False(t, v.IsValid)
	assert.Equal(t, StepReview, m.Current().ID)
}

func TestRecaudacionStepOrder(t *testing.T) {
	m := NewRecaudacionMachine()
	steps := m.VisibleSteps()
	assert.Len(t, steps, 11)
	assert.Equal(t, "company-info", steps[0].ID)
	assert.Equal(t, "payment-types", steps[4].ID)
	assert.Equal(t, StepReview, steps[10].ID)

	// Default policy passes the payment-types validator out of the box.
	v := steps[4].Validate(m.Form())
	assert.True(t, v.CanProceed)
}
