package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"anexos/internal/config"
	"anexos/internal/docgen"
	"anexos/internal/domain"
	"anexos/internal/mapper"
	"anexos/internal/printview"
	"anexos/internal/validator"
	"anexos/internal/wizard"
	"anexos/internal/xlsxexport"
)

// StepInfo is one entry of the visible step list the UI renders its progress
// indicator from.
type StepInfo struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	IsRequired bool   `json:"is_required"`
	IsComplete bool   `json:"is_complete"`
}

// SessionState is the full wizard session snapshot returned by every
// session endpoint.
type SessionState struct {
	ID             uuid.UUID              `json:"id"`
	Flow           domain.Flow            `json:"flow"`
	CurrentStep    string                 `json:"current_step"`
	StepIndex      int                    `json:"step_index"`
	FurthestStep   string                 `json:"furthest_step"`
	VisibleSteps   []StepInfo             `json:"visible_steps"`
	Submitted      bool                   `json:"submitted"`
	Form           any                    `json:"form"`
	LastValidation *domain.StepValidation `json:"last_validation,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// PolicyChangeInput applies one payment-policy toggle through the coupling
// reducer. Recaudación sessions only.
type PolicyChangeInput struct {
	Field domain.PaymentPolicyField `json:"field" binding:"required"`
	Value bool                      `json:"value"`
}

// UpdateDataInput carries a partial form update. Data merges by top-level
// key presence into the session's form; PolicyChange, when present, runs
// after the merge.
type UpdateDataInput struct {
	Data         json.RawMessage    `json:"data"`
	PolicyChange *PolicyChangeInput `json:"policy_change"`
}

// Download is a rendered document ready to stream to the client.
type Download struct {
	Filename    string
	ContentType string
	Content     []byte
}

// SubmitValidationError reports the steps that blocked a submit, keyed by
// step id.
type SubmitValidationError struct {
	Steps map[string]domain.StepValidation `json:"steps"`
}

func (e *SubmitValidationError) Error() string {
	return fmt.Sprintf("submit blocked by %d invalid step(s)", len(e.Steps))
}

// SessionService owns the in-memory wizard sessions and every operation on
// them. Sessions are not persisted; an abandoned enrollment simply expires.
type SessionService interface {
	Create(flow domain.Flow) (*SessionState, error)
	Get(id uuid.UUID) (*SessionState, error)
	UpdateData(id uuid.UUID, input UpdateDataInput) (*SessionState, error)
	Next(id uuid.UUID) (*SessionState, domain.StepValidation, error)
	Back(id uuid.UUID) (*SessionState, error)
	Jump(id uuid.UUID, stepID string) (*SessionState, error)
	Submit(id uuid.UUID) (*SessionState, error)
	Document(id uuid.UUID) (any, error)
	RenderPDF(id uuid.UUID) (*Download, error)
	RenderPrint(id uuid.UUID) (*Download, error)
	RenderXLSX(id uuid.UUID) (*Download, error)
	StartSweeper(ctx context.Context)
}

// session holds one wizard run. Exactly one of the two machines is set,
// matching the flow.
type session struct {
	id        uuid.UUID
	flow      domain.Flow
	createdAt time.Time
	updatedAt time.Time

	masivos     *wizard.Machine[domain.MasivosForm]
	recaudacion *wizard.Machine[domain.RecaudacionForm]

	masivosAnnex     *domain.MasivosAnnex
	recaudacionAnnex *domain.RecaudacionAnnex

	lastValidation *domain.StepValidation
}

func (s *session) submitted() bool {
	return s.masivosAnnex != nil || s.recaudacionAnnex != nil
}

type sessionService struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	cfg      config.SessionConfig
	now      func() time.Time
}

// NewSessionService creates a new SessionService implementation.
func NewSessionService(cfg config.SessionConfig) SessionService {
	return &sessionService{
		sessions: make(map[uuid.UUID]*session),
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *sessionService) Create(flow domain.Flow) (*SessionState, error) {
	if !flow.Valid() {
		return nil, domain.ErrUnknownFlow
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.MaxPerInstance > 0 && len(s.sessions) >= s.cfg.MaxPerInstance {
		return nil, domain.ErrSessionLimit
	}

	now := s.now()
	sess := &session{
		id:        uuid.New(),
		flow:      flow,
		createdAt: now,
		updatedAt: now,
	}
	switch flow {
	case domain.FlowPagosMasivos:
		sess.masivos = wizard.NewMasivosMachine()
	case domain.FlowRecaudacion:
		sess.recaudacion = wizard.NewRecaudacionMachine()
	}
	s.sessions[sess.id] = sess

	return s.state(sess), nil
}

func (s *sessionService) Get(id uuid.UUID) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return s.state(sess), nil
}

func (s *sessionService) UpdateData(id uuid.UUID, input UpdateDataInput) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	if len(input.Data) > 0 {
		if err := sess.mergeData(input.Data); err != nil {
			return nil, err
		}
	}
	if input.PolicyChange != nil {
		if err := sess.applyPolicyChange(*input.PolicyChange); err != nil {
			return nil, err
		}
	}

	// Data changes can hide steps, so the position must be re-clamped
	// before anything reads it.
	switch sess.flow {
	case domain.FlowPagosMasivos:
		sess.masivos.Reclamp()
	case domain.FlowRecaudacion:
		sess.recaudacion.Reclamp()
	}
	sess.updatedAt = s.now()

	return s.state(sess), nil
}

func (s *sessionService) Next(id uuid.UUID) (*SessionState, domain.StepValidation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, domain.StepValidation{}, err
	}

	var v domain.StepValidation
	switch sess.flow {
	case domain.FlowPagosMasivos:
		v, _ = sess.masivos.Next()
	case domain.FlowRecaudacion:
		v, _ = sess.recaudacion.Next()
	}
	sess.lastValidation = &v
	sess.updatedAt = s.now()

	return s.state(sess), v, nil
}

func (s *sessionService) Back(id uuid.UUID) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	switch sess.flow {
	case domain.FlowPagosMasivos:
		sess.masivos.Back()
	case domain.FlowRecaudacion:
		sess.recaudacion.Back()
	}
	// Going back always clears the error banner.
	sess.lastValidation = nil
	sess.updatedAt = s.now()

	return s.state(sess), nil
}

func (s *sessionService) Jump(id uuid.UUID, stepID string) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	switch sess.flow {
	case domain.FlowPagosMasivos:
		err = sess.masivos.JumpTo(stepID)
	case domain.FlowRecaudacion:
		err = sess.recaudacion.JumpTo(stepID)
	}
	if err != nil {
		return nil, err
	}
	sess.lastValidation = nil
	sess.updatedAt = s.now()

	return s.state(sess), nil
}

func (s *sessionService) Submit(id uuid.UUID) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	atReview := false
	switch sess.flow {
	case domain.FlowPagosMasivos:
		atReview = sess.masivos.AtReview()
	case domain.FlowRecaudacion:
		atReview = sess.recaudacion.AtReview()
	}
	if !atReview {
		return nil, domain.ErrNotAtReview
	}

	if failed := sess.validateAll(); len(failed) > 0 {
		return nil, &SubmitValidationError{Steps: failed}
	}

	if err := sess.generate(s.now()); err != nil {
		return nil, err
	}
	sess.updatedAt = s.now()

	return s.state(sess), nil
}

func (s *sessionService) Document(id uuid.UUID) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	switch {
	case sess.masivosAnnex != nil:
		return sess.masivosAnnex, nil
	case sess.recaudacionAnnex != nil:
		return sess.recaudacionAnnex, nil
	}
	return nil, domain.ErrNotSubmitted
}

func (s *sessionService) RenderPDF(id uuid.UUID) (*Download, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	var dl *Download
	err = captureGeneration("session.RenderPDF", func() error {
		switch {
		case sess.masivosAnnex != nil:
			content, err := docgen.MasivosPDF(sess.masivosAnnex)
			if err != nil {
				return err
			}
			dl = &Download{
				Filename:    docgen.MasivosFilename(sess.masivosAnnex.CompanyName),
				ContentType: "application/pdf",
				Content:     content,
			}
		case sess.recaudacionAnnex != nil:
			content, err := docgen.RecaudacionPDF(sess.recaudacionAnnex)
			if err != nil {
				return err
			}
			dl = &Download{
				Filename:    docgen.RecaudacionFilename(sess.recaudacionAnnex.RazonSocial),
				ContentType: "application/pdf",
				Content:     content,
			}
		default:
			return domain.ErrNotSubmitted
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dl, nil
}

func (s *sessionService) RenderPrint(id uuid.UUID) (*Download, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	var dl *Download
	err = captureGeneration("session.RenderPrint", func() error {
		var buf bytes.Buffer
		switch {
		case sess.masivosAnnex != nil:
			if err := printview.WriteMasivos(&buf, sess.masivosAnnex); err != nil {
				return err
			}
			dl = &Download{
				Filename:    htmlName(docgen.MasivosFilename(sess.masivosAnnex.CompanyName)),
				ContentType: "text/html; charset=utf-8",
				Content:     buf.Bytes(),
			}
		case sess.recaudacionAnnex != nil:
			if err := printview.WriteRecaudacion(&buf, sess.recaudacionAnnex); err != nil {
				return err
			}
			dl = &Download{
				Filename:    htmlName(docgen.RecaudacionFilename(sess.recaudacionAnnex.RazonSocial)),
				ContentType: "text/html; charset=utf-8",
				Content:     buf.Bytes(),
			}
		default:
			return domain.ErrNotSubmitted
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dl, nil
}

func (s *sessionService) RenderXLSX(id uuid.UUID) (*Download, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	var dl *Download
	err = captureGeneration("session.RenderXLSX", func() error {
		var buf bytes.Buffer
		switch {
		case sess.masivosAnnex != nil:
			if err := xlsxexport.WriteMasivos(&buf, sess.masivosAnnex); err != nil {
				return err
			}
			dl = &Download{
				Filename:    xlsxexport.BuildFilename("Anexo_Pagos_Masivos", sess.masivosAnnex.CompanyName, sess.masivosAnnex.GeneratedAt),
				ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
				Content:     buf.Bytes(),
			}
		case sess.recaudacionAnnex != nil:
			if err := xlsxexport.WriteRecaudacion(&buf, sess.recaudacionAnnex); err != nil {
				return err
			}
			dl = &Download{
				Filename:    xlsxexport.BuildFilename("Anexo_Recaudacion", sess.recaudacionAnnex.RazonSocial, sess.recaudacionAnnex.GeneratedAt),
				ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
				Content:     buf.Bytes(),
			}
		default:
			return domain.ErrNotSubmitted
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dl, nil
}

// StartSweeper launches the TTL sweep loop. It stops when ctx is canceled.
func (s *sessionService) StartSweeper(ctx context.Context) {
	if s.cfg.SweepInterval <= 0 || s.cfg.TTL <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(s.cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(s.now())
			}
		}
	}()
}

func (s *sessionService) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int
	for id, sess := range s.sessions {
		if now.Sub(sess.updatedAt) > s.cfg.TTL {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("session.sweep: removed %d expired session(s)", removed)
	}
}

func (s *sessionService) lookup(id uuid.UUID) (*session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *sessionService) state(sess *session) *SessionState {
	st := &SessionState{
		ID:             sess.id,
		Flow:           sess.flow,
		Submitted:      sess.submitted(),
		LastValidation: sess.lastValidation,
		CreatedAt:      sess.createdAt,
		UpdatedAt:      sess.updatedAt,
	}
	switch sess.flow {
	case domain.FlowPagosMasivos:
		fillState(st, sess.masivos)
	case domain.FlowRecaudacion:
		fillState(st, sess.recaudacion)
	}
	return st
}

// fillState projects a machine's navigation state into the DTO. IsComplete
// means the step was reached and its validator passes right now, which is
// what the review screen's checkmarks reflect.
func fillState[T any](st *SessionState, m *wizard.Machine[T]) {
	visible := m.VisibleSteps()
	steps := make([]StepInfo, 0, len(visible))
	for i, step := range visible {
		complete := i <= m.Furthest()
		if complete && step.Validate != nil {
			complete = step.Validate(m.Form()).IsValid
		}
		steps = append(steps, StepInfo{
			ID:         step.ID,
			Title:      step.Title,
			IsRequired: step.Required,
			IsComplete: complete,
		})
	}
	st.CurrentStep = visible[m.Index()].ID
	st.StepIndex = m.Index()
	st.FurthestStep = visible[m.Furthest()].ID
	st.VisibleSteps = steps
	st.Form = m.Form()
}

// mergeData unmarshals the raw payload over the session's form. Only the
// top-level keys present in the payload change.
func (sess *session) mergeData(raw json.RawMessage) error {
	var err error
	switch sess.flow {
	case domain.FlowPagosMasivos:
		err = json.Unmarshal(raw, sess.masivos.Form())
	case domain.FlowRecaudacion:
		err = json.Unmarshal(raw, sess.recaudacion.Form())
		if err == nil {
			normalizeRecaudacion(sess.recaudacion.Form())
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFormData, err)
	}
	return nil
}

func (sess *session) applyPolicyChange(change PolicyChangeInput) error {
	if sess.flow != domain.FlowRecaudacion {
		return domain.ErrFlowMismatch
	}
	switch change.Field {
	case domain.PolicyAcceptsOverdue, domain.PolicyRequiresSequential, domain.PolicyAcceptsPartial:
	default:
		return fmt.Errorf("%w: unknown policy field %q", domain.ErrInvalidFormData, change.Field)
	}
	f := sess.recaudacion.Form()
	f.Policy = domain.ApplyPaymentPolicyChange(f.Policy, change.Field, change.Value)
	return nil
}

// normalizeRecaudacion enforces the hard input caps the paper form imposes,
// mirroring what the UI does while typing.
func normalizeRecaudacion(f *domain.RecaudacionForm) {
	f.NombreComercial = validator.TruncateAt(f.NombreComercial, validator.NombreComercialMax)
	f.NombreServicio = validator.TruncateAt(f.NombreServicio, validator.NombreServicioMax)
	f.CodigoIdentificadorDeudor = validator.TruncateAt(
		validator.StripDeudorCode(f.CodigoIdentificadorDeudor), validator.CodigoDeudorMax)
	f.NumeroCaracteresDeudor = validator.TruncateAt(f.NumeroCaracteresDeudor, validator.NumCaracteresDeudorMax)
}

// validateAll runs every visible step's validator, returning the blocking
// failures keyed by step id.
func (sess *session) validateAll() map[string]domain.StepValidation {
	failed := make(map[string]domain.StepValidation)
	switch sess.flow {
	case domain.FlowPagosMasivos:
		collectFailures(failed, sess.masivos)
	case domain.FlowRecaudacion:
		collectFailures(failed, sess.recaudacion)
	}
	return failed
}

func collectFailures[T any](failed map[string]domain.StepValidation, m *wizard.Machine[T]) {
	for _, step := range m.VisibleSteps() {
		if step.Validate == nil {
			continue
		}
		if v := step.Validate(m.Form()); !v.CanProceed {
			failed[step.ID] = v
		}
	}
}

// generate maps the form into its immutable annex record. The layout
// primitives downstream panic on programmer error; the recover here turns
// that into a retryable failure instead of killing the session.
func (sess *session) generate(now time.Time) error {
	return captureGeneration("session.generate", func() error {
		switch sess.flow {
		case domain.FlowPagosMasivos:
			sess.masivosAnnex = mapper.ToMasivosAnnex(sess.masivos.Form(), now)
		case domain.FlowRecaudacion:
			sess.recaudacionAnnex = mapper.ToRecaudacionAnnex(sess.recaudacion.Form(), now)
		}
		return nil
	})
}

// captureGeneration converts panics from the mapping and rendering path
// into ErrDocumentGeneration.
func captureGeneration(op string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %w: %v", op, domain.ErrDocumentGeneration, r)
		}
	}()
	return fn()
}

func htmlName(pdfName string) string {
	return strings.TrimSuffix(pdfName, ".pdf") + ".html"
}
