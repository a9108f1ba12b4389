// Package wizard implements the step state machine both enrollment flows
// run on. Visibility is recomputed from the form on every read, so a data
// change that hides a step immediately re-indexes navigation.
package wizard

import (
	"anexos/internal/domain"
)

// StepReview is the id of the terminal review step in every flow.
const StepReview = "review"

// Step describes one wizard step for form type T. A nil ShouldShow means
// always visible; a nil Validate means the step never blocks.
type Step[T any] struct {
	ID       string
	Title    string
	Required bool

	ShouldShow func(*T) bool
	Validate   func(*T) domain.StepValidation
}

func (s Step[T]) visible(form *T) bool {
	return s.ShouldShow == nil || s.ShouldShow(form)
}

// Machine tracks the current position inside the visible subsequence of a
// step list. It is not safe for concurrent use; callers serialize access
// per session.
type Machine[T any] struct {
	steps    []Step[T]
	form     *T
	index    int
	furthest int
}

// NewMachine starts a machine at the first visible step.
func NewMachine[T any](steps []Step[T], form *T) *Machine[T] {
	return &Machine[T]{steps: steps, form: form}
}

// Form returns the mutable form the machine navigates over.
func (m *Machine[T]) Form() *T { return m.form }

// VisibleSteps filters the step list against the current form data.
func (m *Machine[T]) VisibleSteps() []Step[T] {
	visible := make([]Step[T], 0, len(m.steps))
	for _, s := range m.steps {
		if s.visible(m.form) {
			visible = append(visible, s)
		}
	}
	return visible
}

// Index returns the current position within the visible steps.
func (m *Machine[T]) Index() int { return m.index }

// Furthest returns the highest visible index reached so far, the boundary
// JumpTo enforces.
func (m *Machine[T]) Furthest() int { return m.furthest }

// Current returns the step at the current position.
func (m *Machine[T]) Current() Step[T] {
	return m.VisibleSteps()[m.index]
}

// AtReview reports whether the machine sits on the review step.
func (m *Machine[T]) AtReview() bool {
	return m.Current().ID == StepReview
}

// Reclamp pulls the position back into range after a data change shrank the
// visible list. Forward movement never happens here.
func (m *Machine[T]) Reclamp() {
	if last := len(m.VisibleSteps()) - 1; m.index > last {
		m.index = last
	}
	if m.furthest < m.index {
		m.furthest = m.index
	}
	if last := len(m.VisibleSteps()) - 1; m.furthest > last {
		m.furthest = last
	}
}

// ValidateCurrent runs the current step's validator against the form.
func (m *Machine[T]) ValidateCurrent() domain.StepValidation {
	step := m.Current()
	if step.Validate == nil {
		return domain.StepResult(nil)
	}
	return step.Validate(m.form)
}

// Next validates the current step and advances on success. The returned
// StepValidation carries the field errors either way; the bool reports
// whether the position moved. Next on the review step does not move, the
// caller submits instead.
func (m *Machine[T]) Next() (domain.StepValidation, bool) {
	v := m.ValidateCurrent()
	if !v.CanProceed {
		return v, false
	}
	last := len(m.VisibleSteps()) - 1
	if m.index >= last {
		return v, false
	}
	m.index++
	if m.furthest < m.index {
		m.furthest = m.index
	}
	return v, true
}

// Back moves one step backwards without validating.
func (m *Machine[T]) Back() bool {
	if m.index == 0 {
		return false
	}
	m.index--
	return true
}

// JumpTo moves directly to a step by id, used by the review screen's edit
// links and the progress indicator. Only steps already reached are valid
// targets.
func (m *Machine[T]) JumpTo(id string) error {
	visible := m.VisibleSteps()
	for i, s := range visible {
		if s.ID != id {
			continue
		}
		if i > m.furthest {
			return domain.ErrStepNotVisited
		}
		m.index = i
		return nil
	}
	return domain.ErrUnknownStep
}
