// Package wizard models the kit questionnaire as an explicit step sequence.
// A Session is owned by its caller; nothing here is global. Steps only
// advance when the current one is answered, and the finished answers are
// handed out as an immutable model.Configuration.
package wizard

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-ragkit/pkg/model"
)

var (
	// ErrStepIncomplete is returned by Next when the current step still
	// needs an answer.
	ErrStepIncomplete = errors.New("wizard: step incomplete")
	// ErrInvalidTransition is returned when a move is not allowed from the
	// current step.
	ErrInvalidTransition = errors.New("wizard: invalid transition")
)

// Step is one screen of the wizard.
type Step int

const (
	StepWelcome Step = iota + 1
	StepObjective
	StepDataTypes
	StepSecurity
	StepSummary
	StepGenerating
	StepComplete
)

// QuestionSteps is the number of steps that report progress.
const QuestionSteps = 4

func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepObjective:
		return "objective"
	case StepDataTypes:
		return "data_types"
	case StepSecurity:
		return "security"
	case StepSummary:
		return "summary"
	case StepGenerating:
		return "generating"
	case StepComplete:
		return "complete"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Session accumulates answers while walking the steps. The zero value is not
// usable; call NewSession.
type Session struct {
	step          Step
	objective     string
	dataTypes     []string
	securityLevel []string
}

// NewSession starts a session on the welcome step.
func NewSession() *Session {
	return &Session{step: StepWelcome}
}

// Step returns the current step.
func (s *Session) Step() Step {
	return s.step
}

// Progress reports the position among the question steps (objective, data
// types, security, summary). ok is false outside them.
func (s *Session) Progress() (current, total int, ok bool) {
	if s.step < StepObjective || s.step > StepSummary {
		return 0, QuestionSteps, false
	}
	return int(s.step - StepWelcome), QuestionSteps, true
}

// SelectObjective records the objective.
func (s *Session) SelectObjective(objective model.Objective) error {
	if !model.IsObjective(string(objective)) {
		return &model.ValidationError{Field: model.FieldObjective, Value: string(objective)}
	}
	s.objective = string(objective)
	return nil
}

// ToggleDataType adds the data type when absent and removes it otherwise.
// It returns whether the type is selected afterwards.
func (s *Session) ToggleDataType(d model.DataType) (bool, error) {
	if !model.IsDataType(string(d)) {
		return false, &model.ValidationError{Field: model.FieldDataTypes, Value: string(d)}
	}
	var selected bool
	s.dataTypes, selected = toggle(s.dataTypes, string(d))
	return selected, nil
}

// ToggleSecurityControl adds the control when absent and removes it
// otherwise. It returns whether the control is selected afterwards.
func (s *Session) ToggleSecurityControl(c model.SecurityControl) (bool, error) {
	if !model.IsSecurityControl(string(c)) {
		return false, &model.ValidationError{Field: model.FieldSecurityLevel, Value: string(c)}
	}
	var selected bool
	s.securityLevel, selected = toggle(s.securityLevel, string(c))
	return selected, nil
}

// SetDataTypes replaces the data-type selection.
func (s *Session) SetDataTypes(types []model.DataType) error {
	next := make([]string, 0, len(types))
	for _, d := range types {
		if !model.IsDataType(string(d)) {
			return &model.ValidationError{Field: model.FieldDataTypes, Value: string(d)}
		}
		next, _ = addUnique(next, string(d))
	}
	s.dataTypes = next
	return nil
}

// SetSecurityControls replaces the control selection.
func (s *Session) SetSecurityControls(controls []model.SecurityControl) error {
	next := make([]string, 0, len(controls))
	for _, c := range controls {
		if !model.IsSecurityControl(string(c)) {
			return &model.ValidationError{Field: model.FieldSecurityLevel, Value: string(c)}
		}
		next, _ = addUnique(next, string(c))
	}
	s.securityLevel = next
	return nil
}

// CanAdvance reports whether Next would succeed.
func (s *Session) CanAdvance() bool {
	switch s.step {
	case StepObjective:
		return s.objective != ""
	case StepDataTypes:
		return len(s.dataTypes) > 0
	case StepSecurity:
		return len(s.securityLevel) > 0
	case StepSummary, StepGenerating, StepComplete:
		return false
	default:
		return true
	}
}

// Next moves forward one step. The summary is left only through Complete.
func (s *Session) Next() error {
	switch s.step {
	case StepSummary, StepGenerating:
		return fmt.Errorf("%w: %s advances through Complete", ErrInvalidTransition, s.step)
	case StepComplete:
		return fmt.Errorf("%w: no step after %s", ErrInvalidTransition, s.step)
	}
	if !s.CanAdvance() {
		return fmt.Errorf("%w: %s", ErrStepIncomplete, s.step)
	}
	s.step++
	return nil
}

// Back moves to the previous question step. Answers are kept.
func (s *Session) Back() error {
	switch s.step {
	case StepObjective, StepDataTypes, StepSecurity, StepSummary:
		s.step--
		return nil
	default:
		return fmt.Errorf("%w: cannot go back from %s", ErrInvalidTransition, s.step)
	}
}

// Reset clears every answer and returns to the welcome step.
func (s *Session) Reset() {
	*s = Session{step: StepWelcome}
}

// Configuration returns the answers collected so far.
func (s *Session) Configuration() (model.Configuration, error) {
	return model.NewConfiguration(s.objective, s.dataTypes, s.securityLevel)
}

// Complete runs generate while the session sits on the summary step. The
// session passes through the generating step and lands on complete only
// when generate succeeds; on failure it returns to the summary.
func (s *Session) Complete(generate func(model.Configuration) error) error {
	if s.step != StepSummary {
		return fmt.Errorf("%w: generation starts from %s, not %s", ErrInvalidTransition, StepSummary, s.step)
	}
	cfg, err := s.Configuration()
	if err != nil {
		return err
	}
	if !cfg.Complete() {
		return fmt.Errorf("%w: answers incomplete", ErrStepIncomplete)
	}

	s.step = StepGenerating
	if err := generate(cfg); err != nil {
		s.step = StepSummary
		return err
	}
	s.step = StepComplete
	return nil
}

func toggle(values []string, value string) ([]string, bool) {
	for i, v := range values {
		if v == value {
			return append(values[:i:i], values[i+1:]...), false
		}
	}
	return append(values, value), true
}

func addUnique(values []string, value string) ([]string, bool) {
	for _, v := range values {
		if v == value {
			return values, false
		}
	}
	return append(values, value), true
}
