package wizard_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ragkit/pkg/model"
	"github.com/goliatone/go-ragkit/pkg/wizard"
)

func TestSession_HappyPath(t *testing.T) {
	s := wizard.NewSession()
	if s.Step() != wizard.StepWelcome {
		t.Fatalf("initial step = %s", s.Step())
	}

	mustNext(t, s)
	if s.Step() != wizard.StepObjective {
		t.Fatalf("step after welcome = %s", s.Step())
	}
	current, total, ok := s.Progress()
	if !ok || current != 1 || total != wizard.QuestionSteps {
		t.Fatalf("progress = %d/%d ok=%v", current, total, ok)
	}

	if err := s.SelectObjective(model.ObjectiveSearch); err != nil {
		t.Fatalf("select objective: %v", err)
	}
	mustNext(t, s)

	selected, err := s.ToggleDataType(model.DataTypePublic)
	if err != nil || !selected {
		t.Fatalf("toggle public = %v, %v", selected, err)
	}
	if _, err := s.ToggleDataType(model.DataTypePersonal); err != nil {
		t.Fatalf("toggle personal: %v", err)
	}
	mustNext(t, s)

	if _, err := s.ToggleSecurityControl(model.ControlEncryption); err != nil {
		t.Fatalf("toggle encryption: %v", err)
	}
	if _, err := s.ToggleSecurityControl(model.ControlSSO); err != nil {
		t.Fatalf("toggle sso: %v", err)
	}
	mustNext(t, s)
	if s.Step() != wizard.StepSummary {
		t.Fatalf("step = %s, want summary", s.Step())
	}
	if current, _, ok = s.Progress(); !ok || current != 4 {
		t.Fatalf("summary progress = %d ok=%v", current, ok)
	}

	var got model.Configuration
	err = s.Complete(func(cfg model.Configuration) error {
		if s.Step() != wizard.StepGenerating {
			t.Fatalf("step during generate = %s", s.Step())
		}
		got = cfg
		return nil
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if s.Step() != wizard.StepComplete {
		t.Fatalf("step after complete = %s", s.Step())
	}

	want := model.MustConfiguration("search", []string{"personal", "public"}, []string{"sso", "encryption"})
	if !want.Equal(got) {
		t.Fatalf("unexpected configuration: %+v", got.Answers())
	}
	if _, _, ok = s.Progress(); ok {
		t.Fatalf("expected no progress once complete")
	}
	if err := s.Next(); !errors.Is(err, wizard.ErrInvalidTransition) {
		t.Fatalf("next after complete = %v", err)
	}
}

func TestSession_SummaryOnlyAdvancesThroughComplete(t *testing.T) {
	s := summarySession(t)

	if s.CanAdvance() {
		t.Fatalf("summary must not report CanAdvance")
	}
	if err := s.Next(); !errors.Is(err, wizard.ErrInvalidTransition) {
		t.Fatalf("next from summary = %v, want ErrInvalidTransition", err)
	}
	if s.Step() != wizard.StepSummary {
		t.Fatalf("step = %s, want summary", s.Step())
	}

	calls := 0
	err := s.Complete(func(model.Configuration) error {
		calls++
		if s.CanAdvance() {
			t.Fatalf("generating must not report CanAdvance")
		}
		if err := s.Next(); !errors.Is(err, wizard.ErrInvalidTransition) {
			t.Fatalf("next while generating = %v, want ErrInvalidTransition", err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if calls != 1 {
		t.Fatalf("generate called %d times", calls)
	}
	if s.Step() != wizard.StepComplete {
		t.Fatalf("step = %s, want complete", s.Step())
	}
}

func TestSession_GuardsIncompleteSteps(t *testing.T) {
	s := wizard.NewSession()
	mustNext(t, s)

	if s.CanAdvance() {
		t.Fatalf("objective step should not advance without an answer")
	}
	if err := s.Next(); !errors.Is(err, wizard.ErrStepIncomplete) {
		t.Fatalf("next without objective = %v", err)
	}

	if err := s.SelectObjective(model.ObjectiveAnalysis); err != nil {
		t.Fatalf("select objective: %v", err)
	}
	mustNext(t, s)
	if err := s.Next(); !errors.Is(err, wizard.ErrStepIncomplete) {
		t.Fatalf("next without data types = %v", err)
	}

	if _, err := s.ToggleDataType(model.DataTypeHR); err != nil {
		t.Fatalf("toggle hr: %v", err)
	}
	selected, err := s.ToggleDataType(model.DataTypeHR)
	if err != nil || selected {
		t.Fatalf("second toggle = %v, %v", selected, err)
	}
	if err := s.Next(); !errors.Is(err, wizard.ErrStepIncomplete) {
		t.Fatalf("next after deselecting = %v", err)
	}
}

func TestSession_BackKeepsAnswers(t *testing.T) {
	s := wizard.NewSession()
	if err := s.Back(); !errors.Is(err, wizard.ErrInvalidTransition) {
		t.Fatalf("back from welcome = %v", err)
	}

	mustNext(t, s)
	if err := s.SelectObjective(model.ObjectiveAssistant); err != nil {
		t.Fatalf("select objective: %v", err)
	}
	mustNext(t, s)
	if err := s.SetDataTypes([]model.DataType{model.DataTypeLegal, model.DataTypeLegal}); err != nil {
		t.Fatalf("set data types: %v", err)
	}

	if err := s.Back(); err != nil {
		t.Fatalf("back: %v", err)
	}
	if s.Step() != wizard.StepObjective {
		t.Fatalf("step = %s, want objective", s.Step())
	}
	mustNext(t, s)
	mustNext(t, s)

	cfg, err := s.Configuration()
	if err != nil {
		t.Fatalf("configuration: %v", err)
	}
	if cfg.Objective() != model.ObjectiveAssistant {
		t.Fatalf("objective = %q", cfg.Objective())
	}
	if diff := cmp.Diff([]model.DataType{model.DataTypeLegal}, cfg.DataTypes()); diff != "" {
		t.Fatalf("data types mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_RejectsUnknownValues(t *testing.T) {
	s := wizard.NewSession()
	if err := s.SelectObjective("chatbot"); !errors.Is(err, model.ErrUnknownValue) {
		t.Fatalf("objective = %v", err)
	}
	if _, err := s.ToggleDataType("medical"); !errors.Is(err, model.ErrUnknownValue) {
		t.Fatalf("data type = %v", err)
	}
	if _, err := s.ToggleSecurityControl("firewall"); !errors.Is(err, model.ErrUnknownValue) {
		t.Fatalf("control = %v", err)
	}
	if err := s.SetSecurityControls([]model.SecurityControl{"sso", "vpn"}); !errors.Is(err, model.ErrUnknownValue) {
		t.Fatalf("controls = %v", err)
	}
}

func TestSession_CompleteFailureReturnsToSummary(t *testing.T) {
	s := summarySession(t)
	boom := errors.New("boom")

	if err := s.Complete(func(model.Configuration) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("complete = %v, want boom", err)
	}
	if s.Step() != wizard.StepSummary {
		t.Fatalf("step = %s, want summary", s.Step())
	}

	fresh := wizard.NewSession()
	if err := fresh.Complete(func(model.Configuration) error { return nil }); !errors.Is(err, wizard.ErrInvalidTransition) {
		t.Fatalf("complete from welcome = %v", err)
	}
}

func TestSession_Reset(t *testing.T) {
	s := summarySession(t)
	s.Reset()

	if s.Step() != wizard.StepWelcome {
		t.Fatalf("step = %s, want welcome", s.Step())
	}
	cfg, err := s.Configuration()
	if err != nil {
		t.Fatalf("configuration: %v", err)
	}
	if cfg.Complete() {
		t.Fatalf("expected empty configuration after reset, got %+v", cfg.Answers())
	}
}

func TestSession_SummaryAndAlert(t *testing.T) {
	s := summarySession(t)

	if !s.SensitiveDataAlert() {
		t.Fatalf("expected alert for personal data")
	}
	want := []string{
		"Optimized internal search engine",
		"Personal data protection (GDPR)",
		"End-to-end encryption enabled",
		"SSO authentication configured",
		"Secure configuration ready for deployment",
	}
	if diff := cmp.Diff(want, s.SummaryLines()); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}

	minimal := wizard.Summary(model.MustConfiguration("synthesis", []string{"public"}, []string{"minimal"}))
	if diff := cmp.Diff([]string{"Secure configuration ready for deployment"}, minimal); diff != "" {
		t.Fatalf("synthesis summary mismatch (-want +got):\n%s", diff)
	}

	other := wizard.NewSession()
	if err := other.SetDataTypes([]model.DataType{model.DataTypeFinancial, model.DataTypePublic}); err != nil {
		t.Fatalf("set data types: %v", err)
	}
	if other.SensitiveDataAlert() {
		t.Fatalf("financial and public data should not raise the alert")
	}
	if err := other.SetDataTypes([]model.DataType{model.DataTypeHR}); err != nil {
		t.Fatalf("set data types: %v", err)
	}
	if !other.SensitiveDataAlert() {
		t.Fatalf("hr data should raise the alert")
	}
}

func mustNext(t *testing.T, s *wizard.Session) {
	t.Helper()
	if err := s.Next(); err != nil {
		t.Fatalf("next from %s: %v", s.Step(), err)
	}
}

func summarySession(t *testing.T) *wizard.Session {
	t.Helper()

	s := wizard.NewSession()
	mustNext(t, s)
	if err := s.SelectObjective(model.ObjectiveSearch); err != nil {
		t.Fatalf("select objective: %v", err)
	}
	mustNext(t, s)
	if err := s.SetDataTypes([]model.DataType{model.DataTypePublic, model.DataTypePersonal}); err != nil {
		t.Fatalf("set data types: %v", err)
	}
	mustNext(t, s)
	if err := s.SetSecurityControls([]model.SecurityControl{model.ControlSSO, model.ControlEncryption}); err != nil {
		t.Fatalf("set controls: %v", err)
	}
	mustNext(t, s)
	if s.Step() != wizard.StepSummary {
		t.Fatalf("step = %s, want summary", s.Step())
	}
	return s
}
