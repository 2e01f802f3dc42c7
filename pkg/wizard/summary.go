package wizard

import "github.com/goliatone/go-ragkit/pkg/model"

// SensitiveDataAlertText is shown on the data-types step once sensitive data
// is selected.
const SensitiveDataAlertText = "Sensitive data detected: GDPR compliance and hardened security measures will be enabled."

// Synthesis has no dedicated summary line.
var objectiveSummary = map[model.Objective]string{
	model.ObjectiveSearch:    "Optimized internal search engine",
	model.ObjectiveAssistant: "Intelligent conversational assistant",
	model.ObjectiveAnalysis:  "Advanced document analyzer",
}

// alertDataTypes differ from the generator's sensitivity sets on purpose:
// the alert also covers HR files.
var alertDataTypes = []model.DataType{
	model.DataTypePersonal,
	model.DataTypeHR,
	model.DataTypeLegal,
}

// SensitiveDataAlert reports whether the data-types step should warn about
// sensitive data.
func (s *Session) SensitiveDataAlert() bool {
	for _, d := range alertDataTypes {
		for _, selected := range s.dataTypes {
			if selected == string(d) {
				return true
			}
		}
	}
	return false
}

// SummaryLines lists what the kit will contain for the current answers.
func (s *Session) SummaryLines() []string {
	cfg, err := s.Configuration()
	if err != nil {
		return nil
	}
	return Summary(cfg)
}

// Summary lists what the kit will contain for cfg.
func Summary(cfg model.Configuration) []string {
	var lines []string
	if line, ok := objectiveSummary[cfg.Objective()]; ok {
		lines = append(lines, line)
	}
	if cfg.HasDataType(model.DataTypePersonal) {
		lines = append(lines, "Personal data protection (GDPR)")
	}
	if cfg.HasControl(model.ControlEncryption) {
		lines = append(lines, "End-to-end encryption enabled")
	}
	if cfg.HasControl(model.ControlSSO) {
		lines = append(lines, "SSO authentication configured")
	}
	return append(lines, "Secure configuration ready for deployment")
}
