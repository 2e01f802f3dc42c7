package model

// Objective identifies what the RAG deployment is meant to do.
type Objective string

const (
	ObjectiveSearch    Objective = "search"
	ObjectiveAssistant Objective = "assistant"
	ObjectiveSynthesis Objective = "synthesis"
	ObjectiveAnalysis  Objective = "analysis"
)

// DataType tags a family of documents fed into the deployment.
type DataType string

const (
	DataTypeHR        DataType = "hr"
	DataTypeLegal     DataType = "legal"
	DataTypeFinancial DataType = "financial"
	DataTypePersonal  DataType = "personal"
	DataTypePublic    DataType = "public"
	DataTypeTechnical DataType = "technical"
)

// SecurityControl tags a security or compliance measure requested for the
// deployment.
type SecurityControl string

const (
	ControlSSO        SecurityControl = "sso"
	ControlAudit      SecurityControl = "audit"
	ControlEncryption SecurityControl = "encryption"
	ControlRBAC       SecurityControl = "rbac"
	ControlGDPR       SecurityControl = "gdpr"
	ControlMinimal    SecurityControl = "minimal"
)

// Level is the static low/medium/high classification attached to data types
// (sensitivity) and security controls (priority).
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// SensitivityText returns the wording used for a data-type classification.
func (l Level) SensitivityText() string {
	switch l {
	case LevelHigh:
		return "Sensitive"
	case LevelMedium:
		return "Moderate"
	case LevelLow:
		return "Public"
	default:
		return string(l)
	}
}

// PriorityText returns the wording used for a security-control
// classification.
func (l Level) PriorityText() string {
	switch l {
	case LevelHigh:
		return "Essential"
	case LevelMedium:
		return "Recommended"
	case LevelLow:
		return "Optional"
	default:
		return string(l)
	}
}

// Option describes one selectable catalog entry.
type Option struct {
	Value       string
	Label       string
	Description string
	Level       Level
}
