package model

// Catalog tables are package-level and never mutated; accessor functions
// hand out copies.
var (
	objectiveOptions = []Option{
		{Value: string(ObjectiveSearch), Label: "Internal search engine", Description: "Search across documents and knowledge bases"},
		{Value: string(ObjectiveAssistant), Label: "Business conversational assistant", Description: "HR, finance, customer support..."},
		{Value: string(ObjectiveSynthesis), Label: "Summary generation", Description: "Summaries, reports, documentation"},
		{Value: string(ObjectiveAnalysis), Label: "Document analysis", Description: "Contracts, PDFs, unstructured data"},
	}

	dataTypeOptions = []Option{
		{Value: string(DataTypeHR), Label: "HR", Description: "Job descriptions, resumes, interviews", Level: LevelMedium},
		{Value: string(DataTypeLegal), Label: "Legal", Description: "Contracts, internal policies", Level: LevelHigh},
		{Value: string(DataTypeFinancial), Label: "Financial", Description: "Budgets, balance sheets, forecasts", Level: LevelHigh},
		{Value: string(DataTypePersonal), Label: "Personal data", Description: "Emails, names, addresses...", Level: LevelHigh},
		{Value: string(DataTypePublic), Label: "Public data", Description: "Documentation, FAQ, guides", Level: LevelLow},
		{Value: string(DataTypeTechnical), Label: "Technical", Description: "Code, configurations, logs", Level: LevelMedium},
	}

	securityOptions = []Option{
		{Value: string(ControlSSO), Label: "SSO authentication", Description: "Azure AD, Google, SAML", Level: LevelHigh},
		{Value: string(ControlAudit), Label: "Access logging", Description: "Auditable logs and traceability", Level: LevelHigh},
		{Value: string(ControlEncryption), Label: "Encryption at rest", Description: "KMS, Vault, rotating keys", Level: LevelHigh},
		{Value: string(ControlRBAC), Label: "Role-based access control", Description: "RBAC, fine-grained policies", Level: LevelMedium},
		{Value: string(ControlGDPR), Label: "Full GDPR compliance", Description: "DPO, registers, procedures", Level: LevelHigh},
		{Value: string(ControlMinimal), Label: "Minimal configuration", Description: "For quick testing", Level: LevelLow},
	}

	objectiveIndex = indexOptions(objectiveOptions)
	dataTypeIndex  = indexOptions(dataTypeOptions)
	securityIndex  = indexOptions(securityOptions)
)

func indexOptions(options []Option) map[string]int {
	out := make(map[string]int, len(options))
	for i, opt := range options {
		out[opt.Value] = i
	}
	return out
}

// ObjectiveOptions lists the selectable objectives in display order.
func ObjectiveOptions() []Option {
	return append([]Option(nil), objectiveOptions...)
}

// DataTypeOptions lists the selectable data types in display order.
func DataTypeOptions() []Option {
	return append([]Option(nil), dataTypeOptions...)
}

// SecurityOptions lists the selectable security controls in display order.
func SecurityOptions() []Option {
	return append([]Option(nil), securityOptions...)
}

// ObjectiveLabel returns the display label for an objective, falling back to
// the raw value when the objective is not in the catalog.
func ObjectiveLabel(o Objective) string {
	if idx, ok := objectiveIndex[string(o)]; ok {
		return objectiveOptions[idx].Label
	}
	return string(o)
}

// DataTypeLabel returns the display label for a data type, falling back to
// the raw value.
func DataTypeLabel(d DataType) string {
	if idx, ok := dataTypeIndex[string(d)]; ok {
		return dataTypeOptions[idx].Label
	}
	return string(d)
}

// SecurityLabel returns the display label for a control, falling back to the
// raw value.
func SecurityLabel(c SecurityControl) string {
	if idx, ok := securityIndex[string(c)]; ok {
		return securityOptions[idx].Label
	}
	return string(c)
}

// Sensitivity reports the static classification of a data type.
func Sensitivity(d DataType) (Level, bool) {
	idx, ok := dataTypeIndex[string(d)]
	if !ok {
		return "", false
	}
	return dataTypeOptions[idx].Level, true
}

// Priority reports the static classification of a security control.
func Priority(c SecurityControl) (Level, bool) {
	idx, ok := securityIndex[string(c)]
	if !ok {
		return "", false
	}
	return securityOptions[idx].Level, true
}

// IsObjective reports whether value is a catalog objective.
func IsObjective(value string) bool {
	_, ok := objectiveIndex[value]
	return ok
}

// IsDataType reports whether value is a catalog data type.
func IsDataType(value string) bool {
	_, ok := dataTypeIndex[value]
	return ok
}

// IsSecurityControl reports whether value is a catalog security control.
func IsSecurityControl(value string) bool {
	_, ok := securityIndex[value]
	return ok
}
