package kit

import (
	"strings"
	"time"

	"github.com/goliatone/go-ragkit/pkg/model"
)

// README notice lines.
const (
	NoticeSensitive = "> **Warning:** personal or financial data detected. Enable encryption, access logging and a GDPR review before loading any document."
	NoticeStandard  = "Standard configuration: no personal or financial data declared."
)

const noneLabel = "none"

// sensitiveReadmeTypes trigger the README warning. The set is narrower than
// the infrastructure one: legal data raises sensitivity but not the notice.
var sensitiveReadmeTypes = []model.DataType{
	model.DataTypePersonal,
	model.DataTypeFinancial,
}

// HasSensitiveData reports whether the README carries the sensitive-data
// warning.
func HasSensitiveData(cfg model.Configuration) bool {
	return cfg.HasAnyDataType(sensitiveReadmeTypes...)
}

// RenderReadme renders README.md with now as the generation time.
func (g *Generator) RenderReadme(cfg model.Configuration, now time.Time) (string, error) {
	return g.render(ArtifactReadme, g.readmeData(cfg, now), validateMarkdown)
}

func (g *Generator) readmeData(cfg model.Configuration, now time.Time) map[string]any {
	objective := model.ObjectiveLabel(cfg.Objective())
	if objective == "" {
		objective = noneLabel
	}

	notice := NoticeStandard
	if HasSensitiveData(cfg) {
		notice = NoticeSensitive
	}

	controls := cfg.SecurityLevel()
	checklist := make([]map[string]any, 0, len(controls))
	controlLabels := make([]string, 0, len(controls))
	for _, control := range controls {
		label := model.SecurityLabel(control)
		priority := string(control)
		if level, ok := model.Priority(control); ok {
			priority = level.PriorityText()
		}
		controlLabels = append(controlLabels, label)
		checklist = append(checklist, map[string]any{
			"label":    label,
			"priority": priority,
		})
	}

	return map[string]any{
		"generated_at":       now.In(g.location).Format(TimestampLayout),
		"objective_label":    objective,
		"data_types_label":   joinOrNone(dataTypeLabels(cfg.DataTypes())),
		"data_sensitivity":   DataSensitivity(cfg),
		"security_label":     joinOrNone(controlLabels),
		"notice":             notice,
		"secrets_management": SecretsManagement(cfg),
		"checklist":          checklist,
	}
}

// dataTypeLabels maps each tag to its label, keeping the raw tag when the
// catalog has no entry for it.
func dataTypeLabels(types []model.DataType) []string {
	labels := make([]string, 0, len(types))
	for _, d := range types {
		labels = append(labels, model.DataTypeLabel(d))
	}
	return labels
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return noneLabel
	}
	return strings.Join(values, ", ")
}
