package kit

import (
	"strings"

	"github.com/goliatone/go-ragkit/pkg/model"
)

// Sensitivity values reported in main.tf and the README.
const (
	SensitivityHigh   = "High"
	SensitivityMedium = "Medium"
)

// generalSlug names resources when no objective was chosen.
const generalSlug = "general"

// sensitiveInfraTypes raise the infrastructure sensitivity to High.
var sensitiveInfraTypes = []model.DataType{
	model.DataTypePersonal,
	model.DataTypeFinancial,
	model.DataTypeLegal,
}

// DataSensitivity is High when any of personal, financial or legal data is
// declared and Medium otherwise.
func DataSensitivity(cfg model.Configuration) string {
	if cfg.HasAnyDataType(sensitiveInfraTypes...) {
		return SensitivityHigh
	}
	return SensitivityMedium
}

// SecretsManagement reports whether the kit provisions a KMS key and a
// secrets store.
func SecretsManagement(cfg model.Configuration) bool {
	return cfg.HasControl(model.ControlEncryption)
}

// RenderInfrastructure renders main.tf.
func (g *Generator) RenderInfrastructure(cfg model.Configuration) (string, error) {
	return g.render(ArtifactInfrastructure, infrastructureData(cfg), validateHCL)
}

func infrastructureData(cfg model.Configuration) map[string]any {
	slug := objectiveSlug(cfg.Objective())
	return map[string]any{
		"objective":          string(cfg.Objective()),
		"data_types":         joinDataTypes(cfg.DataTypes()),
		"data_sensitivity":   DataSensitivity(cfg),
		"secrets_management": SecretsManagement(cfg),
		"bucket_prefix":      "rag-" + slug + "-docs-",
		"instance_name":      "rag-" + slug + "-weaviate",
		"kms_description":    "Secure RAG " + slug + " encryption key",
		"secret_prefix":      "rag-" + slug + "-",
	}
}

func objectiveSlug(o model.Objective) string {
	slug := strings.ToLower(strings.TrimSpace(string(o)))
	if slug == "" {
		return generalSlug
	}
	return slug
}

func joinDataTypes(types []model.DataType) string {
	values := make([]string, 0, len(types))
	for _, d := range types {
		values = append(values, string(d))
	}
	return strings.Join(values, ",")
}
