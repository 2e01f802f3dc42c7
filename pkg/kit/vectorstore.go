package kit

import (
	"strconv"

	"github.com/goliatone/go-ragkit/pkg/model"
)

// AnonymousAccessEnabled is false once SSO is requested.
func AnonymousAccessEnabled(cfg model.Configuration) bool {
	return !cfg.HasControl(model.ControlSSO)
}

// RenderVectorStoreConfig renders weaviate-config.yaml.
func (g *Generator) RenderVectorStoreConfig(cfg model.Configuration) (string, error) {
	data := map[string]any{
		"anonymous_access": strconv.FormatBool(AnonymousAccessEnabled(cfg)),
	}
	return g.render(ArtifactVectorStore, data, validateYAML)
}
