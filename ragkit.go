// Package ragkit is the convenience entry point for generating secure RAG
// kits. The building blocks live under pkg/.
package ragkit

import (
	"io/fs"

	"github.com/goliatone/go-ragkit/pkg/kit"
	"github.com/goliatone/go-ragkit/pkg/model"
)

// Configuration aliases model.Configuration for callers that only import the
// root package.
type Configuration = model.Configuration

// Artifact aliases kit.Artifact.
type Artifact = kit.Artifact

// NewConfiguration validates and canonicalises raw answers.
func NewConfiguration(objective string, dataTypes, securityLevel []string) (Configuration, error) {
	return model.NewConfiguration(objective, dataTypes, securityLevel)
}

// LoadAnswers reads a JSON or YAML answer file.
func LoadAnswers(path string) (Configuration, error) {
	return model.LoadAnswers(path)
}

// NewGenerator exposes the kit generator constructor from the top-level
// module.
func NewGenerator(options ...kit.Option) (*kit.Generator, error) {
	return kit.New(options...)
}

// GenerateKit builds the zip archive for cfg with a one-off generator. It is
// the simplest entry point for callers that just want the bytes.
func GenerateKit(cfg Configuration, options ...kit.Option) ([]byte, error) {
	gen, err := kit.New(options...)
	if err != nil {
		return nil, err
	}
	return gen.GenerateKit(cfg)
}

// EmbeddedTemplates exposes the built-in artifact templates so callers can
// copy them as a starting point for a --templates override directory.
func EmbeddedTemplates() fs.FS {
	return kit.TemplatesFS()
}
