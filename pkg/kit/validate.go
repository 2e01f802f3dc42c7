package kit

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

func validateHCL(name string, content []byte) error {
	parser := hclparse.NewParser()
	if _, diags := parser.ParseHCL(content, name); diags.HasErrors() {
		return fmt.Errorf("%w: %s: %s", ErrMalformedArtifact, name, diags.Error())
	}
	return nil
}

func validateYAML(name string, content []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedArtifact, name, err)
	}
	if len(doc) == 0 {
		return fmt.Errorf("%w: %s: empty document", ErrMalformedArtifact, name)
	}
	return nil
}

// validateMarkdown requires the document to open with a level-1 heading.
func validateMarkdown(name string, content []byte) error {
	if strings.TrimSpace(string(content)) == "" {
		return fmt.Errorf("%w: %s: empty document", ErrMalformedArtifact, name)
	}
	doc := markdown().Parser().Parse(text.NewReader(content))
	heading, ok := doc.FirstChild().(*ast.Heading)
	if !ok || heading.Level != 1 {
		return fmt.Errorf("%w: %s: document must start with a level-1 heading", ErrMalformedArtifact, name)
	}
	return nil
}
