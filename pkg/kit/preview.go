package kit

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/goliatone/go-ragkit/pkg/model"
)

var (
	markdownOnce     sync.Once
	markdownInstance goldmark.Markdown

	previewPolicyOnce sync.Once
	previewPolicy     *bluemonday.Policy
)

// markdown returns the shared goldmark instance; parsing keeps its state
// per call so one instance serves every generator.
func markdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownInstance
}

func previewSanitizer() *bluemonday.Policy {
	previewPolicyOnce.Do(func() {
		previewPolicy = bluemonday.UGCPolicy()
	})
	return previewPolicy
}

// PreviewReadme renders the README for cfg and converts it to sanitised
// HTML.
func (g *Generator) PreviewReadme(cfg model.Configuration) ([]byte, error) {
	readme, err := g.RenderReadme(cfg, g.now())
	if err != nil {
		return nil, err
	}
	return MarkdownToHTML([]byte(readme))
}

// MarkdownToHTML converts Markdown to HTML and strips anything outside the
// user-generated-content policy.
func MarkdownToHTML(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdown().Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("kit: convert markdown: %w", err)
	}
	return previewSanitizer().SanitizeBytes(buf.Bytes()), nil
}
