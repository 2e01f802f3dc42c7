package kit

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"

	"github.com/goliatone/go-ragkit/pkg/model"
	"github.com/goliatone/go-ragkit/pkg/render/template"
	"github.com/goliatone/go-ragkit/pkg/render/template/gotemplate"
)

// Artifact names, in archive order.
const (
	ArtifactInfrastructure = "main.tf"
	ArtifactVectorStore    = "weaviate-config.yaml"
	ArtifactReadme         = "README.md"
)

// Generator identity rendered into artifact headers.
const (
	GeneratorName = "ragkit"
	Version       = "0.1.0"
)

// TimestampLayout formats the generation time embedded in the README.
const TimestampLayout = "02/01/2006 15:04 MST"

var artifactOrder = []string{ArtifactInfrastructure, ArtifactVectorStore, ArtifactReadme}

// ArtifactNames returns the kit file names in archive order.
func ArtifactNames() []string {
	return append([]string(nil), artifactOrder...)
}

// Artifact is one generated file.
type Artifact struct {
	Name    string
	Content []byte
}

// Option configures a Generator.
type Option func(*options)

type options struct {
	templateDir string
	engine      template.TemplateRenderer
	tempDir     string
	clock       func() time.Time
	location    *time.Location
	logger      *slog.Logger
	level       int
}

// WithTemplateDir loads artifact templates from dir first, falling back to
// the embedded set for files the directory does not provide.
func WithTemplateDir(dir string) Option {
	return func(o *options) {
		o.templateDir = strings.TrimSpace(dir)
	}
}

// WithEngine replaces the template engine entirely. WithTemplateDir is
// ignored when an engine is supplied.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(o *options) {
		if engine != nil {
			o.engine = engine
		}
	}
}

// WithTempDir sets the parent directory of the scoped staging area. Empty
// means os.TempDir.
func WithTempDir(dir string) Option {
	return func(o *options) {
		o.tempDir = dir
	}
}

// WithClock overrides the time source used for the README timestamp and the
// archive entry times.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLocation sets the zone the README timestamp is rendered in. Defaults
// to UTC.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

// WithLogger routes generation logs to logger. The default discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCompressionLevel sets the deflate level used for archive entries.
func WithCompressionLevel(level int) Option {
	return func(o *options) {
		o.level = level
	}
}

// Generator renders kits. It holds no per-call state and may be reused.
type Generator struct {
	engine   template.TemplateRenderer
	tempDir  string
	clock    func() time.Time
	location *time.Location
	logger   *slog.Logger
	level    int
}

// New constructs a Generator backed by the embedded templates.
func New(opts ...Option) (*Generator, error) {
	o := &options{
		clock:    time.Now,
		location: time.UTC,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		level:    flate.DefaultCompression,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(o)
	}

	if o.level < flate.HuffmanOnly || o.level > flate.BestCompression {
		return nil, fmt.Errorf("kit: invalid compression level %d", o.level)
	}

	globals := map[string]any{
		"generator":         GeneratorName,
		"generator_version": Version,
	}
	engine := o.engine
	if engine != nil {
		if err := engine.GlobalContext(globals); err != nil {
			return nil, fmt.Errorf("kit: template globals: %w", err)
		}
	} else {
		engineOpts := []gotemplate.Option{
			gotemplate.WithFS(TemplatesFS()),
			gotemplate.WithSetName(GeneratorName),
			gotemplate.WithGlobalData(globals),
		}
		if o.templateDir != "" {
			engineOpts = append(engineOpts, gotemplate.WithBaseDir(o.templateDir))
		}
		var err error
		engine, err = gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("kit: template engine: %w", err)
		}
	}

	return &Generator{
		engine:   engine,
		tempDir:  o.tempDir,
		clock:    o.clock,
		location: o.location,
		logger:   o.logger,
		level:    o.level,
	}, nil
}

// Render produces the three artifacts in archive order using the current
// time for the README.
func (g *Generator) Render(cfg model.Configuration) ([]Artifact, error) {
	return g.renderAll(cfg, g.now())
}

// RenderArtifact renders a single artifact by file name.
func (g *Generator) RenderArtifact(name string, cfg model.Configuration) (string, error) {
	switch name {
	case ArtifactInfrastructure:
		return g.RenderInfrastructure(cfg)
	case ArtifactVectorStore:
		return g.RenderVectorStoreConfig(cfg)
	case ArtifactReadme:
		return g.RenderReadme(cfg, g.now())
	default:
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownArtifact, name, strings.Join(artifactOrder, ", "))
	}
}

func (g *Generator) renderAll(cfg model.Configuration, now time.Time) ([]Artifact, error) {
	infra, err := g.RenderInfrastructure(cfg)
	if err != nil {
		return nil, err
	}
	store, err := g.RenderVectorStoreConfig(cfg)
	if err != nil {
		return nil, err
	}
	readme, err := g.RenderReadme(cfg, now)
	if err != nil {
		return nil, err
	}
	return []Artifact{
		{Name: ArtifactInfrastructure, Content: []byte(infra)},
		{Name: ArtifactVectorStore, Content: []byte(store)},
		{Name: ArtifactReadme, Content: []byte(readme)},
	}, nil
}

func (g *Generator) render(name string, data map[string]any, validate func(string, []byte) error) (string, error) {
	out, err := g.engine.RenderTemplate(name, data)
	if err != nil {
		return "", fmt.Errorf("kit: render %s: %w", name, err)
	}
	if err := validate(name, []byte(out)); err != nil {
		return "", err
	}
	return out, nil
}

func (g *Generator) now() time.Time {
	return g.clock()
}
