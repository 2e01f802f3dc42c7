package kit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"

	"github.com/goliatone/go-ragkit/pkg/model"
)

const tempPattern = "ragkit-*"

// GenerateKit renders every artifact, stages them in a scoped temporary
// directory and returns the zip archive. On any error no bytes are returned
// and the staging directory is still removed.
func (g *Generator) GenerateKit(cfg model.Configuration) ([]byte, error) {
	return g.build(cfg, g.now())
}

// GenerateKitTo writes the archive to w. Nothing is written unless the
// whole archive was built.
func (g *Generator) GenerateKitTo(cfg model.Configuration, w io.Writer) error {
	archive, err := g.build(cfg, g.now())
	if err != nil {
		return err
	}
	if _, err := w.Write(archive); err != nil {
		return fmt.Errorf("%w: write archive: %w", ErrGeneration, err)
	}
	return nil
}

func (g *Generator) build(cfg model.Configuration, now time.Time) (archive []byte, err error) {
	dir, err := os.MkdirTemp(g.tempDir, tempPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: create staging dir: %w", ErrGeneration, err)
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil && err == nil {
			archive = nil
			err = fmt.Errorf("%w: remove staging dir: %w", ErrGeneration, rmErr)
		}
	}()

	logger := g.logger.With("staging_dir", dir)

	steps := []struct {
		name   string
		render func() (string, error)
	}{
		{ArtifactInfrastructure, func() (string, error) { return g.RenderInfrastructure(cfg) }},
		{ArtifactVectorStore, func() (string, error) { return g.RenderVectorStoreConfig(cfg) }},
		{ArtifactReadme, func() (string, error) { return g.RenderReadme(cfg, now) }},
	}

	for _, step := range steps {
		content, err := step.render()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
		}
		if err := os.WriteFile(filepath.Join(dir, step.name), []byte(content), 0o600); err != nil {
			return nil, fmt.Errorf("%w: write %s: %w", ErrGeneration, step.name, err)
		}
		logger.Debug("artifact staged", "artifact", step.name, "bytes", len(content))
	}

	out, err := g.pack(dir, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	logger.Info("kit generated",
		"objective", string(cfg.Objective()),
		"data_sensitivity", DataSensitivity(cfg),
		"archive_bytes", len(out))
	return out, nil
}

// pack zips the staged files in archive order.
func (g *Generator) pack(dir string, modified time.Time) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	level := g.level
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})

	for _, name := range artifactOrder {
		if err := addFile(zw, dir, name, modified); err != nil {
			_ = zw.Close()
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

func addFile(zw *zip.Writer, dir, name string, modified time.Time) error {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("open staged %s: %w", name, err)
	}
	defer f.Close()

	header := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: modified,
	}
	header.SetMode(0o644)

	w, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("create archive entry %s: %w", name, err)
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("archive %s: %w", name, err)
	}
	return nil
}
