package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-ragkit/pkg/kit"
	"github.com/goliatone/go-ragkit/pkg/model"
	"github.com/goliatone/go-ragkit/pkg/wizard/tui"
)

const defaultOutput = "rag-kit.zip"

func generateCmd(a *app) *cobra.Command {
	var (
		flags  configFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a kit from an answer file or flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			if !cfg.Complete() {
				a.logger.Warn("configuration incomplete, generating with defaults", "answers", cfg.Answers())
			}
			gen, err := a.generator()
			if err != nil {
				return err
			}
			if output == "-" {
				return gen.GenerateKitTo(cfg, cmd.OutOrStdout())
			}
			path, err := writeKit(gen, cfg, output)
			if err != nil {
				return err
			}
			a.logger.Info("kit generated", "path", path, "objective", cfg.Objective())
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", defaultOutput, "Archive path, or - for stdout")
	return cmd
}

func wizardCmd(a *app) *cobra.Command {
	var output, saveAnswers string

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Answer the questionnaire interactively and write the kit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := a.generator()
			if err != nil {
				return err
			}
			kits := 0
			runner, err := tui.New(func(_ context.Context, cfg model.Configuration) (string, error) {
				path, err := writeKit(gen, cfg, numberedPath(output, kits+1))
				if err == nil {
					kits++
				}
				return path, err
			},
				tui.WithOutput(cmd.OutOrStdout()),
				tui.WithLogger(a.logger),
				tui.WithTheme(tui.Theme{InfoPrefix: "", AlertPrefix: "! ", ErrorPrefix: "x "}),
			)
			if err != nil {
				return err
			}
			results, err := runner.Run(cmd.Context())
			if errors.Is(err, tui.ErrAborted) {
				a.logger.Info("wizard aborted", "kits", len(results))
				err = nil
			}
			if err != nil {
				return err
			}
			if saveAnswers != "" && len(results) > 0 {
				return writeAnswers(results[len(results)-1].Configuration, saveAnswers)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultOutput, "Archive path; later kits in the same run get a -2, -3 suffix")
	cmd.Flags().StringVar(&saveAnswers, "save-answers", "", "Also write the answers to this YAML file")
	return cmd
}

func renderCmd(a *app) *cobra.Command {
	var (
		flags configFlags
		html  bool
	)

	cmd := &cobra.Command{
		Use:       "render <main.tf|weaviate-config.yaml|README.md>",
		Short:     "Print one artifact without building the archive",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kit.ArtifactNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			gen, err := a.generator()
			if err != nil {
				return err
			}
			name := args[0]
			if html {
				if name != kit.ArtifactReadme {
					return fmt.Errorf("--html only applies to %s", kit.ArtifactReadme)
				}
				out, err := gen.PreviewReadme(cfg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			out, err := gen.RenderArtifact(name, cfg)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&html, "html", false, "Render README.md as sanitised HTML")
	return cmd
}

func optionsCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the accepted answers and their classification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printCatalog(cmd.OutOrStdout(), !plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Disable coloured badges")
	return cmd
}

func printCatalog(w io.Writer, styled bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	sections := []struct {
		title   string
		options []model.Option
		text    func(model.Level) string
	}{
		{"objective", model.ObjectiveOptions(), nil},
		{"data_types", model.DataTypeOptions(), model.Level.SensitivityText},
		{"security_level", model.SecurityOptions(), model.Level.PriorityText},
	}
	for i, section := range sections {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s:\n", section.title)
		for _, opt := range section.options {
			class := ""
			if section.text != nil && opt.Level != "" {
				class = section.text(opt.Level)
				if styled {
					class = tui.Badge(opt.Level, class)
				}
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", opt.Value, opt.Label, class, opt.Description)
		}
	}
	return tw.Flush()
}

// writeKit builds the archive before touching path so a failed generation
// leaves no file behind.
func writeKit(gen *kit.Generator, cfg model.Configuration, path string) (string, error) {
	archive, err := gen.GenerateKit(cfg)
	if err != nil {
		return "", err
	}
	if err := writeFileAtomic(path, archive, 0o644); err != nil {
		return "", fmt.Errorf("write kit: %w", err)
	}
	return path, nil
}

func writeAnswers(cfg model.Configuration, path string) error {
	data, err := model.MarshalAnswers(cfg)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write answers: %w", err)
	}
	return nil
}

// writeFileAtomic stages data in a temp file next to path and renames it
// into place. An existing file at path is either replaced whole or left
// untouched.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ragkit-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}

// numberedPath returns path for the first kit and inserts -n before the
// extension for later ones.
func numberedPath(path string, n int) string {
	if n <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + strconv.Itoa(n) + ext
}
