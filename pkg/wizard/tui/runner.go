// Package tui walks a wizard session in the terminal through a pluggable
// prompt driver.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-ragkit/pkg/model"
	"github.com/goliatone/go-ragkit/pkg/wizard"
)

// WelcomeText is printed before the first question.
const WelcomeText = "Secure RAG Kit generator: answer four questions to get a ready-to-deploy kit (Terraform, Weaviate, README)."

// GenerateFunc produces the kit for a finished configuration and returns a
// short description of where it went.
type GenerateFunc func(ctx context.Context, cfg model.Configuration) (string, error)

// Result describes one generated kit.
type Result struct {
	Configuration model.Configuration
	Location      string
}

// Runner drives a wizard.Session with a PromptDriver.
type Runner struct {
	driver   PromptDriver
	theme    Theme
	session  *wizard.Session
	badges   bool
	out      io.Writer
	logger   *slog.Logger
	generate GenerateFunc
}

// New builds a runner that calls generate once the summary is confirmed.
func New(generate GenerateFunc, opts ...Option) (*Runner, error) {
	if generate == nil {
		return nil, errors.New("tui: generate func is required")
	}
	r := &Runner{
		session:  wizard.NewSession(),
		badges:   true,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		generate: generate,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(r.out)
	}
	return r, nil
}

// Session exposes the session being driven.
func (r *Runner) Session() *wizard.Session {
	return r.session
}

// Run walks the session until the user stops creating kits and returns
// every kit generated. Declining the summary returns to the objective
// question with previous answers preselected. After a successful kit the
// user may start over on a fresh session. When generation fails the session
// stays on the summary and the error is returned with the kits made so far.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	var results []Result
	for {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		step := r.session.Step()
		r.logger.Debug("wizard step", "step", step.String())

		var err error
		switch step {
		case wizard.StepWelcome:
			err = r.welcome(ctx)
		case wizard.StepObjective:
			err = r.promptObjective(ctx)
		case wizard.StepDataTypes:
			err = r.promptDataTypes(ctx)
		case wizard.StepSecurity:
			err = r.promptSecurity(ctx)
		case wizard.StepSummary:
			var res Result
			var done bool
			res, done, err = r.summary(ctx)
			if err == nil && done {
				results = append(results, res)
			}
		case wizard.StepComplete:
			var again bool
			again, err = r.driver.Confirm(ctx, ConfirmConfig{Message: "Create another kit?"})
			if err == nil && !again {
				return results, nil
			}
			if err == nil {
				r.session.Reset()
				err = r.session.Next()
			}
		default:
			err = fmt.Errorf("%w: runner cannot resume from %s", wizard.ErrInvalidTransition, step)
		}
		if err != nil {
			return results, err
		}
	}
}

func (r *Runner) welcome(ctx context.Context) error {
	if err := r.info(ctx, WelcomeText); err != nil {
		return err
	}
	return r.session.Next()
}

func (r *Runner) promptObjective(ctx context.Context) error {
	options := model.ObjectiveOptions()
	labels := make([]string, len(options))
	def := 0
	cfg, _ := r.session.Configuration()
	for i, opt := range options {
		labels[i] = opt.Label + " - " + opt.Description
		if model.Objective(opt.Value) == cfg.Objective() {
			def = i
		}
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      r.question("What is the goal of your RAG system?"),
		Options:      labels,
		DefaultIndex: def,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(options) {
		return r.info(ctx, "Invalid objective selection")
	}
	if err := r.session.SelectObjective(model.Objective(options[idx].Value)); err != nil {
		return err
	}
	return r.session.Next()
}

func (r *Runner) promptDataTypes(ctx context.Context) error {
	options := model.DataTypeOptions()
	cfg, _ := r.session.Configuration()
	labels, defaults := r.multiChoices(options, model.Level.SensitivityText, func(value string) bool {
		return cfg.HasDataType(model.DataType(value))
	})

	picked, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  r.question("Which kinds of data will be indexed?"),
		Options:  labels,
		Defaults: defaults,
	})
	if err != nil {
		return err
	}
	types := make([]model.DataType, 0, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(options) {
			types = append(types, model.DataType(options[idx].Value))
		}
	}
	if err := r.session.SetDataTypes(types); err != nil {
		return err
	}
	if !r.session.CanAdvance() {
		return r.info(ctx, "Select at least one data type")
	}
	if r.session.SensitiveDataAlert() {
		if err := r.alert(ctx, wizard.SensitiveDataAlertText); err != nil {
			return err
		}
	}
	return r.session.Next()
}

func (r *Runner) promptSecurity(ctx context.Context) error {
	options := model.SecurityOptions()
	cfg, _ := r.session.Configuration()
	labels, defaults := r.multiChoices(options, model.Level.PriorityText, func(value string) bool {
		return cfg.HasControl(model.SecurityControl(value))
	})

	picked, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  r.question("Which security controls do you need?"),
		Options:  labels,
		Defaults: defaults,
	})
	if err != nil {
		return err
	}
	controls := make([]model.SecurityControl, 0, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(options) {
			controls = append(controls, model.SecurityControl(options[idx].Value))
		}
	}
	if err := r.session.SetSecurityControls(controls); err != nil {
		return err
	}
	if !r.session.CanAdvance() {
		return r.info(ctx, "Select at least one security control")
	}
	return r.session.Next()
}

func (r *Runner) summary(ctx context.Context) (Result, bool, error) {
	if err := r.info(ctx, "Your kit will include:"); err != nil {
		return Result{}, false, err
	}
	for _, line := range r.session.SummaryLines() {
		if err := r.info(ctx, "  - "+line); err != nil {
			return Result{}, false, err
		}
	}

	ok, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: r.question("Generate the kit?"),
		Default: true,
	})
	if err != nil {
		return Result{}, false, err
	}
	if !ok {
		for r.session.Step() != wizard.StepObjective {
			if err := r.session.Back(); err != nil {
				return Result{}, false, err
			}
		}
		return Result{}, false, nil
	}

	var res Result
	err = r.session.Complete(func(cfg model.Configuration) error {
		location, err := r.generate(ctx, cfg)
		if err != nil {
			return err
		}
		res = Result{Configuration: cfg, Location: location}
		return nil
	})
	if err != nil {
		r.logger.Error("kit generation failed", "error", err)
		_ = r.driver.Info(ctx, r.theme.ErrorPrefix+"Generation failed: "+err.Error())
		return Result{}, false, err
	}
	r.logger.Info("kit generated", "location", res.Location)
	if err := r.info(ctx, "Kit ready: "+res.Location); err != nil {
		return Result{}, false, err
	}
	return res, true, nil
}

func (r *Runner) multiChoices(options []model.Option, text func(model.Level) string, selected func(string) bool) ([]string, []int) {
	labels := make([]string, len(options))
	var defaults []int
	for i, opt := range options {
		labels[i] = optionLabel(opt, text, r.badges)
		if selected(opt.Value) {
			defaults = append(defaults, i)
		}
	}
	return labels, defaults
}

func (r *Runner) question(msg string) string {
	if current, total, ok := r.session.Progress(); ok {
		return fmt.Sprintf("[%d/%d] %s", current, total, msg)
	}
	return msg
}

func (r *Runner) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func (r *Runner) alert(ctx context.Context, msg string) error {
	if r.badges {
		msg = Badge(model.LevelHigh, msg)
	}
	return r.driver.Info(ctx, r.theme.AlertPrefix+msg)
}
