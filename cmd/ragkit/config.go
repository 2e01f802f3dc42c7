package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-ragkit/pkg/model"
)

// configFlags describes a configuration from an optional answer file plus
// flag overrides.
type configFlags struct {
	answers       string
	objective     string
	dataTypes     []string
	securityLevel []string
}

func (f *configFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.answers, "answers", "", "Answer file (JSON or YAML)")
	flags.StringVar(&f.objective, "objective", "", "Objective (search, assistant, synthesis, analysis)")
	flags.StringSliceVar(&f.dataTypes, "data-types", nil, "Comma separated data types")
	flags.StringSliceVar(&f.securityLevel, "security", nil, "Comma separated security controls")
}

// resolve loads the answer file, if any, then applies the flags that were
// set explicitly.
func (f *configFlags) resolve(cmd *cobra.Command) (model.Configuration, error) {
	var answers model.Answers
	if f.answers != "" {
		cfg, err := model.LoadAnswers(f.answers)
		if err != nil {
			return model.Configuration{}, err
		}
		answers = cfg.Answers()
	}

	flags := cmd.Flags()
	if flags.Changed("objective") {
		answers.Objective = f.objective
	}
	if flags.Changed("data-types") {
		answers.DataTypes = f.dataTypes
	}
	if flags.Changed("security") {
		answers.SecurityLevel = f.securityLevel
	}
	return answers.Configuration()
}
