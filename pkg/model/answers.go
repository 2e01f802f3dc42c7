package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Answers is the serialisable shape of a Configuration, used by answer files
// and the wizard's save option.
type Answers struct {
	Objective     string   `json:"objective" yaml:"objective"`
	DataTypes     []string `json:"data_types" yaml:"data_types"`
	SecurityLevel []string `json:"security_level" yaml:"security_level"`
}

// Configuration validates the answers and returns the canonical value.
func (a Answers) Configuration() (Configuration, error) {
	return NewConfiguration(a.Objective, a.DataTypes, a.SecurityLevel)
}

// LoadAnswers reads a JSON or YAML answer file from disk.
func LoadAnswers(path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, fmt.Errorf("model: read answers: %w", err)
	}
	return ParseAnswers(data, path)
}

// ParseAnswers decodes an answer document. JSON is attempted first, then
// YAML; source only labels error messages.
func ParseAnswers(data []byte, source string) (Configuration, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Configuration{}, fmt.Errorf("model: answers %s is empty", source)
	}

	var answers Answers
	if err := json.Unmarshal(data, &answers); err != nil {
		answers = Answers{}
		if err := yaml.Unmarshal(data, &answers); err != nil {
			return Configuration{}, fmt.Errorf("model: parse answers %s: invalid JSON or YAML: %w", source, err)
		}
	}

	cfg, err := answers.Configuration()
	if err != nil {
		return Configuration{}, fmt.Errorf("model: answers %s: %w", source, err)
	}
	return cfg, nil
}

// MarshalAnswers encodes a configuration as a YAML answer document.
func MarshalAnswers(cfg Configuration) ([]byte, error) {
	out, err := yaml.Marshal(cfg.Answers())
	if err != nil {
		return nil, fmt.Errorf("model: marshal answers: %w", err)
	}
	return out, nil
}
