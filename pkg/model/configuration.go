package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownValue is wrapped by every ValidationError produced while building
// a Configuration.
var ErrUnknownValue = errors.New("model: unknown value")

// Field names used in validation errors and answer files.
const (
	FieldObjective     = "objective"
	FieldDataTypes     = "data_types"
	FieldSecurityLevel = "security_level"
)

// ValidationError names the answer field and the value that is not part of
// the catalog.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("model: unknown %s value %q", e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrUnknownValue
}

// Configuration is the finished answer set handed to the kit generator. The
// zero value is valid: no objective, no data types, no controls.
type Configuration struct {
	objective     Objective
	dataTypes     []DataType
	securityLevel []SecurityControl
}

// NewConfiguration validates and canonicalises raw answers. Values are
// trimmed and lower-cased, duplicates removed and tags ordered by catalog
// position. Every unknown value is reported; the returned error joins one
// *ValidationError per offending value.
func NewConfiguration(objective string, dataTypes, securityLevel []string) (Configuration, error) {
	var errs []error

	obj := normalizeValue(objective)
	if obj != "" && !IsObjective(obj) {
		errs = append(errs, &ValidationError{Field: FieldObjective, Value: objective})
	}

	types, typeErrs := canonicalSet(dataTypes, dataTypeIndex, FieldDataTypes)
	controls, controlErrs := canonicalSet(securityLevel, securityIndex, FieldSecurityLevel)
	errs = append(errs, typeErrs...)
	errs = append(errs, controlErrs...)
	if len(errs) > 0 {
		return Configuration{}, errors.Join(errs...)
	}

	cfg := Configuration{objective: Objective(obj)}
	for _, value := range types {
		cfg.dataTypes = append(cfg.dataTypes, DataType(value))
	}
	for _, value := range controls {
		cfg.securityLevel = append(cfg.securityLevel, SecurityControl(value))
	}
	return cfg, nil
}

// MustConfiguration is NewConfiguration for fixed inputs; it panics on
// invalid values.
func MustConfiguration(objective string, dataTypes, securityLevel []string) Configuration {
	cfg, err := NewConfiguration(objective, dataTypes, securityLevel)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Objective returns the selected objective, empty when none was chosen.
func (c Configuration) Objective() Objective {
	return c.objective
}

// DataTypes returns a copy of the selected data types in catalog order.
func (c Configuration) DataTypes() []DataType {
	return append([]DataType(nil), c.dataTypes...)
}

// SecurityLevel returns a copy of the selected controls in catalog order.
func (c Configuration) SecurityLevel() []SecurityControl {
	return append([]SecurityControl(nil), c.securityLevel...)
}

// HasDataType reports whether d was selected.
func (c Configuration) HasDataType(d DataType) bool {
	for _, v := range c.dataTypes {
		if v == d {
			return true
		}
	}
	return false
}

// HasAnyDataType reports whether at least one of the given data types was
// selected.
func (c Configuration) HasAnyDataType(types ...DataType) bool {
	for _, d := range types {
		if c.HasDataType(d) {
			return true
		}
	}
	return false
}

// HasControl reports whether control was selected.
func (c Configuration) HasControl(control SecurityControl) bool {
	for _, v := range c.securityLevel {
		if v == control {
			return true
		}
	}
	return false
}

// Complete reports whether every answer the wizard requires is present.
func (c Configuration) Complete() bool {
	return c.objective != "" && len(c.dataTypes) > 0 && len(c.securityLevel) > 0
}

// Equal reports whether two configurations hold the same answers.
func (c Configuration) Equal(other Configuration) bool {
	if c.objective != other.objective ||
		len(c.dataTypes) != len(other.dataTypes) ||
		len(c.securityLevel) != len(other.securityLevel) {
		return false
	}
	for i := range c.dataTypes {
		if c.dataTypes[i] != other.dataTypes[i] {
			return false
		}
	}
	for i := range c.securityLevel {
		if c.securityLevel[i] != other.securityLevel[i] {
			return false
		}
	}
	return true
}

// Answers converts the configuration back into its serialisable form.
func (c Configuration) Answers() Answers {
	out := Answers{Objective: string(c.objective)}
	for _, d := range c.dataTypes {
		out.DataTypes = append(out.DataTypes, string(d))
	}
	for _, s := range c.securityLevel {
		out.SecurityLevel = append(out.SecurityLevel, string(s))
	}
	return out
}

func normalizeValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func canonicalSet(values []string, index map[string]int, field string) ([]string, []error) {
	if len(values) == 0 {
		return nil, nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	var errs []error
	for _, raw := range values {
		value := normalizeValue(raw)
		if value == "" {
			continue
		}
		if _, ok := index[value]; !ok {
			errs = append(errs, &ValidationError{Field: field, Value: raw})
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return index[out[i]] < index[out[j]]
	})
	return out, errs
}
