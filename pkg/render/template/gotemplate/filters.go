package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Filter names registered on every engine.
const (
	FilterHCLString  = "hclstring"
	FilterYAMLString = "yamlstring"
	FilterTrim       = "trim"
)

func registerDefaultFilters() {
	if !pongo2.FilterExists(FilterTrim) {
		_ = pongo2.RegisterFilter(FilterTrim, filterTrim)
	}
	if !pongo2.FilterExists(FilterHCLString) {
		_ = pongo2.RegisterFilter(FilterHCLString, filterHCLString)
	}
	if !pongo2.FilterExists(FilterYAMLString) {
		_ = pongo2.RegisterFilter(FilterYAMLString, filterYAMLString)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterHCLString emits the input as a complete HCL quoted string literal,
// quotes included. Interpolation and directive markers are escaped so the
// value is always taken literally.
func filterHCLString(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(QuoteHCL(in.String())), nil
}

// filterYAMLString emits the input as a double-quoted YAML scalar.
func filterYAMLString(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	quoted, err := QuoteYAML(in.String())
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:" + FilterYAMLString, OrigError: err}
	}
	return pongo2.AsSafeValue(quoted), nil
}

// QuoteHCL returns s as an HCL quoted string literal.
func QuoteHCL(s string) string {
	return string(hclwrite.TokensForValue(cty.StringVal(s)).Bytes())
}

// QuoteYAML returns s as a double-quoted YAML scalar.
func QuoteYAML(s string) (string, error) {
	node := &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.DoubleQuotedStyle,
		Value: s,
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(out), "\n"), nil
}
