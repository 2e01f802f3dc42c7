// Package template defines the renderer-agnostic template seam used by the
// kit generator. Engines live in sub-packages; gotemplate provides the
// pongo2-backed implementation with filters that escape values for HCL and
// YAML output.
package template
