// Package kit turns a finished model.Configuration into the secure RAG kit:
// a Terraform file, a Weaviate service descriptor and a README, bundled into
// a zip archive.
//
// Rendering goes through the pongo2 engine from pkg/render/template with the
// embedded templates under templates/. Every artifact is checked against its
// format (HCL, YAML, Markdown) before it is written, so a broken template or
// an unexpected value fails the whole generation instead of producing a
// malformed kit. GenerateKit stages the artifacts in a scoped temporary
// directory that is removed on every exit path.
package kit
