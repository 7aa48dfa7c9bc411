// Package manifest renders the package manifests embedded in generated test
// projects.
//
// Three artifacts are produced: the minimal default manifest for a parent
// project, the manifest of the auxiliary fuzz sub-project, and the [[bin]]
// fragment appended to the fuzz manifest for each fuzz target. All three are
// rendered through TOML marshaling rather than string templates, so the
// output is always well-formed for the external build tool.
package manifest
