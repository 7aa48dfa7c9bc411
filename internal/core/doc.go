// Package core implements the project builder and the immutable project
// handle behind the public fuzzenv API.
//
// The split mirrors the public surface: Builder stages files into a freshly
// wiped root and synthesizes defaults at build time; Project exposes the
// canonical derived paths and constructs, but never runs, the external fuzz
// command. Everything here returns errors; translating them into test aborts
// is the public package's job.
package core
