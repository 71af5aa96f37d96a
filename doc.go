// Package njson implements an in-memory JSON value tree with path-addressed
// mutation, a streaming JSON parser and emitter, a JSON Schema 2020-12
// validator, and a schema inferencer that unifies a schema from sample
// documents.
package njson
