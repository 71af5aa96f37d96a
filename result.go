package njson

import (
	"strings"

	"github.com/kaptinlin/go-i18n"
)

// ValidationError is one failing keyword evaluation: a stable Code plus a
// human template Message and the Params to fill it, so the same record
// can be localized without re-deriving strings.
type ValidationError struct {
	InstancePath string         `json:"instancePath"`
	SchemaPath   string         `json:"schemaPath"`
	Keyword      string         `json:"keyword"`
	Code         string         `json:"code"`
	Message      string         `json:"message"`
	Params       map[string]any `json:"params,omitempty"`
}

func newValidationError(keyword, code, message string, params map[string]any) *ValidationError {
	return &ValidationError{Keyword: keyword, Code: code, Message: message, Params: params}
}

// Error renders the English template with Params substituted.
func (e *ValidationError) Error() string {
	return replaceTemplate(e.Message, e.Params)
}

// Localize renders the error's Code/Params through an i18n Localizer. A
// nil localizer falls back to Error().
func (e *ValidationError) Localize(loc *Localizer) string {
	if loc == nil {
		return e.Error()
	}
	return loc.Get(e.Code, i18n.Vars(e.Params))
}

func replaceTemplate(template string, params map[string]any) string {
	for k, v := range params {
		template = strings.ReplaceAll(template, "{"+k+"}", toDisplayString(v))
	}
	return template
}

// ValidationResult is the outcome of validating one instance against one
// schema: a boolean plus zero or more ValidationErrors.
type ValidationResult struct {
	Valid  bool
	Errors []*ValidationError
}

func newValidationResult() *ValidationResult {
	return &ValidationResult{Valid: true}
}

func (r *ValidationResult) addError(err *ValidationError) {
	if err == nil {
		return
	}
	r.Valid = false
	r.Errors = append(r.Errors, err)
}

func (r *ValidationResult) merge(other *ValidationResult) {
	if other == nil || other.Valid {
		return
	}
	r.Valid = false
	r.Errors = append(r.Errors, other.Errors...)
}

// Flag reduces the result to a pass/fail bool, discarding error detail.
func (r *ValidationResult) Flag() bool { return r.Valid }
