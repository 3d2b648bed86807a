package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"

	"github.com/modernstack/cli/internal/catalog"
	oerrors "github.com/modernstack/cli/internal/errors"
)

//go:embed schema/config.cue
var configSchemaCUE []byte

// ValidationError represents one configuration validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Unwrap lets errors.Is match ErrValidation.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(configSchemaCUE, cue.Filename("config.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	if def.Err() != nil {
		return nil, fmt.Errorf("schema has no #Config: %w", def.Err())
	}

	return &Validator{ctx: ctx, schema: def}, nil
}

// Validate checks a loaded configuration, including environment overrides.
func (v *Validator) Validate(cfg *Config) error {
	errs := v.unify(v.ctx.Encode(cfg))
	reported := make(map[string]bool, len(errs))
	for _, e := range errs {
		reported[e.Field] = true
	}
	for _, e := range checkCatalog(cfg) {
		if !reported[e.Field] {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateFile checks the raw file at path, so unknown keys are reported too.
func (v *Validator) ValidateFile(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return oerrors.NewNotFoundError("config file not found", expanded,
				"Run 'create-modern-fullstack config init' to create one.")
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	file, err := cueyaml.Extract(expanded, data)
	if err != nil {
		return ValidationErrors{{Field: "(file)", Message: err.Error()}}
	}
	value := v.ctx.BuildFile(file)
	if errs := v.unify(value); len(errs) > 0 {
		return errs
	}

	// Re-decode through the loader so catalog checks see the same types the CLI does.
	cfg, err := NewLoader().Load(expanded)
	if err != nil {
		return err
	}
	if errs := checkCatalog(cfg); len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *Validator) unify(value cue.Value) ValidationErrors {
	if value.Err() != nil {
		return v.toValidationErrors(value, value.Err())
	}
	unified := v.schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return v.toValidationErrors(value, err)
	}
	return nil
}

// toValidationErrors reports one entry per field, with paths rooted at the data.
// A failed disjunction becomes a single entry listing the allowed values.
func (v *Validator) toValidationErrors(data cue.Value, err error) ValidationErrors {
	var errs ValidationErrors
	index := make(map[string]int)
	for _, e := range cueerrors.Errors(cueerrors.Sanitize(cueerrors.Promote(err, ""))) {
		field := fieldPath(e.Path())
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)

		if i, ok := index[field]; ok {
			if strings.Contains(msg, "empty disjunction") {
				errs[i].Message = v.disjunctionMessage(data, field)
			}
			continue
		}
		if strings.Contains(msg, "empty disjunction") {
			msg = v.disjunctionMessage(data, field)
		}
		index[field] = len(errs)
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}
	return errs
}

// fieldPath joins a CUE error path, dropping definition selectors such as #Config.
func fieldPath(path []string) string {
	parts := make([]string, 0, len(path))
	for _, p := range path {
		if strings.HasPrefix(p, "#") {
			continue
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return "(root)"
	}
	return strings.Join(parts, ".")
}

func (v *Validator) disjunctionMessage(data cue.Value, field string) string {
	msg := "invalid value"
	if field != "(root)" {
		if got := data.LookupPath(cue.ParsePath(field)); got.Exists() {
			msg = fmt.Sprintf("invalid value %v", got)
		}
	}
	if allowed := v.allowedValues(field); len(allowed) > 0 {
		msg += " (allowed: " + strings.Join(allowed, ", ") + ")"
	}
	return msg
}

// allowedValues lists the string members of the schema disjunction at field.
func (v *Validator) allowedValues(field string) []string {
	def := v.schema.LookupPath(cue.MakePath(cue.Str(field).Optional()))
	if !def.Exists() {
		def = v.schema.LookupPath(cue.ParsePath(field))
	}
	if !def.Exists() {
		return nil
	}
	op, args := def.Expr()
	if op != cue.OrOp {
		return nil
	}
	var allowed []string
	for _, a := range args {
		if s, err := a.String(); err == nil {
			allowed = append(allowed, s)
		}
	}
	return allowed
}

// checkCatalog verifies values that depend on the template catalog. Features
// only need to exist in some template because they are filtered per template.
func checkCatalog(cfg *Config) ValidationErrors {
	var errs ValidationErrors
	if cfg.Template != "" {
		if _, err := catalog.Get(cfg.Template); err != nil {
			errs = append(errs, ValidationError{
				Field:   "template",
				Message: fmt.Sprintf("unknown template %q (valid: %s)", cfg.Template, strings.Join(catalog.Names(), ", ")),
			})
		}
	}

	known := make(map[string]bool)
	for _, t := range catalog.List() {
		for _, f := range t.Features {
			known[f] = true
		}
	}
	for _, f := range cfg.Features {
		if !known[f] {
			errs = append(errs, ValidationError{
				Field:   "features",
				Message: fmt.Sprintf("no template supports feature %q", f),
			})
		}
	}
	return errs
}
