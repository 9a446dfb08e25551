package risk

import (
	"fmt"
	"strings"
)

// FieldError describes one validation violation, tied to the offending
// form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Verdict is the outcome of validating a form submission. All violations
// are collected - validation never stops at the first problem.
type Verdict struct {
	Errors []FieldError `json:"errors"`
}

// IsValid reports whether the input passed every check.
func (v Verdict) IsValid() bool {
	return len(v.Errors) == 0
}

// ScaleLevel is one allowed value on an ordinal scale, with its NTP 330
// descriptor (e.g. 6 = "deficiente").
type ScaleLevel struct {
	Value int    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Scale is the fixed, finite set of values one level field may take.
type Scale []ScaleLevel

// Contains reports whether v is an allowed value on the scale.
func (s Scale) Contains(v int) bool {
	for _, l := range s {
		if l.Value == v {
			return true
		}
	}
	return false
}

// Scales groups the three NTP 330 ordinal scales.
type Scales struct {
	Deficiency  Scale `yaml:"deficiency"`
	Exposure    Scale `yaml:"exposure"`
	Consequence Scale `yaml:"consequence"`
}

// Validator checks raw form input. The zero value performs the core
// checks (mandatory text fields, level presence); when Scales is set it
// additionally rejects level values outside their ordinal scale, one
// violation per offending field.
type Validator struct {
	Scales *Scales
}

// Validate checks a submission and collects every violation. It has no
// side effects and never panics; malformed input produces errors, not
// failures.
func (v Validator) Validate(in Input) Verdict {
	var errs []FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "hazard name is required"})
	}
	if strings.TrimSpace(in.Area) == "" {
		errs = append(errs, FieldError{Field: "area", Message: "area is required"})
	}

	errs = v.checkLevel(errs, "nd", "deficiency level", in.Deficiency, scaleFor(v.Scales).Deficiency)
	errs = v.checkLevel(errs, "ne", "exposure level", in.Exposure, scaleFor(v.Scales).Exposure)
	errs = v.checkLevel(errs, "nc", "consequence level", in.Consequence, scaleFor(v.Scales).Consequence)

	return Verdict{Errors: errs}
}

func (v Validator) checkLevel(errs []FieldError, field, what string, val *int, scale Scale) []FieldError {
	if val == nil {
		return append(errs, FieldError{Field: field, Message: what + " must be selected"})
	}
	if scale != nil && !scale.Contains(*val) {
		return append(errs, FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s %d is not on the %s scale", what, *val, field),
		})
	}
	return errs
}

func scaleFor(s *Scales) Scales {
	if s == nil {
		return Scales{}
	}
	return *s
}

// Validate runs the core checks with no scale enforcement. Convenience
// wrapper over the zero-value Validator.
func Validate(in Input) Verdict {
	return Validator{}.Validate(in)
}
