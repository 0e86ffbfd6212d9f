// Package forms holds one typed struct per form. Each form lists its
// fields with the payload path they fill, so nested values such as
// bankDetails.ifscCode are assigned by a typed setter rather than by
// splitting field names at runtime.
package forms

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrUnknownField = errors.New("unknown field")
)

// ValidationError is a local pre-submit failure with the message shown to
// the user. It matches ErrValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error { return &ValidationError{Message: msg} }

// Field describes one input of form F.
type Field[F any] struct {
	Label string
	// Path is the payload location, dot-separated for nested objects.
	Path string
	// Options restricts the value to a fixed list when non-empty.
	Options []string
	Get     func(f *F) string
	Set     func(f *F, v string) error
}

// Assign sets the field of f addressed by path, matching the path or the
// label case-insensitively.
func Assign[F any](f *F, fields []Field[F], path, value string) error {
	for _, fd := range fields {
		if !strings.EqualFold(fd.Path, path) && !strings.EqualFold(fd.Label, path) {
			continue
		}
		if len(fd.Options) > 0 && value != "" && !contains(fd.Options, value) {
			return invalid(fmt.Sprintf("%s must be one of: %s", fd.Label, strings.Join(fd.Options, ", ")))
		}
		return fd.Set(f, value)
	}
	return fmt.Errorf("%w: %s", ErrUnknownField, path)
}

// Values renders every field of f as label/value pairs in declaration order.
func Values[F any](f *F, fields []Field[F]) [][2]string {
	out := make([][2]string, 0, len(fields))
	for _, fd := range fields {
		out = append(out, [2]string{fd.Label, fd.Get(f)})
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// text builds a Field over a string member.
func text[F any](label, path string, ptr func(f *F) *string, options ...string) Field[F] {
	return Field[F]{
		Label:   label,
		Path:    path,
		Options: options,
		Get:     func(f *F) string { return *ptr(f) },
		Set: func(f *F, v string) error {
			*ptr(f) = strings.TrimSpace(v)
			return nil
		},
	}
}

// list builds a Field over a comma-separated []string member.
func list[F any](label, path string, ptr func(f *F) *[]string) Field[F] {
	return Field[F]{
		Label: label,
		Path:  path,
		Get:   func(f *F) string { return strings.Join(*ptr(f), ",") },
		Set: func(f *F, v string) error {
			*ptr(f) = splitIDs(v)
			return nil
		},
	}
}

func money[F any](label, path string, ptr func(f *F) *float64) Field[F] {
	return Field[F]{
		Label: label,
		Path:  path,
		Get: func(f *F) string {
			if *ptr(f) == 0 {
				return ""
			}
			return strconv.FormatFloat(*ptr(f), 'f', -1, 64)
		},
		Set: func(f *F, v string) error {
			v = strings.TrimSpace(v)
			if v == "" {
				*ptr(f) = 0
				return nil
			}
			n, err := strconv.ParseFloat(v, 64)
			if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
				return invalid(fmt.Sprintf("%s must be a number.", label))
			}
			*ptr(f) = n
			return nil
		},
	}
}

func splitIDs(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
