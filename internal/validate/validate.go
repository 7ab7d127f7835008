package validate

// This package wraps go-playground/validator with a shared instance and the
// goat-specific tags.
//
// e.g. internal/config/config.go
//   type Options struct {
//       Title    string   `validate:"required,max=64"`
//       Mappings []string `validate:"dive,required"`
//   }
//
// Custom tags:
//   exitcode  integer within the user exit code range [MinExitCode, MaxExitCode].

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// User-configurable exit codes must lie within this inclusive range.
const (
	MinExitCode = 64
	MaxExitCode = 113
)

//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails on an empty tag or nil func.
		_ = validatorInst.RegisterValidation("exitcode", func(fl validator.FieldLevel) bool {
			code := fl.Field().Int()
			return code >= MinExitCode && code <= MaxExitCode
		})
	})
	return validatorInst
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}

// ExitCode reports whether code is an acceptable user exit code.
func ExitCode(code int) error {
	return Var(code, "exitcode")
}
