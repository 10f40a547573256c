package file

import (
	"slices"
	"strings"
)

// Validation reasons, exactly one of which is reported per validation.
const (
	// ReasonSizeExceeded is reported when the file is larger than the allowed maximum.
	ReasonSizeExceeded = "file size is greater than max size"
	// ReasonTypeNotAllowed is reported when the file's extension is not in the allowed list.
	ReasonTypeNotAllowed = "file type not allowed"
	// ReasonNameMismatch is reported when the file name differs from the expected one.
	ReasonNameMismatch = "file not equal to the same name"
	// ReasonValid is reported when every check passes.
	ReasonValid = "all conditions are applied"
)

// ValidationConfig lists the constraints a file must satisfy.
type ValidationConfig struct {
	// AllowExtensions lists accepted extension tokens, e.g. "png". A leading dot is ignored.
	AllowExtensions []string
	// MaxSize is the largest accepted size in bytes.
	MaxSize int64
	// FileName is the exact name the file must have. Empty disables the check.
	FileName string
}

// ValidationResult is the outcome of a validation.
type ValidationResult struct {
	// Valid reports whether every check passed.
	Valid bool `json:"valid" yaml:"valid"`
	// Reason explains the outcome.
	Reason string `json:"reason" yaml:"reason"`
}

// Validate checks size, then extension, then name, and reports the first failure only.
func Validate(f *File, cfg ValidationConfig) ValidationResult {
	if f.Size() > cfg.MaxSize {
		return ValidationResult{Valid: false, Reason: ReasonSizeExceeded}
	}

	allowed := slices.ContainsFunc(cfg.AllowExtensions, func(ext string) bool {
		return strings.TrimPrefix(ext, ".") == f.Extension()
	})
	if !allowed {
		return ValidationResult{Valid: false, Reason: ReasonTypeNotAllowed}
	}

	if cfg.FileName != "" && cfg.FileName != f.Name() {
		return ValidationResult{Valid: false, Reason: ReasonNameMismatch}
	}

	return ValidationResult{Valid: true, Reason: ReasonValid}
}

// ValidateEncoded decodes a data URI and validates the result.
// A decoded file has no name, so a configured FileName never matches it.
func ValidateEncoded(dataURI string, cfg ValidationConfig) (ValidationResult, error) {
	f, err := Decode(dataURI, "")
	if err != nil {
		return ValidationResult{}, err
	}

	return Validate(f, cfg), nil
}
