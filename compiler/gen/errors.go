package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrDatasetIntegrity indicates a dataset record the generator cannot use.
	ErrDatasetIntegrity = errors.New("countrygen: dataset integrity violation")
	// ErrIdentifierCollision indicates two labels mapping to one identifier.
	ErrIdentifierCollision = errors.New("countrygen: identifier collision")
	// ErrEmptyEnum indicates an enum derivation without members.
	ErrEmptyEnum = errors.New("countrygen: empty enum")
	// ErrExportMismatch indicates a module whose exports and definitions differ.
	ErrExportMismatch = errors.New("countrygen: export mismatch")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("countrygen: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("countrygen: code generation failed")
)

// DatasetIntegrityError reports a record that breaks the dataset schema,
// such as a country without an alpha2 code.
type DatasetIntegrityError struct {
	Country string // alpha2 or name of the offending country, if known
	Field   string
	Message string
}

// Error implements the error interface.
func (e *DatasetIntegrityError) Error() string {
	var b strings.Builder
	b.WriteString("countrygen: dataset error")
	if e.Country != "" {
		b.WriteString(" on country ")
		b.WriteString(e.Country)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for DatasetIntegrityError.
func (e *DatasetIntegrityError) Is(target error) bool {
	return target == ErrDatasetIntegrity
}

// NewDatasetIntegrityError creates a new DatasetIntegrityError.
func NewDatasetIntegrityError(country, field, message string) *DatasetIntegrityError {
	return &DatasetIntegrityError{
		Country: country,
		Field:   field,
		Message: message,
	}
}

// IdentifierCollisionError reports two distinct labels of one enum that
// sanitize to the same identifier.
type IdentifierCollisionError struct {
	Enum   string
	Ident  string
	Labels [2]string
}

// Error implements the error interface.
func (e *IdentifierCollisionError) Error() string {
	return fmt.Sprintf("countrygen: identifier collision in enum %s: %q and %q both map to %s",
		e.Enum, e.Labels[0], e.Labels[1], e.Ident)
}

// Is reports whether the target matches the sentinel error for IdentifierCollisionError.
func (e *IdentifierCollisionError) Is(target error) bool {
	return target == ErrIdentifierCollision
}

// NewIdentifierCollisionError creates a new IdentifierCollisionError.
func NewIdentifierCollisionError(enum, ident, first, second string) *IdentifierCollisionError {
	return &IdentifierCollisionError{
		Enum:   enum,
		Ident:  ident,
		Labels: [2]string{first, second},
	}
}

// EmptyEnumError reports an enum derived without members.
type EmptyEnumError struct {
	Enum string
}

// Error implements the error interface.
func (e *EmptyEnumError) Error() string {
	return fmt.Sprintf("countrygen: enum %s has no members", e.Enum)
}

// Is reports whether the target matches the sentinel error for EmptyEnumError.
func (e *EmptyEnumError) Is(target error) bool {
	return target == ErrEmptyEnum
}

// ExportMismatchError reports a module whose export list and definition set
// differ. Orphans are listed in both directions.
type ExportMismatchError struct {
	Module     string
	Undefined  []string // exported, but not defined
	Unexported []string // defined, but not exported
	Duplicated []string // exported or defined more than once
}

// Error implements the error interface.
func (e *ExportMismatchError) Error() string {
	var b strings.Builder
	b.WriteString("countrygen: export mismatch in module ")
	b.WriteString(e.Module)
	if len(e.Undefined) > 0 {
		b.WriteString(": exported but not defined: ")
		b.WriteString(strings.Join(e.Undefined, ", "))
	}
	if len(e.Unexported) > 0 {
		b.WriteString(": defined but not exported: ")
		b.WriteString(strings.Join(e.Unexported, ", "))
	}
	if len(e.Duplicated) > 0 {
		b.WriteString(": declared more than once: ")
		b.WriteString(strings.Join(e.Duplicated, ", "))
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for ExportMismatchError.
func (e *ExportMismatchError) Is(target error) bool {
	return target == ErrExportMismatch
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("countrygen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("countrygen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "assemble", "check", "write", "format", "manifest"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("countrygen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsDatasetIntegrityError reports whether the error is a DatasetIntegrityError.
func IsDatasetIntegrityError(err error) bool {
	var dsErr *DatasetIntegrityError
	return errors.As(err, &dsErr)
}

// IsIdentifierCollisionError reports whether the error is an IdentifierCollisionError.
func IsIdentifierCollisionError(err error) bool {
	var colErr *IdentifierCollisionError
	return errors.As(err, &colErr)
}

// IsEmptyEnumError reports whether the error is an EmptyEnumError.
func IsEmptyEnumError(err error) bool {
	var enumErr *EmptyEnumError
	return errors.As(err, &enumErr)
}

// IsExportMismatchError reports whether the error is an ExportMismatchError.
func IsExportMismatchError(err error) bool {
	var expErr *ExportMismatchError
	return errors.As(err, &expErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
