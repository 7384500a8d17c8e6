package structure

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies a validation failure.
type ErrorCode string

// Configuration errors.
const (
	CodeEmptyCatalog           ErrorCode = "EMPTY_CATALOG"
	CodeBlankStructureName     ErrorCode = "BLANK_STRUCTURE_NAME"
	CodeDuplicateStructureName ErrorCode = "DUPLICATE_STRUCTURE_NAME"
	CodeTemplatesDirUnset      ErrorCode = "TEMPLATES_DIR_UNSET"
	CodeTemplatesDirMissing    ErrorCode = "TEMPLATES_DIR_MISSING"
)

// Structure definition errors.
const (
	CodeStructureNotFound ErrorCode = "STRUCTURE_NOT_FOUND"
	CodeDuplicateVariable ErrorCode = "DUPLICATE_VARIABLE"
	CodeDuplicateOptional ErrorCode = "DUPLICATE_OPTIONAL"
	CodeDuplicateFileName ErrorCode = "DUPLICATE_FILE_NAME"
	CodeBlankVariableName ErrorCode = "BLANK_VARIABLE_NAME"
	CodeBlankOptionalName ErrorCode = "BLANK_OPTIONAL_NAME"
	CodeBlankFileName     ErrorCode = "BLANK_FILE_NAME"
	CodeInvalidDefinition ErrorCode = "INVALID_DEFINITION"
)

var configCodes = map[ErrorCode]bool{
	CodeEmptyCatalog:           true,
	CodeBlankStructureName:     true,
	CodeDuplicateStructureName: true,
	CodeTemplatesDirUnset:      true,
	CodeTemplatesDirMissing:    true,
}

// ValidationError is returned when a catalog or a structure definition cannot be
// used for generation. Nothing is created on the filesystem when it is returned.
type ValidationError struct {
	// Code is a machine-readable failure kind.
	Code ErrorCode
	// Structure is a name of the structure the error belongs to, if any.
	Structure string
	// Names are the offending names (duplicates, blank field location, etc.).
	Names []string

	msg string
}

// Error returns error message.
func (e *ValidationError) Error() string {
	return e.msg
}

// NewError creates a validation error with a formatted message.
func NewError(code ErrorCode, structureName string, format string,
	args ...any) *ValidationError {
	return &ValidationError{
		Code:      code,
		Structure: structureName,
		msg:       fmt.Sprintf(format, args...),
	}
}

func (e *ValidationError) withNames(names ...string) *ValidationError {
	e.Names = append(e.Names, names...)
	return e
}

// GetCode returns the code of a validation error, or an empty code.
func GetCode(err error) ErrorCode {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Code
	}
	return ""
}

// IsCode checks if err is a validation error with the passed code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && GetCode(err) == code
}

// IsConfigError returns true for errors in the configuration as a whole.
func IsConfigError(err error) bool {
	return configCodes[GetCode(err)]
}

// IsDefinitionError returns true for errors in a single structure definition.
func IsDefinitionError(err error) bool {
	code := GetCode(err)
	return code != "" && !configCodes[code]
}

// JoinErrors formats a list of validation problems, one per line.
func JoinErrors(errs []error) string {
	lines := make([]string, 0, len(errs))
	for _, err := range errs {
		lines = append(lines, "  - "+err.Error())
	}
	return strings.Join(lines, "\n")
}
