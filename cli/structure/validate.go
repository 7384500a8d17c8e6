package structure

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// getValidator returns the definition validator with custom rules registered.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

// firstDuplicate returns the first value which occurs more than once.
func firstDuplicate(values []string) (string, bool) {
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		if _, found := seen[value]; found {
			return value, true
		}
		seen[value] = struct{}{}
	}
	return "", false
}

// ValidateCatalog checks the catalog as a whole: it must not be empty, every
// structure must have a name and the names must be unique.
func ValidateCatalog(catalog Catalog) error {
	if len(catalog) == 0 {
		return NewError(CodeEmptyCatalog, "",
			"no structures configured: add a structure to the "+
				"folderTemplateGenerator.structures list of the configuration")
	}

	v := getValidator()
	for i, s := range catalog {
		if err := v.Var(s.Name, "notblank"); err != nil {
			return NewError(CodeBlankStructureName, "",
				"structure #%d has an empty name: every structure needs a unique name",
				i+1)
		}
	}

	names := catalog.Names()
	if err := v.Var(names, "unique"); err != nil {
		duplicate, _ := firstDuplicate(names)
		return NewError(CodeDuplicateStructureName, duplicate,
			"structure name %q is used more than once: structure names must be unique",
			duplicate).withNames(duplicate)
	}
	return nil
}

// ValidateStructure checks a single structure definition. The first problem found
// is returned.
func ValidateStructure(s *Structure) error {
	if errs := structureErrors(s); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// ValidateAll returns every problem of the catalog and of each of its structures.
func ValidateAll(catalog Catalog) []error {
	var errs []error
	if err := ValidateCatalog(catalog); err != nil {
		errs = append(errs, err)
		if IsCode(err, CodeEmptyCatalog) {
			return errs
		}
	}
	for i := range catalog {
		errs = append(errs, structureErrors(&catalog[i])...)
	}
	return errs
}

// structureErrors converts struct tag validation failures of s into
// validation errors.
func structureErrors(s *Structure) []error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{NewError(CodeInvalidDefinition, s.Name,
			"structure %q: invalid definition: %s", s.Name, err)}
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		errs = append(errs, convertFieldError(s, fieldErr))
	}
	return errs
}

func convertFieldError(s *Structure, fieldErr validator.FieldError) error {
	switch fieldErr.Tag() {
	case "unique":
		return duplicateError(s, fieldErr.StructField())
	case "notblank":
		return blankError(s, fieldErr)
	}
	return NewError(CodeInvalidDefinition, s.Name,
		"structure %q: field %s failed %q check", s.Name, fieldErr.Namespace(),
		fieldErr.Tag())
}

func duplicateError(s *Structure, field string) error {
	switch field {
	case "Variables":
		names := make([]string, 0, len(s.Variables))
		for _, variable := range s.Variables {
			names = append(names, variable.VarName)
		}
		duplicate, _ := firstDuplicate(names)
		return NewError(CodeDuplicateVariable, s.Name,
			"structure %q: variable %q is defined more than once", s.Name,
			duplicate).withNames(duplicate)
	case "Optionals":
		names := make([]string, 0, len(s.Optionals))
		for _, opt := range s.Optionals {
			names = append(names, opt.OptName)
		}
		duplicate, _ := firstDuplicate(names)
		return NewError(CodeDuplicateOptional, s.Name,
			"structure %q: optional %q is defined more than once", s.Name,
			duplicate).withNames(duplicate)
	default:
		names := make([]string, 0, len(s.Items))
		for _, item := range s.Items {
			names = append(names, item.FileName)
		}
		duplicate, _ := firstDuplicate(names)
		return NewError(CodeDuplicateFileName, s.Name,
			"structure %q: file %q is listed more than once", s.Name,
			duplicate).withNames(duplicate)
	}
}

func blankError(s *Structure, fieldErr validator.FieldError) error {
	// Namespace looks like "Structure.Variables[1].VarName".
	location := strings.TrimPrefix(fieldErr.StructNamespace(), "Structure.")
	switch fieldErr.StructField() {
	case "Name":
		return NewError(CodeBlankStructureName, s.Name,
			"structure has an empty name: every structure needs a unique name")
	case "VarName":
		return NewError(CodeBlankVariableName, s.Name,
			"structure %q: %s is empty: every variable needs a name", s.Name,
			location).withNames(location)
	case "OptName":
		return NewError(CodeBlankOptionalName, s.Name,
			"structure %q: %s is empty: every optional needs a name", s.Name,
			location).withNames(location)
	default:
		return NewError(CodeBlankFileName, s.Name,
			"structure %q: %s is empty: every item needs a file name", s.Name,
			location).withNames(location)
	}
}
