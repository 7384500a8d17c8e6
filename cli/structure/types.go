// Package structure describes user-defined folder structures and checks them
// for consistency before anything is generated from them.
package structure

import "strings"

// FolderTemplate is a template value which marks an item as a directory.
// It is compared case-insensitively.
const FolderTemplate = "FOLDER"

// Variable is a named placeholder resolved to a single string value per run.
type Variable struct {
	// VarName is a variable name. It is unique within a structure.
	VarName string `mapstructure:"varName" yaml:"varName" validate:"notblank"`
	// Default is a value offered when the user does not provide one.
	Default string `mapstructure:"default" yaml:"default,omitempty"`
}

// Optional is a named boolean flag resolved once per run.
type Optional struct {
	// OptName is an optional name. It is unique within a structure.
	OptName string `mapstructure:"optName" yaml:"optName" validate:"notblank"`
	// Value is a default answer for the optional.
	Value bool `mapstructure:"value" yaml:"value,omitempty"`
}

// Item is a single file or folder of a structure.
type Item struct {
	// FileName is a path relative to the target directory. Both "/" and "\"
	// separators are accepted.
	FileName string `mapstructure:"fileName" yaml:"fileName" validate:"notblank"`
	// Template is a path relative to the templates directory, or FolderTemplate.
	Template string `mapstructure:"template" yaml:"template,omitempty"`
	// Optional is a name of the optional this item depends on.
	Optional string `mapstructure:"optional" yaml:"optional,omitempty"`
}

// IsFolder returns true if the item describes a directory.
func (item Item) IsFolder() bool {
	return strings.EqualFold(item.Template, FolderTemplate)
}

// Structure is a named definition of a directory tree.
type Structure struct {
	// Name is a structure name, unique across the catalog.
	Name string `mapstructure:"name" yaml:"name" validate:"notblank"`
	// CreateNewFolder requests a new top-level folder for the generated items.
	CreateNewFolder bool `mapstructure:"createNewFolder" yaml:"createNewFolder,omitempty"`
	// Variables is an ordered set of variables used by templates.
	Variables []Variable `mapstructure:"variables" yaml:"variables,omitempty" validate:"unique=VarName,dive"`
	// Optionals is an ordered set of flags used by items and template lines.
	Optionals []Optional `mapstructure:"optionals" yaml:"optionals,omitempty" validate:"unique=OptName,dive"`
	// Items is an ordered list of files and folders to create.
	Items []Item `mapstructure:"structure" yaml:"structure" validate:"unique=FileName,dive"`
}

// HasOptional returns true if the structure declares optName.
func (s *Structure) HasOptional(optName string) bool {
	for _, opt := range s.Optionals {
		if opt.OptName == optName {
			return true
		}
	}
	return false
}

// HasVariable returns true if the structure declares varName.
func (s *Structure) HasVariable(varName string) bool {
	for _, variable := range s.Variables {
		if variable.VarName == varName {
			return true
		}
	}
	return false
}

// Catalog is a configured set of structures.
type Catalog []Structure

// Find returns a structure with the passed name.
func (catalog Catalog) Find(name string) (*Structure, bool) {
	for i := range catalog {
		if catalog[i].Name == name {
			return &catalog[i], true
		}
	}
	return nil, false
}

// Names returns structure names in the configured order.
func (catalog Catalog) Names() []string {
	names := make([]string, 0, len(catalog))
	for _, s := range catalog {
		names = append(names, s.Name)
	}
	return names
}

// Bindings holds the values resolved for a single generation run.
type Bindings struct {
	// Variables maps a variable name to its value.
	Variables map[string]string
	// Optionals maps an optional name to its answer.
	Optionals map[string]bool
}

// NewBindings creates empty bindings.
func NewBindings() Bindings {
	return Bindings{
		Variables: make(map[string]string),
		Optionals: make(map[string]bool),
	}
}

// Excludes returns true if optName is bound to false. Unbound names never
// exclude anything.
func (b Bindings) Excludes(optName string) bool {
	value, found := b.Optionals[optName]
	return found && !value
}
