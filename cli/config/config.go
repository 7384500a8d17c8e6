package config

import "github.com/foldertemplate/ftg/cli/structure"

// Config used to store all information from the ftg.yaml configuration file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"folderTemplateGenerator" yaml:"folderTemplateGenerator"`
}

// CliOpts stores the folder template generator configuration.
// Filled in when parsing the ftg.yaml configuration file.
//
// ftg.yaml file format:
// folderTemplateGenerator:
//   templatesDirectory: path
//   markerSyntax: double | single
//   structures:
//     - name: string
//       createNewFolder: bool
//       variables:
//         - varName: string
//           default: string
//       optionals:
//         - optName: string
//           value: bool
//       structure:
//         - fileName: relative/path
//           template: relative/path | FOLDER
//           optional: string
//   log:
//     file: path
//     maxSize: int
//     maxBackups: int
//     maxAge: int

// CliOpts is used to store the templates directory and the structures catalog.
type CliOpts struct {
	// TemplatesDirectory is a directory item templates are resolved against.
	// A relative path is resolved against the configuration file directory.
	TemplatesDirectory string `mapstructure:"templatesDirectory" yaml:"templatesDirectory"`
	// MarkerSyntax selects the template marker syntax.
	MarkerSyntax string `mapstructure:"markerSyntax" yaml:"markerSyntax,omitempty"`
	// Structures is the configured catalog of structures.
	Structures structure.Catalog `mapstructure:"structures" yaml:"structures"`
	// Log is the log file configuration.
	Log *LogOpts `mapstructure:"log" yaml:"log,omitempty"`
}

// LogOpts describes the log file. Generation runs are logged to the file only if it
// is set.
type LogOpts struct {
	// File is a path of the log file.
	File string `mapstructure:"file" yaml:"file"`
	// MaxSize is the maximum size in megabytes of the log file before it gets
	// rotated.
	MaxSize int `mapstructure:"maxSize" yaml:"maxSize,omitempty"`
	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int `mapstructure:"maxBackups" yaml:"maxBackups,omitempty"`
	// MaxAge is the maximum number of days to retain old log files.
	MaxAge int `mapstructure:"maxAge" yaml:"maxAge,omitempty"`
}
