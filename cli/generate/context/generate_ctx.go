package generate_ctx

import "github.com/foldertemplate/ftg/cli/config"

// GenerateCtx contains information for generating a structure.
type GenerateCtx struct {
	// StructureName is a name of the structure to generate.
	StructureName string
	// WorkDir is ftg launch working directory.
	WorkDir string
	// DestinationDir is the directory to generate into. Relative path is resolved
	// against WorkDir.
	DestinationDir string
	// FolderName is a name of a new folder to create in DestinationDir.
	FolderName string
	// VarsFromCli variables definitions provided in command line.
	VarsFromCli []string
	// OptionalsFromCli optionals definitions provided in command line.
	OptionalsFromCli []string
	// VarsFile is a file with variables definitions.
	VarsFile string
	// SilentMode if set, disables user interaction. Missing values are taken from
	// defaults, invalid values fail the generation.
	SilentMode bool
	// AutoConfirm skips the confirmation before writing.
	AutoConfirm bool
	// KeepMode keeps generated files without asking.
	KeepMode bool
	// CliOpts is loaded ftg configuration.
	CliOpts *config.CliOpts
}
