// Package init writes a starter ftg configuration and templates.
package init

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/foldertemplate/ftg/cli/config"
	"github.com/foldertemplate/ftg/cli/configure"
	"github.com/foldertemplate/ftg/cli/structure"
	"github.com/foldertemplate/ftg/cli/util"
	"github.com/otiai10/copy"
)

const (
	defaultDirPermissions = os.FileMode(0750)
	templatesDirName      = "templates"
)

//go:embed starter
var starterFs embed.FS

// InitCtx contains information for ftg config creation.
type InitCtx struct {
	// Dir is a directory to write the configuration to.
	Dir string
	// Global, if set, the configuration is written to the user config home.
	Global bool
	// ForceMode, if set, ftg config is re-written without a question.
	ForceMode bool
	// reader to use for reading user input.
	reader io.Reader
}

// defaultConfig returns a starter configuration with an example structure.
func defaultConfig() config.Config {
	return config.Config{
		CliConfig: &config.CliOpts{
			TemplatesDirectory: templatesDirName,
			Structures: structure.Catalog{
				{
					Name:            "Project",
					CreateNewFolder: true,
					Variables: []structure.Variable{
						{VarName: "NAME"},
						{VarName: "AUTHOR", Default: "anonymous"},
					},
					Optionals: []structure.Optional{
						{OptName: "DEBUG"},
					},
					Items: []structure.Item{
						{FileName: "src", Template: structure.FolderTemplate},
						{FileName: "src/index.js", Template: "src/index.tmpl"},
						{FileName: "README.md", Template: "readme.tmpl"},
						{FileName: "debug.log", Optional: "DEBUG"},
					},
				},
			},
		},
	}
}

// FillCtx initializes init context.
func FillCtx(initCtx *InitCtx) error {
	initCtx.reader = os.Stdin
	if initCtx.Global {
		initCtx.Dir = filepath.Dir(configure.UserConfigPath())
		return nil
	}
	if initCtx.Dir == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return err
		}
		initCtx.Dir = workingDir
	}
	return nil
}

// checkExistingConfig checks ftg config for existence and asks for confirmation to
// overwrite. Returns file name if init process can continue, and empty string
// otherwise.
func checkExistingConfig(initCtx *InitCtx) (string, error) {
	defaultName := filepath.Join(initCtx.Dir, configure.ConfigName)
	configName, err := util.GetYamlFileName(defaultName, false)
	if err != nil {
		return "", err
	}
	if configName == "" {
		return defaultName, nil
	}

	if !initCtx.ForceMode {
		confirmed, err := util.AskConfirm(initCtx.reader,
			fmt.Sprintf("%s already exists. Overwrite?", configName))
		if err != nil {
			return "", err
		}
		if !confirmed {
			log.Info("Init is cancelled by user.")
			return "", nil
		}
	}
	if err = os.Remove(configName); err != nil {
		return "", err
	}
	return defaultName, nil
}

// copyStarterTemplates copies the starter templates to templatesDir. Existing
// templates directory is left untouched.
func copyStarterTemplates(templatesDir string) error {
	if util.IsDir(templatesDir) {
		log.Infof("Templates directory '%s' already exists, starter templates are not copied",
			templatesDir)
		return nil
	}

	templatesFs, err := fs.Sub(starterFs, "starter/templates")
	if err != nil {
		return err
	}
	if err = copy.Copy(".", templatesDir, copy.Options{
		FS:                templatesFs,
		PermissionControl: copy.AddPermission(0200),
	}); err != nil {
		return fmt.Errorf("failed to copy starter templates: %w", err)
	}
	log.Debugf("Starter templates are copied to '%s'.", templatesDir)
	return nil
}

// Run creates ftg config with an example structure.
func Run(initCtx *InitCtx) error {
	if initCtx.reader == nil {
		initCtx.reader = os.Stdin
	}
	if initCtx.Dir == "" {
		return fmt.Errorf("configuration directory is not set")
	}
	if err := util.CreateDirectory(initCtx.Dir, defaultDirPermissions); err != nil {
		return err
	}

	configName, err := checkExistingConfig(initCtx)
	if configName == "" {
		return err
	}

	if err = util.WriteYaml(configName, defaultConfig()); err != nil {
		return err
	}
	if err = copyStarterTemplates(filepath.Join(initCtx.Dir, templatesDirName)); err != nil {
		return err
	}

	log.Infof("Configuration is written to '%s'", configName)
	return nil
}
