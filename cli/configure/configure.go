package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/apex/log"
	"github.com/foldertemplate/ftg/cli/cmdcontext"
	"github.com/foldertemplate/ftg/cli/config"
	"github.com/foldertemplate/ftg/cli/ftglog"
	"github.com/foldertemplate/ftg/cli/structure"
	"github.com/foldertemplate/ftg/cli/templates"
	"github.com/foldertemplate/ftg/cli/util"
	"github.com/mitchellh/mapstructure"
)

const (
	// ConfigName is a name of the configuration file searched for.
	ConfigName = "ftg.yaml"
	// ConfigEnvName is an environment variable with a path to the configuration file.
	ConfigEnvName = "FTG_CONFIG"
	// appDirName is a directory of the configuration file in the user config home.
	appDirName = "ftg"
	// configSection is the configuration file section of the generator.
	configSection = "folderTemplateGenerator"
)

// adjustPathWithConfigLocation adjust provided filePath with configDir.
// Absolute filePath is returned as is. Relative filePath is calculated relative to configDir.
// Empty filePath stays empty.
func adjustPathWithConfigLocation(filePath, configDir string) (string, error) {
	if filePath == "" {
		return "", nil
	}
	if filepath.IsAbs(filePath) {
		return filePath, nil
	}
	return filepath.Abs(filepath.Join(configDir, filePath))
}

// updateCliOpts resolves paths of the configuration relative to configDir and sets
// uninitialized values to defaults.
func updateCliOpts(cliOpts *config.CliOpts, configDir string) error {
	var err error
	if cliOpts.TemplatesDirectory, err = adjustPathWithConfigLocation(
		cliOpts.TemplatesDirectory, configDir); err != nil {
		return err
	}
	if cliOpts.MarkerSyntax == "" {
		cliOpts.MarkerSyntax = templates.SyntaxDouble
	}
	if _, err = templates.NewEngine(cliOpts.MarkerSyntax); err != nil {
		return err
	}

	if cliOpts.Log == nil {
		return nil
	}
	if cliOpts.Log.File, err = adjustPathWithConfigLocation(cliOpts.Log.File,
		configDir); err != nil {
		return err
	}
	if cliOpts.Log.MaxSize == 0 {
		cliOpts.Log.MaxSize = ftglog.DefaultMaxSize
	}
	if cliOpts.Log.MaxBackups == 0 {
		cliOpts.Log.MaxBackups = ftglog.DefaultMaxBackups
	}
	if cliOpts.Log.MaxAge == 0 {
		cliOpts.Log.MaxAge = ftglog.DefaultMaxAge
	}
	return nil
}

// SetupLogFile duplicates log entries to the configured log file. The returned
// logger is nil if no log file is configured.
func SetupLogFile(cliOpts *config.CliOpts, console log.Handler) *ftglog.Logger {
	if cliOpts.Log == nil || cliOpts.Log.File == "" {
		return nil
	}
	logger := ftglog.NewLogger(&ftglog.LoggerOpts{
		Filename:   cliOpts.Log.File,
		MaxSize:    cliOpts.Log.MaxSize,
		MaxBackups: cliOpts.Log.MaxBackups,
		MaxAge:     cliOpts.Log.MaxAge,
	})
	log.SetHandler(logger.Tee(console))
	return logger
}

// decodeConfig decodes the raw configuration into the structures. Unknown keys and
// values of a wrong type are rejected.
func decodeConfig(input map[string]any, cfg *config.Config) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// GetCliOpts loads the configuration file. Paths of the returned options are
// resolved relative to the configuration file directory.
func GetCliOpts(configPath string) (*config.CliOpts, error) {
	configPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("cannot determine config file path: %s", err)
	}
	rawConfigOpts, err := util.ParseYAML(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ftg configuration: %s", err)
	}

	if section, ok := rawConfigOpts[configSection]; !ok || section == nil {
		return nil, fmt.Errorf("failed to parse ftg configuration %q: missing %s section",
			configPath, configSection)
	}

	cfg := config.Config{}
	if err := decodeConfig(rawConfigOpts, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse ftg configuration %q: %s", configPath, err)
	}

	if err = updateCliOpts(cfg.CliConfig, filepath.Dir(configPath)); err != nil {
		return nil, fmt.Errorf("failed to parse ftg configuration %q: %s", configPath, err)
	}
	return cfg.CliConfig, nil
}

// CheckTemplatesDirectory checks that the templates directory is configured and
// exists.
func CheckTemplatesDirectory(cliOpts *config.CliOpts) error {
	if cliOpts.TemplatesDirectory == "" {
		return structure.NewError(structure.CodeTemplatesDirUnset, "",
			"no templates directory configured: set %s.templatesDirectory in %s",
			configSection, ConfigName)
	}
	if !util.IsDir(cliOpts.TemplatesDirectory) {
		return structure.NewError(structure.CodeTemplatesDirMissing, "",
			"the configured templates directory was not found: %q, update "+
				"%s.templatesDirectory in %s", cliOpts.TemplatesDirectory, configSection,
			ConfigName)
	}
	return nil
}

// UserConfigPath returns a path of the configuration file in the user config home.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appDirName, ConfigName)
}

// getConfigPath looks for the configuration file in the current directory and its
// parents, then in the user config home. Empty path is returned if nothing is found.
func getConfigPath(configName string) (string, error) {
	curDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to detect current directory: %s", err)
	}

	for curDir != filepath.Dir(curDir) {
		configPath, err := util.GetYamlFileName(filepath.Join(curDir, configName), true)
		if err == nil {
			return configPath, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}

		curDir = filepath.Dir(curDir)
	}

	if configPath, err := xdg.SearchConfigFile(filepath.Join(appDirName, configName)); err == nil {
		return configPath, nil
	}
	return "", nil
}

// GetConfigPath returns the configuration file path: the passed one, the one from
// the environment or the one found by search.
func GetConfigPath(configPath string) (string, error) {
	if configPath == "" {
		configPath = os.Getenv(ConfigEnvName)
	}
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return "", fmt.Errorf("specified path to the configuration file is invalid: %s", err)
		}
		return filepath.Abs(configPath)
	}

	return getConfigPath(ConfigName)
}

// Cli performs initial CLI configuration.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	var err error
	if cmdCtx.Cli.ConfigPath, err = GetConfigPath(cmdCtx.Cli.ConfigPath); err != nil {
		return err
	}

	if cmdCtx.Cli.ConfigPath != "" {
		cmdCtx.Cli.ConfigDir = filepath.Dir(cmdCtx.Cli.ConfigPath)
		log.Debugf("Using configuration file %s", cmdCtx.Cli.ConfigPath)
	} else if cmdCtx.Cli.ConfigDir, err = os.Getwd(); err != nil {
		return err
	}
	return nil
}
