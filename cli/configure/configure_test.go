package configure

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/adrg/xdg"
	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/foldertemplate/ftg/cli/cmdcontext"
	"github.com/foldertemplate/ftg/cli/config"
	"github.com/foldertemplate/ftg/cli/ftglog"
	"github.com/foldertemplate/ftg/cli/structure"
	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
folderTemplateGenerator:
  templatesDirectory: ./templates
  structures:
    - name: Lib
      createNewFolder: true
      variables:
        - varName: NAME
          default: acme
      optionals:
        - optName: DEBUG
          value: true
      structure:
        - fileName: src
          template: FOLDER
        - fileName: src/index.txt
          template: index.tmpl
          optional: DEBUG
    - name: Empty
`

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigName)
	require.NoError(t, os.WriteFile(path, []byte(dedent.Dedent(content)), 0o644))
	return path
}

// chdir changes the working directory for the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestAdjustPathWithConfigLocation(t *testing.T) {
	path, err := adjustPathWithConfigLocation("", "/config/dir")
	require.NoError(t, err)
	require.Equal(t, "", path)

	path, err = adjustPathWithConfigLocation("/templates", "/config/dir")
	require.NoError(t, err)
	require.Equal(t, "/templates", path)

	path, err = adjustPathWithConfigLocation("./templates", "/config/dir")
	require.NoError(t, err)
	require.Equal(t, "/config/dir/templates", path)
}

func TestGetCliOpts(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfig(t, tmpDir, testConfig)

	cliOpts, err := GetCliOpts(configPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "templates"), cliOpts.TemplatesDirectory)
	assert.Equal(t, "double", cliOpts.MarkerSyntax)
	require.Len(t, cliOpts.Structures, 2)

	lib := cliOpts.Structures[0]
	assert.Equal(t, structure.Structure{
		Name:            "Lib",
		CreateNewFolder: true,
		Variables:       []structure.Variable{{VarName: "NAME", Default: "acme"}},
		Optionals:       []structure.Optional{{OptName: "DEBUG", Value: true}},
		Items: []structure.Item{
			{FileName: "src", Template: "FOLDER"},
			{FileName: "src/index.txt", Template: "index.tmpl", Optional: "DEBUG"},
		},
	}, lib)
	assert.Equal(t, "Empty", cliOpts.Structures[1].Name)
	assert.Empty(t, cliOpts.Structures[1].Items)
}

func TestGetCliOptsLogFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfig(t, tmpDir, `
		folderTemplateGenerator:
		  templatesDirectory: templates
		  structures:
		    - name: Lib
		  log:
		    file: var/ftg.log
		    maxBackups: 2
		`)

	cliOpts, err := GetCliOpts(configPath)
	require.NoError(t, err)
	assert.Equal(t, &config.LogOpts{
		File:       filepath.Join(tmpDir, "var", "ftg.log"),
		MaxSize:    ftglog.DefaultMaxSize,
		MaxBackups: 2,
		MaxAge:     ftglog.DefaultMaxAge,
	}, cliOpts.Log)

	console := memory.New()
	oldHandler := log.Log.(*log.Logger).Handler
	t.Cleanup(func() { log.SetHandler(oldHandler) })

	logger := SetupLogFile(cliOpts, console)
	require.NotNil(t, logger)
	log.Info("Generated structure Lib")
	require.NoError(t, logger.Close())
	assert.Len(t, console.Entries, 1)
	content, err := os.ReadFile(cliOpts.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Generated structure Lib")

	assert.Nil(t, SetupLogFile(&config.CliOpts{}, console))
}

func TestGetCliOptsErrors(t *testing.T) {
	cases := []struct {
		name   string
		config string
		errMsg string
	}{
		{
			name:   "missing section",
			config: "other:\n  key: value\n",
			errMsg: "missing folderTemplateGenerator section",
		},
		{
			name:   "empty section",
			config: "folderTemplateGenerator:\nother: 1\n",
			errMsg: "missing folderTemplateGenerator section",
		},
		{
			name: "unknown key",
			config: `
				folderTemplateGenerator:
				  templatesDir: ./templates
				`,
			errMsg: "templatesDir",
		},
		{
			name: "wrong type",
			config: `
				folderTemplateGenerator:
				  structures:
				    - name: Lib
				      createNewFolder: sometimes
				`,
			errMsg: "createNewFolder",
		},
		{
			name: "unknown marker syntax",
			config: `
				folderTemplateGenerator:
				  markerSyntax: curly
				`,
			errMsg: `unknown marker syntax "curly"`,
		},
		{
			name:   "invalid yaml",
			config: "folderTemplateGenerator: [",
			errMsg: "failed to parse YAML",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			configPath := writeConfig(t, t.TempDir(), tc.config)
			_, err := GetCliOpts(configPath)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestCheckTemplatesDirectory(t *testing.T) {
	err := CheckTemplatesDirectory(&config.CliOpts{})
	assert.True(t, structure.IsCode(err, structure.CodeTemplatesDirUnset))
	assert.True(t, structure.IsConfigError(err))

	missing := filepath.Join(t.TempDir(), "missing")
	err = CheckTemplatesDirectory(&config.CliOpts{TemplatesDirectory: missing})
	assert.True(t, structure.IsCode(err, structure.CodeTemplatesDirMissing))
	assert.Contains(t, err.Error(), missing)

	assert.NoError(t, CheckTemplatesDirectory(&config.CliOpts{
		TemplatesDirectory: t.TempDir(),
	}))
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv(ConfigEnvName, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	// Nothing is found.
	configPath, err := GetConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, "", configPath)

	// User config home.
	userConfig := UserConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(userConfig), 0o755))
	require.NoError(t, os.WriteFile(userConfig, []byte(testConfig), 0o644))
	configPath, err = GetConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, userConfig, configPath)

	// Parent directories are searched before the user config home.
	expected := writeConfig(t, tmpDir, testConfig)
	configPath, err = GetConfigPath("")
	require.NoError(t, err)
	// Go tests run in /private folder on MacOS.
	if runtime.GOOS == "darwin" {
		expected = filepath.Join("/private", expected)
	}
	assert.Equal(t, expected, configPath)

	// Environment variable is preferred to the search.
	envConfig := writeConfig(t, t.TempDir(), testConfig)
	t.Setenv(ConfigEnvName, envConfig)
	configPath, err = GetConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, envConfig, configPath)

	// Explicit path is preferred to everything.
	flagConfig := writeConfig(t, t.TempDir(), testConfig)
	configPath, err = GetConfigPath(flagConfig)
	require.NoError(t, err)
	assert.Equal(t, flagConfig, configPath)

	_, err = GetConfigPath(filepath.Join(tmpDir, "missing.yaml"))
	assert.ErrorContains(t, err, "specified path to the configuration file is invalid")
}

func TestCli(t *testing.T) {
	t.Setenv(ConfigEnvName, "")
	tmpDir := t.TempDir()
	configPath := writeConfig(t, tmpDir, testConfig)

	cmdCtx := cmdcontext.CmdCtx{}
	cmdCtx.Cli.ConfigPath = configPath
	require.NoError(t, Cli(&cmdCtx))
	assert.Equal(t, configPath, cmdCtx.Cli.ConfigPath)
	assert.Equal(t, tmpDir, cmdCtx.Cli.ConfigDir)
}
