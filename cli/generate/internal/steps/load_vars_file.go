package steps

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	generate_ctx "github.com/foldertemplate/ftg/cli/generate/context"
	"github.com/foldertemplate/ftg/cli/util"
)

// LoadVarsFile represents variables file load step.
type LoadVarsFile struct {
}

// Run loads variables from the file. Empty lines and lines starting with # are
// ignored.
func (LoadVarsFile) Run(ctx *generate_ctx.GenerateCtx, runCtx *RunCtx) error {
	if ctx.VarsFile == "" { // Skip if no file specified.
		return nil
	}

	varsFilePath := util.JoinPaths(ctx.WorkDir, ctx.VarsFile)
	varsFile, err := os.Open(varsFilePath)
	if err != nil {
		return fmt.Errorf("vars file loading error: %s", err)
	}
	defer varsFile.Close()

	scanner := util.FileLinesScanner(varsFile)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		varName, value, err := util.ParseVarDefinition(line)
		if err != nil || value == "" {
			return fmt.Errorf("failed to load vars from %s: line %d: "+
				"wrong variable definition format: %s\nFormat: var-name=value",
				varsFilePath, lineNum, line)
		}
		log.Debugf("Setting var from vars file: %s = %s", varName, value)
		runCtx.Bindings.Variables[varName] = value
	}

	return scanner.Err()
}
