package steps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	generate_ctx "github.com/foldertemplate/ftg/cli/generate/context"
	"github.com/foldertemplate/ftg/cli/structure"
	"github.com/foldertemplate/ftg/cli/util"
)

// ResolveTargetPath computes the directory to generate into.
type ResolveTargetPath struct {
	// Reader is used to get the new folder name.
	Reader Reader
}

// checkFolderName returns a reason why name cannot be used for a new folder in
// parentDir, or an empty string.
func checkFolderName(parentDir, name string) string {
	if !structure.IsValidName(name) {
		return fmt.Sprintf("%q is not a valid folder name", name)
	}
	if _, err := os.Lstat(filepath.Join(parentDir, name)); err == nil {
		return fmt.Sprintf("%q already exists in %s", name, parentDir)
	}
	return ""
}

// Run resolves the destination directory and, if the structure requests it, the
// new folder inside of it.
func (resolveTargetPath ResolveTargetPath) Run(ctx *generate_ctx.GenerateCtx,
	runCtx *RunCtx) error {
	destination, err := util.JoinAbspath(ctx.WorkDir, ctx.DestinationDir)
	if err != nil {
		return err
	}
	if !util.IsDir(destination) {
		return fmt.Errorf("destination directory %s does not exist", destination)
	}

	if !runCtx.Structure.CreateNewFolder && ctx.FolderName == "" {
		runCtx.TargetPath = destination
		return nil
	}

	name := ctx.FolderName
	for {
		if name == "" {
			if ctx.SilentMode {
				return fmt.Errorf("structure %q creates a new folder: its name is required "+
					"in non-interactive mode, use --name", runCtx.Structure.Name)
			}
			fmt.Printf("Folder name: ")
			if name, err = resolveTargetPath.Reader.readLine(); err != nil {
				return inputError(err)
			}
			name = strings.TrimSpace(name)
			if name == "" {
				fmt.Println("Please enter a value.")
				continue
			}
		}

		problem := checkFolderName(destination, name)
		if problem == "" {
			break
		}
		if ctx.SilentMode {
			return fmt.Errorf("cannot create a new folder: %s", problem)
		}
		fmt.Printf("%s. Try again.\n", problem)
		name = ""
	}

	runCtx.TargetPath = filepath.Join(destination, name)
	log.Debugf("Target path: %s", runCtx.TargetPath)
	return nil
}
