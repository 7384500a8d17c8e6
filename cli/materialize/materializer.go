// Package materialize creates the files and directories of a structure in a
// target directory.
package materialize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/foldertemplate/ftg/cli/structure"
	"github.com/foldertemplate/ftg/cli/templates"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// SkipReason describes why an item was not created.
type SkipReason string

const (
	// ReasonInvalidName is used when a segment of the item file name is not a
	// valid file name.
	ReasonInvalidName SkipReason = "invalid name"
	// ReasonOptionalExcluded is used when the item depends on a disabled optional.
	ReasonOptionalExcluded SkipReason = "optional excluded"
	// ReasonAlreadyExists is used when the item path is already present. Existing
	// paths are never overwritten.
	ReasonAlreadyExists SkipReason = "already exists"
	// ReasonWriteFailed is used when the filesystem refused to create the item.
	ReasonWriteFailed SkipReason = "write failed"
)

// Skipped is an item which was not created.
type Skipped struct {
	// FileName is the item file name as defined in the structure.
	FileName string
	// Reason is a skip reason.
	Reason SkipReason
	// Details is a human-readable explanation.
	Details string
}

// Request contains everything needed to materialize a structure.
type Request struct {
	// Structure is a validated structure definition.
	Structure *structure.Structure
	// TargetPath is an absolute path of the directory to generate into. It is
	// created if missing, its parent must exist.
	TargetPath string
	// TemplatesDirectory is a directory item templates are resolved against.
	TemplatesDirectory string
	// Bindings are the resolved variables and optionals of the run.
	Bindings structure.Bindings
}

// Result is a summary of a materialization run.
type Result struct {
	// Created is the number of created items.
	Created int
	// Skipped is the list of items which were not created, in definition order.
	Skipped []Skipped
	// Ledger contains every created path including intermediate directories.
	Ledger *Ledger
	// Warnings are non-fatal problems, like missing templates.
	Warnings []string
}

func (result *Result) skip(fileName string, reason SkipReason, details string) {
	log.WithFields(log.Fields{
		"file":   fileName,
		"reason": string(reason),
	}).Debug(details)
	result.Skipped = append(result.Skipped, Skipped{
		FileName: fileName,
		Reason:   reason,
		Details:  details,
	})
}

func (result *Result) warn(format string, args ...any) {
	warning := fmt.Sprintf(format, args...)
	log.Warn(warning)
	result.Warnings = append(result.Warnings, warning)
}

// Materializer creates structure items on a filesystem. Items are processed
// sequentially in definition order.
type Materializer struct {
	fsys   billy.Filesystem
	engine templates.TemplateEngine
}

// New creates a materializer working on fsys. The default template engine is
// used if engine is nil.
func New(fsys billy.Filesystem, engine templates.TemplateEngine) *Materializer {
	if engine == nil {
		engine = templates.NewDefaultEngine()
	}
	return &Materializer{
		fsys:   fsys,
		engine: engine,
	}
}

// NewOS creates a materializer working on the OS filesystem.
func NewOS(engine templates.TemplateEngine) *Materializer {
	return New(osfs.New("/"), engine)
}

// Filesystem returns the filesystem the materializer writes to.
func (m *Materializer) Filesystem() billy.Filesystem {
	return m.fsys
}

// exists checks path presence without following symlinks.
func (m *Materializer) exists(path string) (bool, error) {
	_, err := m.fsys.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func checkRequest(req Request) error {
	if req.Structure == nil {
		return fmt.Errorf("structure is not set")
	}
	if req.TargetPath == "" {
		return fmt.Errorf("target path is not set")
	}
	if !filepath.IsAbs(req.TargetPath) {
		return fmt.Errorf("target path %q is not absolute", req.TargetPath)
	}
	return nil
}

// ensureTarget creates the target directory if it is missing and records it.
func (m *Materializer) ensureTarget(target string, ledger *Ledger) error {
	info, err := m.fsys.Stat(target)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("target path %q is not a directory", target)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check target path %q: %w", target, err)
	}

	parent := filepath.Dir(target)
	if parentInfo, err := m.fsys.Stat(parent); err != nil || !parentInfo.IsDir() {
		return fmt.Errorf("cannot create %q: directory %q does not exist", target, parent)
	}
	if err := m.fsys.MkdirAll(target, dirPermissions); err != nil {
		return fmt.Errorf("failed to create target directory %q: %w", target, err)
	}
	ledger.Add(target)
	log.Debugf("Created target directory %s", target)
	return nil
}

// missingAncestors returns the ancestor directories of an item which do not exist
// yet, in root-to-leaf order.
func (m *Materializer) missingAncestors(target string, dirs []string,
	ledger *Ledger) ([]string, error) {
	var missing []string
	current := target
	for _, dir := range dirs {
		current = filepath.Join(current, dir)
		if ledger.Contains(current) {
			continue
		}
		exists, err := m.exists(current)
		if err != nil {
			return nil, err
		}
		if !exists {
			missing = append(missing, current)
		}
	}
	return missing, nil
}

// recordAncestors adds the ancestors which were actually created to the ledger.
// Called after both successful and failed writes, so a partially created chain
// is still rolled back.
func (m *Materializer) recordAncestors(ancestors []string, ledger *Ledger) {
	for _, dir := range ancestors {
		if exists, _ := m.exists(dir); exists {
			ledger.Add(dir)
		}
	}
}

// renderContent returns the content of a file item. A missing template results in
// a warning and an empty content.
func (m *Materializer) renderContent(req *Request, item structure.Item,
	result *Result) (string, error) {
	if item.Template == "" {
		return "", nil
	}
	templatePath := filepath.Join(req.TemplatesDirectory,
		filepath.FromSlash(strings.ReplaceAll(item.Template, `\`, "/")))

	if _, err := m.fsys.Stat(templatePath); errors.Is(err, fs.ErrNotExist) {
		result.warn("Template %s for %s is not found, an empty file is created",
			templatePath, item.FileName)
		return "", nil
	}
	return m.engine.RenderFile(m.fsys, templatePath, req.Bindings.Variables,
		req.Bindings.Optionals)
}

// writeFile creates a new file. The returned flag is true if the file was created,
// even if writing its content failed.
func (m *Materializer) writeFile(path string, content string) (bool, error) {
	file, err := m.fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePermissions)
	if err != nil {
		return false, err
	}
	if _, err = file.Write([]byte(content)); err != nil {
		file.Close()
		return true, err
	}
	return true, file.Close()
}

func (m *Materializer) materializeItem(req *Request, target string, item structure.Item,
	result *Result) {
	if segment, invalid := structure.InvalidSegment(item.FileName); invalid {
		result.skip(item.FileName, ReasonInvalidName,
			fmt.Sprintf("%q is not a valid file name", segment))
		return
	}
	if item.Optional != "" && req.Bindings.Excludes(item.Optional) {
		result.skip(item.FileName, ReasonOptionalExcluded,
			fmt.Sprintf("optional %s is disabled", item.Optional))
		return
	}

	segments := structure.SplitPath(item.FileName)
	fullPath := filepath.Join(append([]string{target}, segments...)...)
	exists, err := m.exists(fullPath)
	if err != nil {
		result.skip(item.FileName, ReasonWriteFailed, err.Error())
		return
	}
	if exists {
		result.skip(item.FileName, ReasonAlreadyExists,
			fmt.Sprintf("%s already exists", fullPath))
		return
	}

	ancestors, err := m.missingAncestors(target, segments[:len(segments)-1], result.Ledger)
	if err != nil {
		result.skip(item.FileName, ReasonWriteFailed, err.Error())
		return
	}

	created := false
	if item.IsFolder() {
		if err = m.fsys.MkdirAll(fullPath, dirPermissions); err == nil {
			created = true
		}
	} else {
		var content string
		if content, err = m.renderContent(req, item, result); err == nil {
			if len(ancestors) > 0 {
				err = m.fsys.MkdirAll(filepath.Dir(fullPath), dirPermissions)
			}
			if err == nil {
				created, err = m.writeFile(fullPath, content)
			}
		}
	}

	m.recordAncestors(ancestors, result.Ledger)
	if created {
		result.Ledger.Add(fullPath)
	}
	if err != nil {
		result.skip(item.FileName, ReasonWriteFailed, err.Error())
		return
	}
	result.Created++
	log.Debugf("Created %s", fullPath)
}

// Materialize creates the items of the requested structure. An error is returned
// only if the request itself cannot be served; problems with single items are
// reported in Result.Skipped and never stop processing of the following items.
func (m *Materializer) Materialize(req Request) (Result, error) {
	result := Result{Ledger: NewLedger()}
	if err := checkRequest(req); err != nil {
		return result, err
	}

	target := filepath.Clean(req.TargetPath)
	if err := m.ensureTarget(target, result.Ledger); err != nil {
		return result, err
	}

	for _, item := range req.Structure.Items {
		m.materializeItem(&req, target, item, &result)
	}
	return result, nil
}
