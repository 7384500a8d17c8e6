package materialize

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/foldertemplate/ftg/cli/structure"
	"github.com/foldertemplate/ftg/cli/templates"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/otiai10/copy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	workDir      = "/work"
	templatesDir = "/templates"
)

func newMemFs(t *testing.T) billy.Filesystem {
	t.Helper()
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll(workDir, 0o755))
	require.NoError(t, util.WriteFile(fsys, templatesDir+"/index.tmpl",
		[]byte("Hello [[NAME]]\n[[DEBUG]]debug line\n"), 0o644))
	return fsys
}

func libStructure() *structure.Structure {
	return &structure.Structure{
		Name: "Lib",
		Items: []structure.Item{
			{FileName: "src", Template: structure.FolderTemplate},
			{FileName: "src/index.txt", Template: "index.tmpl"},
		},
	}
}

func libBindings() structure.Bindings {
	bindings := structure.NewBindings()
	bindings.Variables["NAME"] = "Acme"
	bindings.Optionals["DEBUG"] = false
	return bindings
}

func readFile(t *testing.T, fsys billy.Filesystem, path string) string {
	t.Helper()
	content, err := util.ReadFile(fsys, path)
	require.NoError(t, err)
	return string(content)
}

func TestMaterializeLib(t *testing.T) {
	fsys := newMemFs(t)
	m := New(fsys, nil)

	result, err := m.Materialize(Request{
		Structure:          libStructure(),
		TargetPath:         workDir,
		TemplatesDirectory: templatesDir,
		Bindings:           libBindings(),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Empty(t, result.Skipped)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, []string{"/work/src", "/work/src/index.txt"}, result.Ledger.Paths())

	info, err := fsys.Stat("/work/src")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, "Hello Acme\n", readFile(t, fsys, "/work/src/index.txt"))
}

func TestMaterializeRerunDoesNotOverwrite(t *testing.T) {
	fsys := newMemFs(t)
	m := New(fsys, nil)
	req := Request{
		Structure:          libStructure(),
		TargetPath:         workDir,
		TemplatesDirectory: templatesDir,
		Bindings:           libBindings(),
	}

	_, err := m.Materialize(req)
	require.NoError(t, err)
	require.NoError(t, util.WriteFile(fsys, "/work/src/index.txt", []byte("edited"), 0o644))

	req.Bindings.Variables["NAME"] = "Other"
	result, err := m.Materialize(req)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 0, result.Ledger.Len())
	require.Len(t, result.Skipped, 2)
	assert.Equal(t, "src/index.txt", result.Skipped[1].FileName)
	assert.Equal(t, ReasonAlreadyExists, result.Skipped[1].Reason)
	assert.Equal(t, "edited", readFile(t, fsys, "/work/src/index.txt"))
}

func TestMaterializeSkips(t *testing.T) {
	fsys := newMemFs(t)
	require.NoError(t, util.WriteFile(fsys, "/work/existing.txt", []byte("keep"), 0o644))

	s := &structure.Structure{
		Name:      "Skips",
		Optionals: []structure.Optional{{OptName: "DEBUG"}, {OptName: "DOCS"}},
		Items: []structure.Item{
			{FileName: "CON.txt", Template: "index.tmpl"},
			{FileName: "docs/CON/readme.md"},
			{FileName: "debug.txt", Optional: "DEBUG"},
			{FileName: "docs", Template: "FOLDER", Optional: "DOCS"},
			{FileName: "existing.txt"},
			{FileName: "bad:name.txt"},
			{FileName: "a//b.txt"},
		},
	}
	bindings := structure.NewBindings()
	bindings.Optionals["DEBUG"] = false
	bindings.Optionals["DOCS"] = true

	for _, optionals := range []map[string]bool{bindings.Optionals, {"DEBUG": false}} {
		result, err := New(fsys, nil).Materialize(Request{
			Structure:          s,
			TargetPath:         workDir,
			TemplatesDirectory: templatesDir,
			Bindings: structure.Bindings{
				Variables: map[string]string{},
				Optionals: optionals,
			},
		})
		require.NoError(t, err)

		reasons := map[string]SkipReason{}
		for _, skipped := range result.Skipped {
			reasons[skipped.FileName] = skipped.Reason
		}
		assert.Equal(t, ReasonInvalidName, reasons["CON.txt"])
		assert.Equal(t, ReasonInvalidName, reasons["docs/CON/readme.md"])
		assert.Equal(t, ReasonOptionalExcluded, reasons["debug.txt"])
		assert.Equal(t, ReasonAlreadyExists, reasons["existing.txt"])
		assert.Equal(t, ReasonInvalidName, reasons["bad:name.txt"])
		assert.Equal(t, ReasonInvalidName, reasons["a//b.txt"])
	}

	_, err := fsys.Lstat("/work/CON.txt")
	assert.True(t, os.IsNotExist(err))
	_, err = fsys.Lstat("/work/debug.txt")
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, "keep", readFile(t, fsys, "/work/existing.txt"))
}

func TestMaterializeSkippedOrder(t *testing.T) {
	fsys := newMemFs(t)
	s := &structure.Structure{
		Name: "Order",
		Items: []structure.Item{
			{FileName: "b?.txt"},
			{FileName: "ok.txt"},
			{FileName: "a?.txt"},
		},
	}
	result, err := New(fsys, nil).Materialize(Request{Structure: s, TargetPath: workDir,
		Bindings: structure.NewBindings()})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	require.Len(t, result.Skipped, 2)
	assert.Equal(t, "b?.txt", result.Skipped[0].FileName)
	assert.Equal(t, "a?.txt", result.Skipped[1].FileName)
	assert.Contains(t, result.Skipped[0].Details, `"b?.txt" is not a valid file name`)
}

func TestMaterializeAncestors(t *testing.T) {
	fsys := newMemFs(t)
	require.NoError(t, fsys.MkdirAll("/work/existing", 0o755))

	s := &structure.Structure{
		Name: "Deep",
		Items: []structure.Item{
			{FileName: "a/b/c.txt"},
			{FileName: `a\b\d.txt`},
			{FileName: "a/e", Template: "folder"},
			{FileName: "existing/f/g.txt"},
		},
	}
	result, err := New(fsys, nil).Materialize(Request{Structure: s, TargetPath: workDir,
		Bindings: structure.NewBindings()})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Created)
	assert.Equal(t, []string{
		"/work/a",
		"/work/a/b",
		"/work/a/b/c.txt",
		"/work/a/b/d.txt",
		"/work/a/e",
		"/work/existing/f",
		"/work/existing/f/g.txt",
	}, result.Ledger.Paths())

	for _, path := range result.Ledger.Paths() {
		assert.True(t, strings.HasPrefix(path, workDir+"/"), path)
	}

	info, err := fsys.Stat("/work/a/e")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, "", readFile(t, fsys, "/work/a/b/c.txt"))
}

func TestMaterializeMissingTemplate(t *testing.T) {
	fsys := newMemFs(t)
	s := &structure.Structure{
		Name:  "Missing",
		Items: []structure.Item{{FileName: "main.go", Template: "missing.tmpl"}},
	}
	result, err := New(fsys, nil).Materialize(Request{
		Structure:          s,
		TargetPath:         workDir,
		TemplatesDirectory: templatesDir,
		Bindings:           structure.NewBindings(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "/templates/missing.tmpl")
	assert.Equal(t, []string{"/work/main.go"}, result.Ledger.Paths())
	assert.Equal(t, "", readFile(t, fsys, "/work/main.go"))
}

func TestMaterializeCreatesTarget(t *testing.T) {
	fsys := newMemFs(t)
	result, err := New(fsys, nil).Materialize(Request{
		Structure:          libStructure(),
		TargetPath:         "/work/acme",
		TemplatesDirectory: templatesDir,
		Bindings:           libBindings(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/work/acme", "/work/acme/src", "/work/acme/src/index.txt"},
		result.Ledger.Paths())
	assert.Equal(t, 2, result.Created)
}

func TestMaterializeRequestErrors(t *testing.T) {
	fsys := newMemFs(t)
	require.NoError(t, util.WriteFile(fsys, "/work/file", []byte{}, 0o644))
	m := New(fsys, nil)

	cases := []struct {
		name   string
		req    Request
		errMsg string
	}{
		{
			name:   "no structure",
			req:    Request{TargetPath: workDir},
			errMsg: "structure is not set",
		},
		{
			name:   "no target",
			req:    Request{Structure: libStructure()},
			errMsg: "target path is not set",
		},
		{
			name:   "relative target",
			req:    Request{Structure: libStructure(), TargetPath: "work"},
			errMsg: `target path "work" is not absolute`,
		},
		{
			name:   "target is a file",
			req:    Request{Structure: libStructure(), TargetPath: "/work/file"},
			errMsg: `target path "/work/file" is not a directory`,
		},
		{
			name:   "target parent is missing",
			req:    Request{Structure: libStructure(), TargetPath: "/missing/acme"},
			errMsg: `cannot create "/missing/acme": directory "/missing" does not exist`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := m.Materialize(tc.req)
			require.EqualError(t, err, tc.errMsg)
			assert.Equal(t, 0, result.Ledger.Len())
		})
	}
}

func TestMaterializeSingleBracketEngine(t *testing.T) {
	fsys := newMemFs(t)
	require.NoError(t, util.WriteFile(fsys, templatesDir+"/legacy.tmpl",
		[]byte("name=[NAME]\n[DEBUG]debug\n"), 0o644))
	engine, err := templates.NewEngine(templates.SyntaxSingle)
	require.NoError(t, err)

	s := &structure.Structure{
		Name:  "Legacy",
		Items: []structure.Item{{FileName: "app.cfg", Template: "legacy.tmpl"}},
	}
	_, err = New(fsys, engine).Materialize(Request{
		Structure:          s,
		TargetPath:         workDir,
		TemplatesDirectory: templatesDir,
		Bindings:           libBindings(),
	})
	require.NoError(t, err)
	assert.Equal(t, "name=Acme\n", readFile(t, fsys, "/work/app.cfg"))
}

func TestMaterializeOS(t *testing.T) {
	templatesPath := t.TempDir()
	require.NoError(t, copy.Copy(filepath.Join("testdata", "templates"), templatesPath))
	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "plain.txt"), []byte{}, 0o644))

	s := &structure.Structure{
		Name: "Go",
		Items: []structure.Item{
			{FileName: "cmd/acme/main.go", Template: "nested/main.go.tmpl"},
			{FileName: "README.md", Template: "index.tmpl"},
			{FileName: "plain.txt/inner.txt"},
		},
	}
	bindings := structure.NewBindings()
	bindings.Variables["NAME"] = "acme"
	bindings.Optionals["DEBUG"] = true

	result, err := NewOS(nil).Materialize(Request{
		Structure:          s,
		TargetPath:         target,
		TemplatesDirectory: templatesPath,
		Bindings:           bindings,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, ReasonWriteFailed, result.Skipped[0].Reason)
	assert.Equal(t, []string{
		filepath.Join(target, "cmd"),
		filepath.Join(target, "cmd", "acme"),
		filepath.Join(target, "cmd", "acme", "main.go"),
		filepath.Join(target, "README.md"),
	}, result.Ledger.Paths())

	content, err := os.ReadFile(filepath.Join(target, "cmd", "acme", "main.go"))
	require.NoError(t, err)
	assert.Equal(t, "package acme\n", string(content))
	content, err = os.ReadFile(filepath.Join(target, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "Hello acme\ndebug line\n", string(content))
}
