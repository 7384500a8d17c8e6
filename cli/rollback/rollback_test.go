package rollback

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/foldertemplate/ftg/cli/materialize"
	"github.com/foldertemplate/ftg/cli/structure"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRemover records removal attempts and fails for the configured paths.
type recordingRemover struct {
	attempts []string
	failing  map[string]error
	missing  map[string]bool
}

func (r *recordingRemover) Remove(path string) error {
	r.attempts = append(r.attempts, path)
	if r.missing[path] {
		return fs.ErrNotExist
	}
	return r.failing[path]
}

func (r *recordingRemover) Lstat(path string) (os.FileInfo, error) {
	if r.missing[path] {
		return nil, fs.ErrNotExist
	}
	return nil, nil
}

func TestRollbackOrder(t *testing.T) {
	permissionErr := errors.New("permission denied")
	remover := &recordingRemover{
		failing: map[string]error{"/w/a/b": permissionErr},
		missing: map[string]bool{"/w/a/c.txt": true},
	}
	ledger := []string{"/w/a", "/w/a/b", "/w/a/b/x.txt", "/w/a/c.txt"}

	failures := RollbackWith(remover, ledger)
	assert.Equal(t, []string{"/w/a/c.txt", "/w/a/b/x.txt", "/w/a/b", "/w/a"}, remover.attempts)
	require.Len(t, failures, 1)
	assert.Equal(t, "/w/a/b", failures[0].Path)
	assert.ErrorIs(t, failures[0].Err, permissionErr)
	assert.EqualError(t, failures[0], "failed to remove /w/a/b: permission denied")
}

func TestRollbackEmptyLedger(t *testing.T) {
	remover := &recordingRemover{}
	assert.Empty(t, RollbackWith(remover, nil))
	assert.Empty(t, remover.attempts)
}

func TestRollbackMaterialized(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("/work", 0o755))
	s := &structure.Structure{
		Name: "Lib",
		Items: []structure.Item{
			{FileName: "src", Template: structure.FolderTemplate},
			{FileName: "src/index.txt"},
			{FileName: "docs/guide/intro.md"},
		},
	}
	result, err := materialize.New(fsys, nil).Materialize(materialize.Request{
		Structure:  s,
		TargetPath: "/work/acme",
		Bindings:   structure.NewBindings(),
	})
	require.NoError(t, err)
	require.Equal(t, 6, result.Ledger.Len())

	assert.Empty(t, Rollback(fsys, result.Ledger.Paths()))
	_, err = fsys.Lstat("/work/acme")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	_, err = fsys.Lstat("/work")
	assert.NoError(t, err)

	// Second rollback of the same ledger finds nothing to remove.
	assert.Empty(t, Rollback(fsys, result.Ledger.Paths()))
}

func TestRollbackKeepsForeignFiles(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("/work/src", 0o755))
	require.NoError(t, util.WriteFile(fsys, "/work/src/index.txt", []byte{}, 0o644))
	require.NoError(t, util.WriteFile(fsys, "/work/src/user.txt", []byte("mine"), 0o644))

	failures := Rollback(fsys, []string{"/work/src", "/work/src/index.txt"})
	require.Len(t, failures, 1)
	assert.Equal(t, "/work/src", failures[0].Path)

	content, err := util.ReadFile(fsys, "/work/src/user.txt")
	require.NoError(t, err)
	assert.Equal(t, "mine", string(content))
}

func TestRollbackOS(t *testing.T) {
	target := t.TempDir()
	dir := filepath.Join(target, "a")
	file := filepath.Join(dir, "b.txt")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	failures := Rollback(osfs.New("/"), []string{dir, file, filepath.Join(target, "gone")})
	assert.Empty(t, failures)
	assert.NoDirExists(t, dir)
	assert.DirExists(t, target)
}
