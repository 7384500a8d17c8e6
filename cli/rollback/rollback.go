// Package rollback removes the paths created by a generation run.
package rollback

import (
	"errors"
	"io/fs"
	"os"

	"github.com/apex/log"
	"github.com/go-git/go-billy/v5"
)

// Failure is a path which could not be removed.
type Failure struct {
	// Path is a ledger path.
	Path string
	// Err is the removal error.
	Err error
}

// Error returns error message.
func (failure Failure) Error() string {
	return "failed to remove " + failure.Path + ": " + failure.Err.Error()
}

// Remover is a filesystem part used by the rollback.
type Remover interface {
	// Remove removes a file or an empty directory.
	Remove(path string) error
	// Lstat returns the path info without following symlinks.
	Lstat(path string) (os.FileInfo, error)
}

// Rollback removes the ledger paths from fsys. See RollbackWith.
func Rollback(fsys billy.Filesystem, ledger []string) []Failure {
	return RollbackWith(fsys, ledger)
}

// RollbackWith removes every ledger path in reverse order, so entries are removed
// before the directories containing them. Every path gets exactly one removal
// attempt regardless of the previous failures. A path which does not exist is not
// a failure, a path still present after a failed removal is.
func RollbackWith(remover Remover, ledger []string) []Failure {
	var failures []Failure
	for i := len(ledger) - 1; i >= 0; i-- {
		path := ledger[i]
		err := remover.Remove(path)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			log.Debugf("Removed %s", path)
			continue
		}
		if _, statErr := remover.Lstat(path); errors.Is(statErr, fs.ErrNotExist) {
			log.Debugf("%s is already removed", path)
			continue
		}
		log.Warnf("Failed to remove %s: %s", path, err)
		failures = append(failures, Failure{Path: path, Err: err})
	}
	return failures
}
