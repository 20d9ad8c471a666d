package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Outcome reports what happened to a single path during materialization.
type Outcome struct {
	Path    string
	Created bool
}

const dirPerm = 0o755

// materializeForest realizes the forest as directories under rootPath,
// depth-first and in source order. Each node is reported through report
// before any of its children are attempted. Paths that already exist
// (directories or not) are reported and left alone; any other failure
// aborts the remaining traversal.
func materializeForest(forest []*Node, rootPath string, report func(Outcome)) error {
	for _, node := range forest {
		if err := materializeNode(node, rootPath, report); err != nil {
			return err
		}
	}
	return nil
}

func materializeNode(node *Node, parentPath string, report func(Outcome)) error {
	path := filepath.Join(parentPath, node.Name)

	_, err := os.Lstat(path)
	switch {
	case err == nil:
		report(Outcome{Path: path})
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(path, dirPerm); err != nil {
			return fmt.Errorf("mkdir %s: %w", path, err)
		}
		report(Outcome{Path: path, Created: true})
	default:
		// Includes ENOTDIR when an ancestor turned out to be a regular
		// file. Fatal, same as a failed create.
		return fmt.Errorf("stat %s: %w", path, err)
	}

	return materializeForest(node.Children, path, report)
}

// previewForest reports what materializeForest would do without touching the
// filesystem. Paths that do not exist yet are reported as Created.
func previewForest(forest []*Node, rootPath string, report func(Outcome)) {
	for _, node := range forest {
		path := filepath.Join(rootPath, node.Name)
		_, err := os.Lstat(path)
		report(Outcome{Path: path, Created: err != nil})
		previewForest(node.Children, path, report)
	}
}
