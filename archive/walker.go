// Package archive inspects produced zip packages.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"
)

// WalkFunc is called for each file in archive visited by Walk. The archive
// argument is the path passed to Walk. If an error is returned, processing
// stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk calls walkFn for every file in the archive which name starts with
// prefix. Entries with absolute paths or ".." components fail the walk.
func Walk(archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, prefix) {
			if err := walkFn(archive, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Parts returns names of all files in the archive in stored order.
func Parts(archive string) ([]string, error) {
	var names []string
	err := Walk(archive, "", func(_ string, f *zip.File) error {
		names = append(names, f.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// MissingPartsError lists required parts absent from a package.
type MissingPartsError struct {
	Archive string
	Parts   []string
}

func (e *MissingPartsError) Error() string {
	return fmt.Sprintf("package %s is missing required parts: %s", e.Archive, strings.Join(e.Parts, ", "))
}

// Require checks that every named part is present in the archive.
func Require(archive string, required ...string) error {
	names, err := Parts(archive)
	if err != nil {
		return err
	}
	var missing []string
	for _, r := range required {
		if !slices.Contains(names, r) {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return &MissingPartsError{Archive: archive, Parts: missing}
	}
	return nil
}

// ReadPart returns content of a single named part.
func ReadPart(archive, name string) ([]byte, error) {
	var (
		data  []byte
		found bool
	)
	err := Walk(archive, name, func(_ string, f *zip.File) error {
		if f.Name != name {
			return nil
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		found = true
		data, err = io.ReadAll(rc)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("part %q not found in %s", name, archive)
	}
	return data, nil
}

// isSafePath returns false for absolute paths and those containing ".."
// components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	return !slices.Contains(strings.Split(name, "/"), "..")
}
