// Package fsutil provides helpers for reading and writing whole files
package fsutil

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2025 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/essentialkaos/datakit"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// FILE_PERMS is default permissions for created files
const FILE_PERMS os.FileMode = 0644

// ////////////////////////////////////////////////////////////////////////////////// //

var ErrEmptyPath = fmt.Errorf("Path is empty")

// ////////////////////////////////////////////////////////////////////////////////// //

// ReadFile reads the named file and returns the contents
func ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: %w", datakit.ErrNotFound, ErrEmptyPath)
	}

	data, err := os.ReadFile(path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: Can't read file %q: %w", datakit.ErrNotFound, path, err)
	case err != nil:
		return nil, fmt.Errorf("%w: Can't read file %q: %w", datakit.ErrIO, path, err)
	}

	return data, nil
}

// WriteFile writes data to the named file, creating it if necessary. Existing
// content is always replaced.
func WriteFile(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("%w: %w", datakit.ErrIO, ErrEmptyPath)
	}

	err := os.WriteFile(path, data, FILE_PERMS)

	if err != nil {
		return fmt.Errorf("%w: Can't write file %q: %w", datakit.ErrIO, path, err)
	}

	return nil
}
