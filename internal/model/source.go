package model

import (
	"path/filepath"
	"strings"
)

// SourceFile is the user-selected input. It is never mutated; a new
// selection replaces it wholesale.
type SourceFile struct {
	Name   string // file name including extension
	Path   string // local path, empty when the file did not come from disk
	Format Format // normalized extension
	Data   []byte // raw bytes handed to the engine
}

// NewSourceFile validates name against the allow-list and builds a SourceFile.
func NewSourceFile(name, path string, data []byte) (*SourceFile, error) {
	name = filepath.Base(strings.TrimSpace(name))
	format, err := FormatFromName(name)
	if err != nil {
		return nil, err
	}
	return &SourceFile{
		Name:   name,
		Path:   path,
		Format: format,
		Data:   data,
	}, nil
}

// BaseName returns the file name with its final extension removed.
func (sf *SourceFile) BaseName() string {
	return BaseName(sf.Name)
}

// Size returns the size of the file in bytes
func (sf *SourceFile) Size() int64 {
	return int64(len(sf.Data))
}

// BaseName strips the final extension from name ("a.b.avi" -> "a.b").
func BaseName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
