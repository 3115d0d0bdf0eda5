package robotstxt

import (
	"fmt"
	"os"
)

// File is a Document bound to a path on disk. It remembers the line ending
// of the content it was loaded from so Save writes it back unchanged.
type File struct {
	path string
	doc  Document
	eol  LineEnding
}

func NewFile(path string) *File {
	return &File{
		path: path,
		doc:  Document{},
		eol:  LF,
	}
}

// Load reads and parses the file at path. A missing file yields an empty
// File that Save will create.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewFile(path), nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	content := string(data)
	return &File{
		path: path,
		doc:  Parse(content),
		eol:  DetectLineEnding(content),
	}, nil
}

func (f *File) Path() string { return f.path }

// Document returns a pointer so callers can Append to and Remove from the
// file's lines in place.
func (f *File) Document() *Document { return &f.doc }

func (f *File) LineEnding() LineEnding { return f.eol }

func (f *File) SetLineEnding(eol LineEnding) {
	if eol != "" {
		f.eol = eol
	}
}

func (f *File) Bytes() []byte {
	return []byte(Serialize(f.doc, WithLineEnding(f.eol)))
}

func (f *File) Save() error {
	if err := os.WriteFile(f.path, f.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
