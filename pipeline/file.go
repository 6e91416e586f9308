package pipeline

import (
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"
)

// InputFile is a read-only file handle given to a stage.
type InputFile interface {
	// Path returns the logical path of the file.
	Path() string
	// Read returns the whole content of the file.
	Read() ([]byte, error)
}

// OutputFile is a file handle a stage writes its result into.
type OutputFile interface {
	Path() string
	// Write appends data to the file.
	Write(data []byte) error
}

// MemoryFile is an in-memory file. It can be used both as
// an input and as an output.
type MemoryFile struct {
	mu   sync.Mutex
	path string
	data []byte
}

// NewMemoryFile returns a new file with the given logical path and content.
func NewMemoryFile(path string, data []byte) *MemoryFile {
	return &MemoryFile{path: path, data: data}
}

func (f *MemoryFile) Path() string { return f.path }

// Read returns a copy of the file content.
func (f *MemoryFile) Read() ([]byte, error) {
	return f.Bytes(), nil
}

func (f *MemoryFile) Write(data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = append(f.data, data...)
	return nil
}

// Bytes returns a copy of the file content.
func (f *MemoryFile) Bytes() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]byte(nil), f.data...)
}

// DiskFile is an input file read from disk on demand.
type DiskFile struct {
	root string
	path string
}

// NewDiskFile returns an input file for the slash-separated logical path
// relative to root.
func NewDiskFile(root, path string) *DiskFile {
	return &DiskFile{root: root, path: path}
}

func (f *DiskFile) Path() string { return f.path }

// Filename returns the name of the file on disk.
func (f *DiskFile) Filename() string {
	return filepath.Join(f.root, filepath.FromSlash(f.path))
}

func (f *DiskFile) Read() ([]byte, error) {
	return ioutil.ReadFile(f.Filename())
}

// isIgnoredFile returns true if filename should be ignored
// when reading input files.
func isIgnoredFile(filename string) bool {
	// Files ending with ~ are considered temporary.
	if filename[len(filename)-1] == '~' {
		return true
	}
	// Crap from OS X Finder.
	if path.Base(filename) == ".DS_Store" {
		return true
	}
	return false
}

// ReadDir returns input files for every regular file under root,
// sorted by logical path.
func ReadDir(root string) ([]InputFile, error) {
	var names []string
	err := filepath.Walk(root, func(p string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return nil
		}
		relname, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		relname = filepath.ToSlash(relname)
		if isIgnoredFile(relname) {
			return nil // skip ignored files
		}
		names = append(names, relname)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	files := make([]InputFile, len(names))
	for i, name := range names {
		files[i] = NewDiskFile(root, name)
	}
	return files, nil
}
