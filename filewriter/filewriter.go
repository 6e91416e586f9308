// Package filewriter writes build outputs to disk, optionally
// together with their precompressed versions.
package filewriter

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
)

// pipeline.yml -> compress:
type CompressConfig struct {
	Methods    []string `yaml:"methods"`
	Extensions []string `yaml:"extensions"`
}

type Compressor struct {
	Method string
	Ext    string
	New    func(w io.Writer) io.WriteCloser
}

var gzipCompressor = &Compressor{
	Method: "gzip",
	Ext:    "gz",
	New: func(w io.Writer) io.WriteCloser {
		z, err := gzip.NewWriterLevel(w, gzipLevel)
		if err != nil {
			panic(err.Error()) // shouldn't happen
		}
		return z
	},
}

var brotliCompressor = &Compressor{
	Method: "br",
	Ext:    "br",
	New: func(w io.Writer) io.WriteCloser {
		return brotli.NewWriterLevel(w, brotliLevel)
	},
}

const (
	gzipLevel   = 9
	brotliLevel = 11
)

// CompressorFor returns a compressor by method name ("gzip" or "br").
func CompressorFor(method string) (*Compressor, error) {
	switch method {
	case "gzip":
		return gzipCompressor, nil
	case "br", "brotli":
		return brotliCompressor, nil
	default:
		return nil, fmt.Errorf("Unknown compression method: %q", method)
	}
}

// Compress returns data compressed by c.
func (c *Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	z := c.New(&buf)
	if _, err := z.Write(data); err != nil {
		z.Close()
		return nil, err
	}
	if err := z.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type FileWriter struct {
	compressedExtensions map[string]struct{}
	compressors          []*Compressor
}

func New(c *CompressConfig) (*FileWriter, error) {
	extensions := make(map[string]struct{})
	compressors := make([]*Compressor, 0)
	if c != nil {
		for _, v := range c.Extensions {
			extensions["."+strings.TrimPrefix(v, ".")] = struct{}{}
		}
		for _, v := range c.Methods {
			comp, err := CompressorFor(v)
			if err != nil {
				return nil, err
			}
			compressors = append(compressors, comp)
		}
	}
	return &FileWriter{
		compressedExtensions: extensions,
		compressors:          compressors,
	}, nil
}

func (f *FileWriter) numberOfCompressors(ext string) int {
	if _, ok := f.compressedExtensions[ext]; ok {
		return len(f.compressors)
	}
	return 0
}

func writeCompressed(c *Compressor, filename string, data []byte) (err error) {
	outfile := filename + "." + c.Ext
	out, err := os.OpenFile(outfile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(outfile)
		}
	}()
	z := c.New(out)
	if _, err := z.Write(data); err != nil {
		z.Close()
		return err
	}
	return z.Close()
}

// WriteFile writes data to filename, creating parent directories,
// and writes compressed copies for configured extensions.
// It returns the first error.
func (f *FileWriter) WriteFile(filename string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	n := f.numberOfCompressors(filepath.Ext(filename))
	done := make(chan error, 1+n)
	go func() {
		done <- ioutil.WriteFile(filename, data, 0644)
	}()
	if n > 0 {
		for _, c := range f.compressors {
			c := c
			go func() {
				done <- writeCompressed(c, filename, data)
			}()
		}
	}
	var firstErr error
	for i := 0; i < 1+n; i++ {
		err := <-done
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func copyFile(outfile, infile string) (err error) {
	// Remove old outfile, ignoring errors.
	os.Remove(outfile)

	// Try making hard link instead of copying.
	if err := os.Link(infile, outfile); err == nil {
		return nil // success
	}

	// Failed to create hard link, so try copying content.
	in, err := os.Open(infile)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(outfile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(outfile)
		}
	}()
	_, err = io.Copy(out, in)
	return err
}

// CopyFile copies infile to outfile, hard-linking when possible.
// Compressed copies are written for configured extensions.
func (f *FileWriter) CopyFile(outfile, infile string) error {
	if err := os.MkdirAll(filepath.Dir(outfile), 0755); err != nil {
		return err
	}
	if err := copyFile(outfile, infile); err != nil {
		return err
	}
	if f.numberOfCompressors(filepath.Ext(outfile)) == 0 {
		return nil
	}
	data, err := ioutil.ReadFile(infile)
	if err != nil {
		return err
	}
	done := make(chan error, len(f.compressors))
	for _, c := range f.compressors {
		c := c
		go func() {
			done <- writeCompressed(c, outfile, data)
		}()
	}
	var firstErr error
	for range f.compressors {
		if err := <-done; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
