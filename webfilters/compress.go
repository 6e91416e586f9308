package webfilters

// `gzip` and `brotli` write compressed copies of files,
// appending .gz or .br to their names.

import (
	"github.com/dchest/webfilters/filewriter"
	"github.com/dchest/webfilters/filters"
	"github.com/dchest/webfilters/pipeline"
)

func init() {
	for _, method := range []string{"gzip", "brotli"} {
		method := method
		Register(method, func(filters.Options) (pipeline.Filter, error) {
			f, err := NewCompressFilter(method)
			if err != nil {
				return nil, err
			}
			return f, nil
		})
	}
}

type CompressFilter struct {
	c *filewriter.Compressor
}

// NewCompressFilter returns a filter compressing with the given
// method: "gzip", "br" or "brotli".
func NewCompressFilter(method string) (*CompressFilter, error) {
	c, err := filewriter.CompressorFor(method)
	if err != nil {
		return nil, err
	}
	return &CompressFilter{c: c}, nil
}

func (f *CompressFilter) Name() string { return f.c.Method }

func (f *CompressFilter) Apply(in []byte) ([]byte, error) {
	return f.c.Compress(in)
}

func (f *CompressFilter) OutputName(input string) string {
	return input + "." + f.c.Ext
}

func (f *CompressFilter) GenerateOutput(inputs []pipeline.InputFile, output pipeline.OutputFile) error {
	return filterEach(inputs, output, f, nil)
}
