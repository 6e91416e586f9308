package webfilters

// `css_minify` compresses CSS files.

import (
	"strings"

	"github.com/dchest/webfilters/filters"
	"github.com/dchest/webfilters/pipeline"
	"github.com/dchest/webfilters/utils"
)

func init() {
	Register("css_minify", func(o filters.Options) (pipeline.Filter, error) {
		return NewCSSMinifyFilter(o, nil), nil
	})
}

// cssCompressor is the name of the text filter doing the compression.
const cssCompressor = "css"

// CSSMinifyFilter compresses CSS input files into a single output.
// Files with "min.css" in their path are considered already minified
// and are copied unchanged.
type CSSMinifyFilter struct {
	options filters.Options
	name    pipeline.NameFunc

	makeCompressor filters.Maker
}

// NewCSSMinifyFilter returns a new filter. Options are passed to the
// compressor on every run. If name is nil, MinifiedCSSName is used.
func NewCSSMinifyFilter(options filters.Options, name pipeline.NameFunc) *CSSMinifyFilter {
	if options == nil {
		options = filters.Options{}
	}
	if name == nil {
		name = MinifiedCSSName
	}
	return &CSSMinifyFilter{
		options: options,
		name:    name,
		makeCompressor: func(o filters.Options) (filters.Filter, error) {
			return filters.Make(cssCompressor, o)
		},
	}
}

// MinifiedCSSName returns input unchanged if it ends with "min.css",
// otherwise replaces ".css" ending with ".min.css".
func MinifiedCSSName(input string) string {
	if strings.HasSuffix(input, "min.css") {
		return input
	}
	return utils.ReplaceSuffix(input, ".css", ".min.css")
}

// Options returns options passed to the compressor.
func (f *CSSMinifyFilter) Options() filters.Options { return f.options }

func (f *CSSMinifyFilter) OutputName(input string) string {
	return f.name(input)
}

func (f *CSSMinifyFilter) GenerateOutput(inputs []pipeline.InputFile, output pipeline.OutputFile) error {
	c, err := f.makeCompressor(f.options)
	if err != nil {
		return err
	}
	return filterEach(inputs, output, c, containing("min.css"))
}

func (f *CSSMinifyFilter) ExternalDependencies() []string {
	return []string{cssCompressor}
}
