package webfilters

// `js_minify` compresses JavaScript files.

import (
	"strings"

	"github.com/dchest/webfilters/filters"
	"github.com/dchest/webfilters/pipeline"
	"github.com/dchest/webfilters/utils"
)

func init() {
	Register("js_minify", func(o filters.Options) (pipeline.Filter, error) {
		return NewJSMinifyFilter(o, nil), nil
	})
}

const jsCompressor = "jsmin"

// JSMinifyFilter compresses JavaScript input files. Files with
// "min.js" in their path are copied unchanged.
type JSMinifyFilter struct {
	options filters.Options
	name    pipeline.NameFunc
}

// NewJSMinifyFilter returns a new filter. If name is nil,
// MinifiedJSName is used.
func NewJSMinifyFilter(options filters.Options, name pipeline.NameFunc) *JSMinifyFilter {
	if options == nil {
		options = filters.Options{}
	}
	if name == nil {
		name = MinifiedJSName
	}
	return &JSMinifyFilter{options: options, name: name}
}

// MinifiedJSName returns input unchanged if it ends with "min.js",
// otherwise replaces ".js" ending with ".min.js".
func MinifiedJSName(input string) string {
	if strings.HasSuffix(input, "min.js") {
		return input
	}
	return utils.ReplaceSuffix(input, ".js", ".min.js")
}

func (f *JSMinifyFilter) OutputName(input string) string {
	return f.name(input)
}

func (f *JSMinifyFilter) GenerateOutput(inputs []pipeline.InputFile, output pipeline.OutputFile) error {
	c, err := filters.Make(jsCompressor, f.options)
	if err != nil {
		return err
	}
	return filterEach(inputs, output, c, containing("min.js"))
}

func (f *JSMinifyFilter) ExternalDependencies() []string {
	return []string{jsCompressor}
}
