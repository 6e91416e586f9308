package webfilters

// `markdown` renders .md and .markdown files into .html.

import (
	"github.com/dchest/webfilters/filters"
	"github.com/dchest/webfilters/pipeline"
	"github.com/dchest/webfilters/utils"
)

func init() {
	Register("markdown", func(o filters.Options) (pipeline.Filter, error) {
		return NewMarkdownFilter(o), nil
	})
}

var markdownExtensions = []string{".md", ".markdown"}

type MarkdownFilter struct {
	options filters.Options
}

func NewMarkdownFilter(options filters.Options) *MarkdownFilter {
	return &MarkdownFilter{options: options}
}

func (f *MarkdownFilter) OutputName(input string) string {
	for _, ext := range markdownExtensions {
		if out := utils.ReplaceSuffix(input, ext, ".html"); out != input {
			return out
		}
	}
	return input
}

func (f *MarkdownFilter) GenerateOutput(inputs []pipeline.InputFile, output pipeline.OutputFile) error {
	c, err := filters.Make("markdown", f.options)
	if err != nil {
		return err
	}
	return filterEach(inputs, output, c, nil)
}

func (f *MarkdownFilter) ExternalDependencies() []string {
	return []string{"markdown"}
}
