package webfilters

// `apply` passes each file through a registered text filter,
// keeping its name. Option `filter` names the text filter, other
// options are given to it.

import (
	"errors"

	"github.com/dchest/webfilters/filters"
	"github.com/dchest/webfilters/pipeline"
)

func init() {
	Register("apply", func(o filters.Options) (pipeline.Filter, error) {
		name, err := o.String("filter", "")
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, errors.New("apply: missing filter")
		}
		rest := make(filters.Options, len(o))
		for k, v := range o {
			if k != "filter" {
				rest[k] = v
			}
		}
		return NewTextFilter(name, rest), nil
	})
}

// TextFilter applies a text filter to every file.
type TextFilter struct {
	Filter  string
	Options filters.Options
}

func NewTextFilter(filter string, options filters.Options) *TextFilter {
	return &TextFilter{Filter: filter, Options: options}
}

func (f *TextFilter) OutputName(input string) string { return input }

func (f *TextFilter) GenerateOutput(inputs []pipeline.InputFile, output pipeline.OutputFile) error {
	c, err := filters.Make(f.Filter, f.Options)
	if err != nil {
		return err
	}
	return filterEach(inputs, output, c, nil)
}

func (f *TextFilter) ExternalDependencies() []string {
	return []string{f.Filter}
}
