package webfilters

// `concat` joins all matched files into a single file.
//
// Options: `output` (required) is the output path,
// `separator` is written between files.

import (
	"errors"

	"github.com/dchest/webfilters/filters"
	"github.com/dchest/webfilters/pipeline"
)

func init() {
	Register("concat", func(o filters.Options) (pipeline.Filter, error) {
		output, err := o.String("output", "")
		if err != nil {
			return nil, err
		}
		if output == "" {
			return nil, errors.New("concat: missing output")
		}
		sep, err := o.String("separator", "")
		if err != nil {
			return nil, err
		}
		return &ConcatFilter{Output: output, Separator: sep}, nil
	})
}

type ConcatFilter struct {
	Output    string
	Separator string
}

func (f *ConcatFilter) OutputName(string) string { return f.Output }

func (f *ConcatFilter) GenerateOutput(inputs []pipeline.InputFile, output pipeline.OutputFile) error {
	sep := []byte(f.Separator)
	for i, in := range inputs {
		b, err := in.Read()
		if err != nil {
			return err
		}
		if err := output.Write(b); err != nil {
			return err
		}
		if len(sep) > 0 && i != len(inputs)-1 {
			if err := output.Write(sep); err != nil {
				return err
			}
		}
	}
	return nil
}
