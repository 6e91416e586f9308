package filters

// `markdown` renders Markdown into HTML.
// Option `basic` disables the common extensions.

import (
	"github.com/russross/blackfriday"
)

func init() {
	Register("markdown", func(o Options) (Filter, error) {
		basic, err := o.Bool("basic", false)
		if err != nil {
			return nil, err
		}
		return Markdown{Basic: basic}, nil
	})
}

type Markdown struct {
	Basic bool
}

func (f Markdown) Name() string { return "markdown" }

func (f Markdown) Apply(in []byte) (out []byte, err error) {
	if f.Basic {
		return blackfriday.MarkdownBasic(in), nil
	}
	return blackfriday.MarkdownCommon(in), nil
}
