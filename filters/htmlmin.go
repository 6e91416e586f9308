package filters

import (
	"github.com/dchest/htmlmin"
)

// `htmlmin` is a primitive not-so-correct HTML minimizer filter.
// Options `minify_scripts` and `minify_styles` also minify inline
// scripts and styles, `unquote_attrs` removes attribute quotes where
// possible.

func init() {
	Register("htmlmin", func(o Options) (Filter, error) {
		var (
			f   HTMLMin
			err error
		)
		if f.opts.MinifyScripts, err = o.Bool("minify_scripts", false); err != nil {
			return nil, err
		}
		if f.opts.MinifyStyles, err = o.Bool("minify_styles", false); err != nil {
			return nil, err
		}
		if f.opts.UnquoteAttrs, err = o.Bool("unquote_attrs", false); err != nil {
			return nil, err
		}
		return &f, nil
	})
}

type HTMLMin struct {
	opts htmlmin.Options
}

func (f *HTMLMin) Name() string { return "htmlmin" }

func (f *HTMLMin) Apply(in []byte) (out []byte, err error) {
	return htmlmin.Minify(in, &f.opts)
}
