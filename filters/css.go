package filters

// `css` minifies CSS with a configurable minifier.
//
// Options:
//   precision  number of significant digits kept in numbers (0 keeps all)
//   inline     input is the content of a style attribute
//   keep_css2  don't use CSS3 shorthands

import (
	"bytes"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
)

func init() {
	Register("css", func(o Options) (Filter, error) {
		f := &CSS{m: minify.New()}
		var err error
		if f.min.Precision, err = o.Int("precision", 0); err != nil {
			return nil, err
		}
		if f.inline, err = o.Bool("inline", false); err != nil {
			return nil, err
		}
		if f.min.KeepCSS2, err = o.Bool("keep_css2", false); err != nil {
			return nil, err
		}
		return f, nil
	})
}

type CSS struct {
	m      *minify.M
	min    css.Minifier
	inline bool
}

func (f *CSS) Name() string { return "css" }

func (f *CSS) Apply(in []byte) (out []byte, err error) {
	var buf bytes.Buffer
	buf.Grow(len(in))
	var params map[string]string
	if f.inline {
		params = map[string]string{"inline": "1"}
	}
	if err := f.min.Minify(f.m, &buf, bytes.NewReader(in), params); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
