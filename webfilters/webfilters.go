// Package webfilters implements pipeline stages for web assets:
// CSS and JavaScript minification, Markdown rendering, concatenation
// and precompression.
package webfilters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dchest/webfilters/filters"
	"github.com/dchest/webfilters/pipeline"
)

// StageMaker creates a stage from options.
type StageMaker func(filters.Options) (pipeline.Filter, error)

var makers = make(map[string]StageMaker)

// Register registers a new stage maker. It is not safe to call
// concurrently with Make; call it from init.
func Register(name string, maker StageMaker) {
	makers[name] = maker
}

// Make creates a new stage by name with the given options.
func Make(name string, options filters.Options) (pipeline.Filter, error) {
	maker := makers[name]
	if maker == nil {
		return nil, fmt.Errorf("stage %s not found", name)
	}
	if options == nil {
		options = filters.Options{}
	}
	return maker(options)
}

// Names returns sorted names of registered stages.
func Names() []string {
	names := make([]string, 0, len(makers))
	for k := range makers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// filterEach writes inputs to output in order, passing each through c
// unless skip returns true for its path. A nil skip passes every input.
func filterEach(inputs []pipeline.InputFile, output pipeline.OutputFile, c filters.Filter, skip func(string) bool) error {
	for _, in := range inputs {
		data, err := in.Read()
		if err != nil {
			return err
		}
		if skip == nil || !skip(in.Path()) {
			data, err = c.Apply(data)
			if err != nil {
				return err
			}
		}
		if err := output.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// containing returns a function reporting whether a path contains s.
func containing(s string) func(string) bool {
	return func(path string) bool { return strings.Contains(path, s) }
}
