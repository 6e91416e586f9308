// Package pipeline implements a minimal asset pipeline host:
// file handles, the stage interfaces and a sequential stage runner.
package pipeline

// Filter is a pipeline stage. GenerateOutput reads the inputs in order
// and writes the result into output.
type Filter interface {
	GenerateOutput(inputs []InputFile, output OutputFile) error
}

// OutputNamer is implemented by filters which map input paths
// to output paths. Inputs with the same output path are given
// to a single GenerateOutput call.
type OutputNamer interface {
	OutputName(input string) string
}

// DependencyDeclarer is implemented by filters which require
// external capabilities to be available before the build.
type DependencyDeclarer interface {
	ExternalDependencies() []string
}

// NameFunc maps an input logical path to an output logical path.
type NameFunc func(input string) string
