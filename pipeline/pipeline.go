package pipeline

import (
	"log"
	"path"
	"strings"

	"github.com/dchest/webfilters/utils"
)

// Stage is a filter applied to files matching a glob.
type Stage struct {
	Name   string
	Match  string
	Filter Filter
}

// Matches reports whether the stage accepts the file with the given
// logical path. Patterns without a slash are matched against the
// base name of the path.
func (s *Stage) Matches(name string) bool {
	if s.Match == "" {
		return true
	}
	if !strings.Contains(s.Match, "/") {
		name = path.Base(name)
	}
	ok, _ := path.Match(s.Match, name)
	return ok
}

func (s *Stage) outputName(input string) string {
	if n, ok := s.Filter.(OutputNamer); ok {
		return n.OutputName(input)
	}
	return input
}

// Pipeline is a sequence of stages.
type Pipeline struct {
	stages    []*Stage
	available func(string) bool
}

// New returns an empty pipeline. The available function is used to
// check external dependencies declared by stages.
func New(available func(name string) bool) *Pipeline {
	return &Pipeline{available: available}
}

// Add appends a stage to the pipeline.
func (p *Pipeline) Add(name, match string, f Filter) *Pipeline {
	p.stages = append(p.stages, &Stage{Name: name, Match: match, Filter: f})
	return p
}

// Stages returns stages in the order they run.
func (p *Pipeline) Stages() []*Stage {
	return p.stages
}

// Check verifies that dependencies of all stages are available.
func (p *Pipeline) Check() error {
	if p.available == nil {
		return nil
	}
	filters := make([]Filter, len(p.stages))
	for i, s := range p.stages {
		filters[i] = s.Filter
	}
	return CheckDependencies(p.available, filters...)
}

type job struct {
	stage  *Stage
	inputs []InputFile
	output *MemoryFile
}

func (j *job) run() error {
	if err := j.stage.Filter.GenerateOutput(j.inputs, j.output); err != nil {
		return &Error{Stage: j.stage.Name, Path: j.output.Path(), Err: err}
	}
	log.Printf("F %s → %s", j.stage.Name, j.output.Path())
	return nil
}

// plan groups files matched by the stage by their output names.
// The returned list contains unmatched files and outputs in the
// order of their first appearance. It fails if an output would
// have the same path as an unmatched file.
func (s *Stage) plan(files []InputFile) (next []InputFile, jobs []*job, err error) {
	byName := make(map[string]*job)
	passed := make(map[string]bool)
	for _, f := range files {
		if !s.Matches(f.Path()) {
			next = append(next, f)
			passed[f.Path()] = true
			continue
		}
		name := s.outputName(f.Path())
		j := byName[name]
		if j == nil {
			j = &job{stage: s, output: NewMemoryFile(name, nil)}
			byName[name] = j
			jobs = append(jobs, j)
			next = append(next, j.output)
		}
		j.inputs = append(j.inputs, f)
	}
	for _, j := range jobs {
		if passed[j.output.Path()] {
			return nil, nil, &Error{Stage: s.Name, Path: j.output.Path(), Err: ErrPathCollision}
		}
	}
	return next, jobs, nil
}

// Run checks dependencies and passes files through all stages.
// Each stage's outputs replace its inputs for the following stages.
func (p *Pipeline) Run(files []InputFile) ([]InputFile, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	for _, s := range p.stages {
		next, jobs, err := s.plan(files)
		if err != nil {
			return nil, err
		}
		if len(jobs) > 0 {
			pool := utils.NewPool(func(v interface{}) error {
				return v.(*job).run()
			})
			for _, j := range jobs {
				pool.Add(j)
			}
			if err := pool.Err(); err != nil {
				return nil, err
			}
		}
		files = next
	}
	return files, nil
}
