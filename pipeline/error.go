package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPathCollision is returned when a stage output has the same path
// as a file which the stage didn't match.
var ErrPathCollision = errors.New("output path is taken by an unmatched file")

// Error is a stage failure.
type Error struct {
	Stage string
	Path  string
	Err   error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s]: %s", e.Stage, e.Err)
	}
	return fmt.Sprintf("[%s@%s]: %s", e.Stage, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// MissingDependencyError is returned when filters declare external
// dependencies which are not available.
type MissingDependencyError struct {
	Names []string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("missing external dependencies: %s", strings.Join(e.Names, ", "))
}

// CheckDependencies checks that every dependency declared by the
// given filters is available.
func CheckDependencies(available func(name string) bool, filters ...Filter) error {
	var missing []string
	seen := make(map[string]bool)
	for _, f := range filters {
		d, ok := f.(DependencyDeclarer)
		if !ok {
			continue
		}
		for _, name := range d.ExternalDependencies() {
			if seen[name] {
				continue
			}
			seen[name] = true
			if !available(name) {
				missing = append(missing, name)
			}
		}
	}
	if len(missing) > 0 {
		return &MissingDependencyError{Names: missing}
	}
	return nil
}
