// Copyright 2013 Dmitry Chestnykh. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package utils contains utility functions.
package utils

import (
	"io/ioutil"
	"runtime"
	"strings"
	"sync"

	"gopkg.in/yaml.v1"
)

// UnmarshallYAMLFile reads YAML file and unmarshalls it into data.
func UnmarshallYAMLFile(filename string, data interface{}) error {
	b, err := ioutil.ReadFile(filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, data)
}

// ReplaceSuffix replaces the trailing old suffix of s with new.
// If s doesn't end with old, returns s.
func ReplaceSuffix(s, old, new string) string {
	if !strings.HasSuffix(s, old) {
		return s
	}
	return s[:len(s)-len(old)] + new
}

// HasAnySuffix returns true if s ends with one of the given suffixes.
func HasAnySuffix(s string, suffixes []string) bool {
	for _, v := range suffixes {
		if strings.HasSuffix(s, v) {
			return true
		}
	}
	return false
}

// Pool is a worker pool for parallel job processing.
type Pool struct {
	sync.Mutex
	wg   sync.WaitGroup
	jobs chan interface{}
	err  error
}

// NewPool creates a new pool which calls fn for each
// added item and stores the first returned error.
func NewPool(fn func(interface{}) error) *Pool {
	parallelism := runtime.NumCPU()
	p := &Pool{
		jobs: make(chan interface{}, parallelism),
	}
	// Launch workers.
	for i := 0; i < parallelism; i++ {
		go func() {
			for j := range p.jobs {
				err := fn(j)
				if err != nil {
					p.Lock()
					if p.err == nil {
						p.err = err
					}
					p.Unlock()
				}
				p.wg.Done()
			}
		}()
	}
	return p
}

// Add adds a new job to pool. Function passed to
// NewPool will be called for each job in a worker goroutine.
//
// After finishing adding items, Err must be called on the pool
// to wait for unfinished jobs to complete and get the first error.
func (p *Pool) Add(job interface{}) {
	p.wg.Add(1)
	p.jobs <- job
}

// Err waits for all jobs to finish, stops workers and returns
// the first error. The pool can't be used after calling Err.
func (p *Pool) Err() error {
	p.wg.Wait()
	close(p.jobs)
	return p.err
}
