// Copyright 2013 Dmitry Chestnykh. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filters implements text filtering.
//
// Filters are the compressors and converters which pipeline stages
// delegate to. Each filter is registered under a name and created
// with an Options map.
package filters

import (
	"fmt"
	"sort"
	"sync"
)

// Filter is an interface declaring a filter.
type Filter interface {
	Name() string
	Apply([]byte) ([]byte, error)
}

// Maker is a type of function which accepts options
// for filter and returns a new instance of the filter.
type Maker func(Options) (Filter, error)

// UnknownError is returned by Make for names that weren't registered.
type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("filter %s not found", e.Name)
}

var (
	mu sync.RWMutex
	// makers stores builtin filter makers addressed by their names.
	makers = make(map[string]Maker)
)

// Register registers a new filter maker.
func Register(name string, maker Maker) {
	mu.Lock()
	defer mu.Unlock()
	makers[name] = maker
}

// Registered returns true if there is a filter maker with the given name.
func Registered(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := makers[name]
	return ok
}

// Names returns sorted names of all registered filters.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(makers))
	for k := range makers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Make creates a new filter by name with the given options.
func Make(name string, options Options) (Filter, error) {
	mu.RLock()
	maker := makers[name]
	mu.RUnlock()
	if maker == nil {
		return nil, &UnknownError{Name: name}
	}
	if options == nil {
		options = Options{}
	}
	return maker(options)
}
