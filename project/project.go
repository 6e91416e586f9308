// Copyright 2013 Dmitry Chestnykh. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package project loads a pipeline definition from pipeline.yml
// and builds assets with it.
package project

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dchest/webfilters/filewriter"
	"github.com/dchest/webfilters/filters"
	"github.com/dchest/webfilters/pipeline"
	"github.com/dchest/webfilters/utils"
	"github.com/dchest/webfilters/webfilters"
)

const (
	ConfigFileName = "pipeline.yml"

	DefaultInputDir  = "assets"
	DefaultOutputDir = "public"
)

type StageConfig struct {
	Name    string                 `yaml:"name"`
	Match   string                 `yaml:"match"`
	Filter  string                 `yaml:"filter"`
	Options map[string]interface{} `yaml:"options"`
}

type Config struct {
	Input    string                     `yaml:"input"`
	Output   string                     `yaml:"output"`
	Compress *filewriter.CompressConfig `yaml:"compress"`
	Stages   []StageConfig              `yaml:"stages"`
}

func readConfig(filename string) (*Config, error) {
	var c Config
	if err := utils.UnmarshallYAMLFile(filename, &c); err != nil {
		return nil, err
	}
	// Set defaults.
	if c.Input == "" {
		c.Input = DefaultInputDir
	}
	if c.Output == "" {
		c.Output = DefaultOutputDir
	}
	for i := range c.Stages {
		if c.Stages[i].Name == "" {
			c.Stages[i].Name = c.Stages[i].Filter
		}
	}
	return &c, nil
}

type Project struct {
	BaseDir  string
	Config   *Config
	Pipeline *pipeline.Pipeline

	writer              *filewriter.FileWriter
	cleanBeforeBuilding bool
}

// Open loads the project from dir.
func Open(dir string) (*Project, error) {
	conf, err := readConfig(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return nil, err
	}
	p := &Project{
		BaseDir:  dir,
		Config:   conf,
		Pipeline: pipeline.New(filters.Registered),
	}
	for i, sc := range conf.Stages {
		f, err := webfilters.Make(sc.Filter, filters.Options(sc.Options))
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i+1, sc.Name, err)
		}
		p.Pipeline.Add(sc.Name, sc.Match, f)
	}
	p.writer, err = filewriter.New(conf.Compress)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Project) inputDir() string {
	return filepath.Join(p.BaseDir, filepath.FromSlash(p.Config.Input))
}

func (p *Project) outputDir() string {
	return filepath.Join(p.BaseDir, filepath.FromSlash(p.Config.Output))
}

// Check verifies that all external dependencies of stages are available.
func (p *Project) Check() error {
	return p.Pipeline.Check()
}

func (p *Project) write(f pipeline.InputFile) error {
	outfile := filepath.Join(p.outputDir(), filepath.FromSlash(f.Path()))
	if df, ok := f.(*pipeline.DiskFile); ok {
		log.Printf("C %s", f.Path())
		return p.writer.CopyFile(outfile, df.Filename())
	}
	data, err := f.Read()
	if err != nil {
		return err
	}
	log.Printf("W %s", f.Path())
	return p.writer.WriteFile(outfile, data)
}

// Build runs the pipeline on the input directory and writes
// the results into the output directory.
func (p *Project) Build() error {
	t := time.Now()
	defer func() {
		log.Printf("* Build in %s", time.Since(t))
	}()

	if p.cleanBeforeBuilding {
		if err := p.Clean(); err != nil {
			return err
		}
	}
	inputs, err := pipeline.ReadDir(p.inputDir())
	if err != nil {
		return err
	}
	outputs, err := p.Pipeline.Run(inputs)
	if err != nil {
		return err
	}
	pool := utils.NewPool(func(v interface{}) error {
		return p.write(v.(pipeline.InputFile))
	})
	for _, f := range outputs {
		pool.Add(f)
	}
	return pool.Err()
}

// Clean removes the output directory.
func (p *Project) Clean() error {
	log.Printf("* Cleaning.")
	return os.RemoveAll(p.outputDir())
}

func (p *Project) SetCleanBeforeBuilding(clean bool) {
	p.cleanBeforeBuilding = clean
}
