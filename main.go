// Copyright 2013 Dmitry Chestnykh. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/dchest/webfilters/filters"
	"github.com/dchest/webfilters/project"
	"github.com/dchest/webfilters/webfilters"
)

var (
	fDir        = flag.String("dir", "", "project directory (default: current directory)")
	fNoClean    = flag.Bool("noclean", false, "don't delete output directory before building")
	fCPUProfile = flag.String("cpuprofile", "", "(debug) write CPU profile to file")
)

var Usage = func() {
	fmt.Printf(`usage: webfilters command [options]

Commands:
  build    - build assets
  check    - check that external dependencies of stages are available
  clean    - remove output directory
  filters  - list available stages and text filters

Options:
`)
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	flag.Usage = Usage

	if len(os.Args) < 2 {
		flag.Usage()
		return
	}
	command := os.Args[1]
	os.Args = os.Args[1:]

	flag.Parse()

	if *fCPUProfile != "" {
		f, err := os.Create(*fCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if command == "filters" {
		fmt.Printf("Stages:  %s\n", strings.Join(webfilters.Names(), " "))
		fmt.Printf("Filters: %s\n", strings.Join(filters.Names(), " "))
		return
	}

	dir := *fDir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			log.Fatalf("! os.Getwd(): %s", err)
		}
	}
	p, err := project.Open(dir)
	if err != nil {
		log.Fatalf("! Cannot open project: %s", err)
	}
	p.SetCleanBeforeBuilding(!*fNoClean)

	switch command {
	case "build":
		if err := p.Build(); err != nil {
			log.Fatalf("! build error: %s", err)
		}
	case "check":
		if err := p.Check(); err != nil {
			log.Fatalf("! %s", err)
		}
		log.Printf("* All dependencies available.")
	case "clean":
		if err := p.Clean(); err != nil {
			log.Fatalf("! clean error: %s", err)
		}
	default:
		log.Printf("! unknown command %s", command)
		flag.Usage()
		os.Exit(2)
	}
}
