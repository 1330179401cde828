//go:build !no_pprof
// +build !no_pprof

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"fortio.org/log"
)

var (
	cpuProfile = flag.String("profile-cpu", "", "write cpu profile of the history scan to `file`")
	memProfile = flag.String("profile-mem", "", "write memory profile after the history scan to `file`")
)

func init() {
	profile = startProfile
}

// startProfile returns the function writing out the profiles.
func startProfile() (func(), error) {
	var cpu *os.File
	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			return nil, fmt.Errorf("can't open file for cpu profile: %w", err)
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return nil, fmt.Errorf("can't start cpu profile: %w", err)
		}
		log.Infof("Writing cpu profile to %s", *cpuProfile)
		cpu = f
	}
	return func() {
		if cpu != nil {
			pprof.StopCPUProfile()
			cpu.Close()
		}
		if *memProfile == "" {
			return
		}
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Errf("can't open file for mem profile: %v", err)
			return
		}
		defer f.Close()
		if err = pprof.WriteHeapProfile(f); err != nil {
			log.Errf("can't write mem profile: %v", err)
			return
		}
		log.Infof("Wrote memory profile to %s", *memProfile)
	}, nil
}
