// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package wrkdump defines the logic for the "wrkdump" tool.
//
// wrkdump reads a Serpent restart file, prints a summary of its burnup
// steps, and can dump a single material in full. With --set-adens and --out
// it overrides that material's atomic density in every step and writes the
// modified snapshot collection to a new file, which is convenient for
// constructing perturbed restart points.
package wrkdump

import (
	"fmt"
	"log"
	"os"

	"github.com/yvrob/serpentwrk/restart"

	"github.com/spf13/pflag"
)

var (
	prefix = pflag.String("prefix", "",
		"Name of the divided parent material.")
	materialName = pflag.String("material", "",
		"Dump this material from each step.")
	setADens = pflag.Float64("set-adens", 0,
		"Override the dumped material's atomic density (at/b.cm).")
	out = pflag.String("out", "",
		"Write the (possibly modified) snapshots to this file.")

	compression = restart.CompressionFlag(restart.CompressionNone)
)

// Main is the main entry point.
func Main() {
	pflag.Var(&compression, "compression",
		fmt.Sprintf("Stream compression, one of: %s.", restart.CompressionFlagValues()))
	pflag.Parse()

	if pflag.NArg() != 1 || *prefix == "" {
		fmt.Fprintln(os.Stderr, "usage: wrkdump --prefix <name> [options] <restart file>")
		pflag.PrintDefaults()
		os.Exit(2)
	}
	path := pflag.Arg(0)

	cfg := restart.Config{Compression: compression.Value()}
	snap, err := cfg.Decode(path, *prefix)
	if err != nil {
		log.Fatalf("Couldn't read restart file: %s", err)
	}

	for _, step := range snap.Steps() {
		fmt.Printf("Step %d: BU %.3f MWd/kg, %d materials\n",
			step.Index, step.Burnup, step.Len())
		if *materialName == "" {
			continue
		}

		m, ok := step.Get(*materialName)
		if !ok {
			log.Printf("Step %d has no material %q", step.Index, *materialName)
			continue
		}
		if pflag.CommandLine.Changed("set-adens") {
			m.AtomicDensity = *setADens
		}
		fmt.Print(m)
	}

	if *out == "" {
		return
	}
	if err := cfg.Encode(*out, snap); err != nil {
		log.Fatalf("Couldn't write restart file: %s", err)
	}
	log.Printf("Wrote %s", *out)
}
