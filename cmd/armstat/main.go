// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Command armstat runs a raw ARMv4 binary image against the interpreter
// core, free-running in batches, while serving a live statsview dashboard
// of the host process (goroutines, memory, GC) alongside core throughput.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/arm4/hardware/cpu"
	"github.com/jetsetilly/arm4/hardware/cpu/mmu"
	"github.com/jetsetilly/arm4/logger"
)

const (
	defaultRAMSize  = 1 << 20
	defaultLoadAddr = 0x00000000
	defaultBatch    = 100000
)

func main() {
	addr := flag.String("listen", "localhost:18066", "statsview dashboard address")
	ramSize := flag.Uint("ram", defaultRAMSize, "flat RAM size in bytes")
	loadAddr := flag.Uint("load", defaultLoadAddr, "address at which the image is loaded")
	batch := flag.Uint64("batch", defaultBatch, "instructions per Execute() call")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: armstat [flags] <raw-binary-image>")
		os.Exit(1)
	}

	image, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if uint(*loadAddr)+uint(len(image)) > *ramSize {
		fmt.Fprintln(os.Stderr, "armstat: image does not fit in RAM")
		os.Exit(1)
	}

	mem := mmu.NewFlatRAM(uint32(*ramSize))
	mem.Load(uint32(*loadAddr), image)

	core := cpu.New(mem)
	core.HWReset()

	viewer.SetConfiguration(viewer.WithAddr(*addr))
	go statsview.New().Start()

	logger.Logf("armstat", "dashboard listening on http://%s/debug/statsview", *addr)

	// the core never halts itself (there is no halt instruction in this
	// ISA), so armstat just free-runs in batches, reporting throughput,
	// until the process is killed.
	start := time.Now()
	var total uint64
	for {
		total += core.Execute(*batch)
		elapsed := time.Since(start).Seconds()
		logger.Logf("armstat", "%d instructions executed (%.0f/s)", total, float64(total)/elapsed)
	}
}
