package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// cpuFeature is one named CPU capability.
type cpuFeature struct {
	name string
	has  bool
}

// cpuFeatures lists the SIMD features relevant to pixel loops on the
// running architecture.
func cpuFeatures() []cpuFeature {
	switch runtime.GOARCH {
	case "amd64", "386":
		return []cpuFeature{
			{"sse2", cpu.X86.HasSSE2},
			{"sse41", cpu.X86.HasSSE41},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		return []cpuFeature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"fphp", cpu.ARM64.HasFPHP},
			{"sve", cpu.ARM64.HasSVE},
		}
	}
	return nil
}

// cpuSummary returns the supported features as a comma separated list.
func cpuSummary() string {
	var names []string
	for _, f := range cpuFeatures() {
		if f.has {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return runtime.GOARCH
	}
	return runtime.GOARCH + ":" + strings.Join(names, ",")
}

func printCPU(w io.Writer) {
	fmt.Fprintf(w, "arch:    %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "cpus:    %d (GOMAXPROCS %d)\n", runtime.NumCPU(), runtime.GOMAXPROCS(0))
	for _, f := range cpuFeatures() {
		fmt.Fprintf(w, "%-8s %v\n", f.name+":", f.has)
	}
}
