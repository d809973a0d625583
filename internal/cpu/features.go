// Package cpu reports the processor capabilities the planner consults when
// choosing a reordering strategy.
package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to strategy selection.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// HasWideVectors reports whether vector moves of 128 bits or more are
// available, which makes the table-driven reorder profitable earlier.
func (f Features) HasWideVectors() bool {
	return f.HasAVX2 || f.HasAVX512 || f.HasNEON
}
