// Package host captures a point-in-time snapshot of the machine a
// training run executed on, recorded with the run metadata.
package host

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Snapshot describes host load at a moment in time.
type Snapshot struct {
	CPUPercent       float64 `json:"cpu_percent"`
	MemoryPercent    float64 `json:"memory_percent"`
	MemoryTotalBytes uint64  `json:"memory_total_bytes"`
}

// Capture reads current CPU and memory utilization. Collection errors
// yield a zero snapshot rather than failing the training run.
func Capture() Snapshot {
	var snap Snapshot

	if percentages, err := cpu.Percent(0, false); err == nil && len(percentages) > 0 {
		snap.CPUPercent = percentages[0]
	}

	if v, err := mem.VirtualMemory(); err == nil {
		snap.MemoryPercent = v.UsedPercent
		snap.MemoryTotalBytes = v.Total
	}

	return snap
}
