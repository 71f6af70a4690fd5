package model

import "time"

// MemStats is a point-in-time snapshot of the running process's memory
// and resource usage.
type MemStats struct {
	Timestamp     time.Time `json:"timestamp"`
	PID           int       `json:"pid"`
	VirtualBytes  uint64    `json:"virtual_bytes"`  // virtual memory size
	ResidentBytes uint64    `json:"resident_bytes"` // resident set size
	CPUSeconds    float64   `json:"cpu_seconds"`    // user + system CPU time
	OpenFDs       uint64    `json:"open_fds"`
	MaxFDs        uint64    `json:"max_fds"`
}
