package platform

import "github.com/mlindgren/taskstat/internal/model"

// Platform abstracts OS-specific self-inspection of the running process.
type Platform interface {
	// MemStats returns a snapshot of the current process's memory and
	// resource usage.
	MemStats() (model.MemStats, error)
}

// P is the platform-specific implementation, initialised by an init() in
// the platform_linux.go or platform_darwin.go file.
var P Platform
