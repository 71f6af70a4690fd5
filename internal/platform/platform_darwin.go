//go:build darwin

package platform

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/mlindgren/taskstat/internal/mach"
	"github.com/mlindgren/taskstat/internal/model"
)

// Compile-time interface check.
var _ Platform = (*darwinPlatform)(nil)

type darwinPlatform struct{}

func init() { P = &darwinPlatform{} }

// MemStats reads memory sizes from the Mach task APIs and the remaining
// resource figures from the BSD layer.
func (d *darwinPlatform) MemStats() (model.MemStats, error) {
	mem, err := mach.TaskMemory()
	if err != nil {
		return model.MemStats{}, fmt.Errorf("task memory: %w", err)
	}

	stats := model.MemStats{
		Timestamp:     time.Now(),
		PID:           os.Getpid(),
		VirtualBytes:  mem.VirtualBytes,
		ResidentBytes: mem.ResidentBytes,
	}

	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err == nil {
		stats.CPUSeconds = timevalSeconds(ru.Utime) + timevalSeconds(ru.Stime)
	}

	var lim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &lim); err == nil {
		stats.MaxFDs = lim.Cur
	}

	// One entry per open descriptor; there is no procfs on darwin.
	if entries, err := os.ReadDir("/dev/fd"); err == nil {
		stats.OpenFDs = uint64(len(entries))
	}

	return stats, nil
}

func timevalSeconds(tv unix.Timeval) float64 {
	return float64(tv.Sec) + float64(tv.Usec)/1e6
}
