//go:build linux

package platform

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"github.com/mlindgren/taskstat/internal/model"
)

// Compile-time interface check.
var _ Platform = (*linuxPlatform)(nil)

type linuxPlatform struct{}

func init() { P = &linuxPlatform{} }

// MemStats reads memory sizes from /proc/self/statm and the remaining
// resource figures from getrusage, getrlimit, and /proc/self/fd.
func (l *linuxPlatform) MemStats() (model.MemStats, error) {
	data, err := os.ReadFile("/proc/self/statm")
	if err != nil {
		return model.MemStats{}, fmt.Errorf("read statm: %w", err)
	}

	vsizePages, rssPages, err := parseStatm(string(data))
	if err != nil {
		return model.MemStats{}, err
	}

	pageSize := uint64(os.Getpagesize())
	stats := model.MemStats{
		Timestamp:     time.Now(),
		PID:           os.Getpid(),
		VirtualBytes:  vsizePages * pageSize,
		ResidentBytes: rssPages * pageSize,
	}

	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err == nil {
		stats.CPUSeconds = timevalSeconds(ru.Utime) + timevalSeconds(ru.Stime)
	}

	var lim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &lim); err == nil {
		stats.MaxFDs = lim.Cur
	}

	if entries, err := os.ReadDir("/proc/self/fd"); err == nil {
		stats.OpenFDs = uint64(len(entries))
	}

	return stats, nil
}

// parseStatm extracts the virtual size and resident set size, in pages,
// from the contents of /proc/{pid}/statm. The file is a single line of
// space-separated counters; the first two are size and resident.
func parseStatm(data string) (vsizePages, rssPages uint64, err error) {
	fields := strings.Fields(data)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("malformed statm: %q", data)
	}

	vsizePages, err = strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed statm size %q: %w", fields[0], err)
	}

	rssPages, err = strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed statm resident %q: %w", fields[1], err)
	}

	return vsizePages, rssPages, nil
}

func timevalSeconds(tv unix.Timeval) float64 {
	return float64(tv.Sec) + float64(tv.Usec)/1e6
}
