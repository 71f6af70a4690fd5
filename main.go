package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mlindgren/taskstat/internal/model"
	"github.com/mlindgren/taskstat/internal/platform"
	"github.com/mlindgren/taskstat/internal/store"
)

func main() {
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	interval := flag.Duration("interval", 0, "sample repeatedly at this interval; 0 takes a single sample")
	count := flag.Int("count", 0, "stop after this many samples; 0 runs until interrupted")
	dbPath := flag.String("db", "", "record samples to this SQLite database")
	flag.Parse()

	var st *store.Store
	if *dbPath != "" {
		var err error
		st, err = store.Open(*dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer st.Close()
	}

	w := newTableWriter(*jsonFlag)

	if *interval <= 0 {
		if err := sampleOnce(st, w, *jsonFlag); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	taken := 0
	for {
		if err := sampleOnce(st, w, *jsonFlag); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		taken++
		if *count > 0 && taken >= *count {
			return
		}

		select {
		case <-ticker.C:
		case <-sig:
			return
		}
	}
}

// sampleOnce takes one sample, records it if a store is open, and
// prints it.
func sampleOnce(st *store.Store, w *tabwriter.Writer, jsonOut bool) error {
	stats, err := platform.P.MemStats()
	if err != nil {
		return err
	}

	if st != nil {
		if err := st.Record(stats); err != nil {
			return err
		}
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(stats)
	}

	printRow(w, stats)
	return w.Flush()
}

// newTableWriter returns a tabwriter with the header already written.
// In JSON mode no header is wanted; the writer goes unused.
func newTableWriter(jsonOut bool) *tabwriter.Writer {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if !jsonOut {
		fmt.Fprintln(w, "TIME\tPID\tVSZ\tRSS\tCPU\tFDS")
	}
	return w
}

func printRow(w *tabwriter.Writer, s model.MemStats) {
	fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%.2fs\t%d/%d\n",
		s.Timestamp.Format("15:04:05"), s.PID,
		humanize.IBytes(s.VirtualBytes), humanize.IBytes(s.ResidentBytes),
		s.CPUSeconds, s.OpenFDs, s.MaxFDs)
}
