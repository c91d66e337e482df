package debug

// Runtime stats logger. Started only when config.Debug is true.
// Logs goroutine count, heap and stack usage and process RSS at a fixed
// interval so image buffer growth across edits can be spotted.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// Stats is one sample of runtime and process memory.
type Stats struct {
	Goroutines uint64
	HeapAlloc  uint64
	HeapInuse  uint64
	StackInuse uint64
	NumGC      uint32
	RSS        uint64 // 0 when the platform probe is unavailable
}

// Sample reads the current stats.
func Sample() (Stats, error) {
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	st := Stats{
		HeapAlloc:  ms.HeapAlloc,
		HeapInuse:  ms.HeapInuse,
		StackInuse: ms.StackInuse,
		NumGC:      ms.NumGC,
	}
	if samples[0].Value.Kind() == metrics.KindUint64 {
		st.Goroutines = samples[0].Value.Uint64()
	}
	rss, err := residentSetSize()
	st.RSS = rss
	return st, err
}

// StartStatsLogger launches a ticker that logs Sample until ctx is done.
// RSS query failures are logged once and suppressed.
func StartStatsLogger(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		var rssErrLogged bool
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
			st, err := Sample()
			if err != nil && !rssErrLogged {
				logger.Warn("stats: rss probe failed", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			logger.Info("runtime-stats",
				slog.Uint64("goroutines", st.Goroutines),
				slog.Uint64("heap_alloc", st.HeapAlloc),
				slog.Uint64("heap_inuse", st.HeapInuse),
				slog.Uint64("stack_inuse", st.StackInuse),
				slog.Uint64("num_gc", uint64(st.NumGC)),
				slog.Uint64("rss", st.RSS),
			)
		}
	}()
}
