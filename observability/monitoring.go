package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// PortalStats is the snapshot served to operators.
type PortalStats struct {
	Requests       uint64  `json:"requests"`
	Diagnoses      uint64  `json:"diagnoses"`
	Feedbacks      uint64  `json:"feedbacks"`
	AuthFailures   uint64  `json:"auth_failures"`
	ActiveSessions int     `json:"active_sessions"`
	AllocMemMb     uint64  `json:"alloc_mem_mb"`
	RSSBytes       uint64  `json:"rss_bytes"`
	CPUPercent     float64 `json:"cpu_percent"`
	NumGC          uint32  `json:"num_gc"`
	Uptime         string  `json:"uptime"`
}

// Monitor aggregates portal telemetry. Counters are atomic; the process
// probe is lazily created and reused across snapshots.
type Monitor struct {
	log     *slog.Logger
	started time.Time
	proc    *process.Process

	requests     uint64
	diagnoses    uint64
	feedbacks    uint64
	authFailures uint64
}

func NewMonitor(log *slog.Logger) *Monitor {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Self process probe unavailable", "error", err)
	}
	return &Monitor{log: log, started: time.Now(), proc: p}
}

func (m *Monitor) IncrRequests()     { atomic.AddUint64(&m.requests, 1) }
func (m *Monitor) IncrDiagnoses()    { atomic.AddUint64(&m.diagnoses, 1) }
func (m *Monitor) IncrFeedbacks()    { atomic.AddUint64(&m.feedbacks, 1) }
func (m *Monitor) IncrAuthFailures() { atomic.AddUint64(&m.authFailures, 1) }

// Snapshot collects current counters plus Go runtime and OS-level process
// metrics (RSS and CPU via gopsutil).
func (m *Monitor) Snapshot(activeSessions int) PortalStats {
	stats := PortalStats{
		Requests:       atomic.LoadUint64(&m.requests),
		Diagnoses:      atomic.LoadUint64(&m.diagnoses),
		Feedbacks:      atomic.LoadUint64(&m.feedbacks),
		AuthFailures:   atomic.LoadUint64(&m.authFailures),
		ActiveSessions: activeSessions,
		Uptime:         time.Since(m.started).Round(time.Second).String(),
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	stats.AllocMemMb = ms.Alloc / 1024 / 1024
	stats.NumGC = ms.NumGC

	if m.proc != nil {
		if memInfo, err := m.proc.MemoryInfo(); err == nil {
			stats.RSSBytes = memInfo.RSS
		}
		if cpu, err := m.proc.CPUPercent(); err == nil {
			stats.CPUPercent = cpu
		}
	}

	return stats
}
