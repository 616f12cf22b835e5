//go:generate mockgen -source=monitor.go -destination=monitor_mock.go -package=monitor
package monitor

import (
	"context"
	"math"
	"os"
	"sync"

	"github.com/shirou/gopsutil/v4/process"
)

// Stats is one sample of this process's resource use
type Stats struct {
	CPU float64 // percent since the previous sample
	MEM float64 // resident set in MB
}

// Monitor samples the running process for the status line
type Monitor interface {
	Self(ctx context.Context) (Stats, error)
}

type monitor struct {
	pid  int
	mu   sync.Mutex
	proc *process.Process
}

// NewMonitor creates a Monitor for the current process
func NewMonitor() Monitor {
	return newMonitor(os.Getpid())
}

func newMonitor(pid int) *monitor {
	return &monitor{pid: pid}
}

// Self takes a sample, the first CPU reading is zero
func (m *monitor) Self(ctx context.Context) (Stats, error) {
	proc, err := m.handle(ctx)
	if err != nil || proc == nil {
		return Stats{}, err
	}

	var stats Stats

	if cpu, err := proc.PercentWithContext(ctx, 0); err == nil {
		stats.CPU = cpu
	}

	if mem, err := proc.MemoryInfoWithContext(ctx); err == nil {
		stats.MEM = float64(mem.RSS) / 1024 / 1024
	}

	return stats, nil
}

func (m *monitor) handle(ctx context.Context) (*process.Process, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.proc != nil {
		return m.proc, nil
	}

	if m.pid <= 0 || m.pid > math.MaxInt32 {
		return nil, nil
	}

	proc, err := process.NewProcessWithContext(ctx, int32(m.pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return nil, err
	}

	m.proc = proc

	return proc, nil
}
