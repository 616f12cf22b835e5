package monitor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewMonitor(t *testing.T) {
	assert.NotNil(t, NewMonitor())
}

func Test_Self(t *testing.T) {
	m := NewMonitor()

	stats, err := m.Self(context.Background())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.CPU, 0.0)
	assert.Greater(t, stats.MEM, 0.0)
}

func Test_Self_ReusesProcessHandle(t *testing.T) {
	m := NewMonitor().(*monitor)

	_, err := m.Self(context.Background())
	require.NoError(t, err)

	first := m.proc
	require.NotNil(t, first)

	_, err = m.Self(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, m.proc)
}

func Test_Self_OutOfRangePID(t *testing.T) {
	for _, pid := range []int{0, -1} {
		stats, err := newMonitor(pid).Self(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, Stats{}, stats)
	}
}

func Test_Self_MissingProcess(t *testing.T) {
	_, err := newMonitor(999999999).Self(context.Background())

	assert.Error(t, err)
}
