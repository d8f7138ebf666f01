package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCPU_Empty(t *testing.T) {
	cpu := NewCPU(nil)

	assert.True(t, cpu.Done())
	assert.Equal(t, StateCompleted, cpu.State())
	assert.Empty(t, cpu.Timeline())
	assert.Equal(t, CpuMetric{}, cpu.Metric())
}

func TestCPU_RunSetsStartOnce(t *testing.T) {
	cpu := NewCPU([]Process{{PID: 1, ArrivalTime: 0, BurstTime: 5}})

	assert.Equal(t, 2, cpu.Run(0, 2))
	assert.Equal(t, 0, cpu.At(0).StartTime)
	assert.Equal(t, StateSelecting, cpu.State())

	assert.Equal(t, 3, cpu.Run(0, 10))
	assert.Equal(t, 0, cpu.At(0).StartTime)
	assert.Equal(t, 5, cpu.At(0).CompletionTime)
	assert.Equal(t, 0, cpu.At(0).RemainingTime)
	assert.True(t, cpu.Done())
	assert.Equal(t, StateCompleted, cpu.State())

	// Run opens a new slice every dispatch.
	assert.Equal(t, []Interval{{PID: 1, Start: 0, End: 2}, {PID: 1, Start: 2, End: 5}}, cpu.Timeline())
}

func TestCPU_ExtendContinuesSlice(t *testing.T) {
	cpu := NewCPU([]Process{{PID: 1, BurstTime: 4}, {PID: 2, BurstTime: 1}})

	assert.Equal(t, 1, cpu.Extend(0, 1))
	assert.Equal(t, 1, cpu.Extend(0, 1))
	assert.Equal(t, 1, cpu.Extend(1, 5))
	assert.Equal(t, 2, cpu.Extend(0, 9))

	assert.Equal(t, []Interval{
		{PID: 1, Start: 0, End: 2},
		{PID: 2, Start: 2, End: 3},
		{PID: 1, Start: 3, End: 5},
	}, cpu.Timeline())
	assert.Equal(t, 5, cpu.At(0).CompletionTime)
	assert.Equal(t, 3, cpu.At(1).CompletionTime)
}

func TestCPU_IdleUntil(t *testing.T) {
	cpu := NewCPU([]Process{{PID: 7, ArrivalTime: 4, BurstTime: 1}})

	assert.False(t, cpu.IsReady(0))

	cpu.IdleUntil(2)
	cpu.IdleUntil(4)
	cpu.IdleUntil(1) // never rewinds

	assert.Equal(t, 4, cpu.Clock())
	assert.True(t, cpu.IsReady(0))
	cpu.Run(0, 1)

	assert.Equal(t, []Interval{{Start: 0, End: 4, Idle: true}, {PID: 7, Start: 4, End: 5}}, cpu.Timeline())
	assert.Equal(t, CpuMetric{TotalTime: 5, BusyTime: 1, IdleTime: 4}, cpu.Metric())
	assert.Equal(t, 4, cpu.At(0).StartTime)
}

func TestCPU_RunNotReadyPanics(t *testing.T) {
	cpu := NewCPU([]Process{{PID: 1, ArrivalTime: 3, BurstTime: 1}})

	assert.Panics(t, func() { cpu.Run(0, 1) })
}

func TestCPU_StatesAreCopies(t *testing.T) {
	input := []Process{{PID: 1, BurstTime: 2}}
	cpu := NewCPU(input)

	states := cpu.States()
	states[0].RemainingTime = 0

	assert.Equal(t, 2, cpu.At(0).RemainingTime)
	assert.Equal(t, Process{PID: 1, BurstTime: 2}, input[0])
}

func TestValidationError(t *testing.T) {
	err := InvalidProcess(2, "burstTime", "must be greater than zero")

	assert.Equal(t, "processes[2].burstTime: must be greater than zero", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidProcess))
	assert.True(t, IsValidationError(err))

	var target *ValidationError
	require.True(t, errors.As(error(InvalidQuantum("must be at least 1")), &target))
	assert.Equal(t, "timeQuantum", target.Field)

	assert.Equal(t, "algorithm: unsupported algorithm \"MLFQ\"", UnknownAlgorithm("unsupported algorithm \"MLFQ\"").Error())
	assert.False(t, IsValidationError(errors.New("boom")))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "State(9)", State(9).String())
}
