package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/core"
)

func TestCalculateAverage(t *testing.T) {
	details := []core.ProcessResult{
		{WaitingTime: 0, TurnaroundTime: 5, ResponseTime: 0},
		{WaitingTime: 4, TurnaroundTime: 7, ResponseTime: 4},
		{WaitingTime: 6, TurnaroundTime: 14, ResponseTime: 6},
	}

	waiting, response, turnaround := CalculateAverage(details)

	assert.Equal(t, 10.0/3.0, waiting)
	assert.Equal(t, 10.0/3.0, response)
	assert.Equal(t, 26.0/3.0, turnaround)
}

func TestCalculateAverage_Empty(t *testing.T) {
	waiting, response, turnaround := CalculateAverage(nil)

	assert.Zero(t, waiting)
	assert.Zero(t, response)
	assert.Zero(t, turnaround)
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.5, Ratio(1, 2))
	assert.Zero(t, Ratio(3, 0))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.3333, Round(10.0/3.0, 4))
	assert.Equal(t, 6.6667, Round(20.0/3.0, 4))
	assert.Equal(t, 3.33, Round(10.0/3.0, 2))
	assert.Equal(t, 2.0, Round(2, 4))
}
