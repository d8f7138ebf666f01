package responses

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestNewScheduleResponse_Empty(t *testing.T) {
	body, err := json.Marshal(NewScheduleResponse(core.ScheduleResult{}))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, []any{}, decoded["processes"])
	assert.Equal(t, 0.0, decoded["averageWaitingTime"])
	assert.Equal(t, 0.0, decoded["averageTurnaroundTime"])
	assert.Equal(t, []any{}, decoded["timeline"])
}

func TestNewScheduleResponse_Fields(t *testing.T) {
	result := core.ScheduleResult{
		Processes: []core.ProcessResult{{
			Process:        core.Process{PID: 2, ArrivalTime: 1, BurstTime: 3, Priority: 4},
			StartTime:      5,
			CompletionTime: 8,
			TurnaroundTime: 7,
			WaitingTime:    4,
			ResponseTime:   4,
		}},
		Timeline:              []core.Interval{{Start: 0, End: 5, Idle: true}, {PID: 2, Start: 5, End: 8}},
		Metric:                core.CpuMetric{TotalTime: 8, BusyTime: 3, IdleTime: 5},
		AverageWaitingTime:    10.0 / 3.0,
		AverageTurnaroundTime: 20.0 / 3.0,
		CpuUtilization:        3.0 / 8.0,
		Throughput:            1.0 / 8.0,
	}

	body, err := json.Marshal(NewScheduleResponse(result))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"processes": [{"pid":2,"arrivalTime":1,"burstTime":3,"priority":4,"startTime":5,
			"completionTime":8,"turnaroundTime":7,"waitingTime":4,"responseTime":4}],
		"averageWaitingTime": 3.3333,
		"averageTurnaroundTime": 6.6667,
		"averageResponseTime": 0,
		"totalTime": 8,
		"idleTime": 5,
		"cpuUtilization": 0.375,
		"throughput": 0.125,
		"timeline": [{"start":0,"end":5,"idle":true},{"pid":2,"start":5,"end":8,"idle":false}]
	}`, string(body))
}
