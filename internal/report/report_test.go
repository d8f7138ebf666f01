package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/core"
)

func TestRender(t *testing.T) {
	result := core.ScheduleResult{
		Processes: []core.ProcessResult{
			{Process: core.Process{PID: 1, ArrivalTime: 2, BurstTime: 3}, StartTime: 2, CompletionTime: 5, TurnaroundTime: 3},
			{Process: core.Process{PID: 12, ArrivalTime: 3, BurstTime: 1, Priority: 4}, StartTime: 5, CompletionTime: 6, TurnaroundTime: 3, WaitingTime: 2},
		},
		Timeline: []core.Interval{
			{Start: 0, End: 2, Idle: true},
			{PID: 1, Start: 2, End: 5},
			{PID: 12, Start: 5, End: 6},
		},
		Metric:                core.CpuMetric{TotalTime: 6, BusyTime: 4, IdleTime: 2},
		AverageWaitingTime:    1,
		AverageTurnaroundTime: 3,
		CpuUtilization:        4.0 / 6.0,
		Throughput:            2.0 / 6.0,
	}

	var buf bytes.Buffer
	Render(&buf, "FCFS", result)
	out := buf.String()

	assert.Contains(t, out, "FCFS")
	assert.Contains(t, out, "| idle | P1 | P12 |")
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "1.00")
	assert.Contains(t, out, "3.00")
	assert.Contains(t, out, "0.33")
	assert.Contains(t, out, "CPU utilization 66.67% (busy 4, idle 2, total 6)")

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "| idle") {
			marks := strings.Fields(lines[i+1])
			assert.Equal(t, []string{"0", "2", "5", "6"}, marks)
		}
	}
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, "RR", core.ScheduleResult{})

	assert.Contains(t, buf.String(), "(empty)")
}
