package responses

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// Precision is the number of decimals kept in averages and ratios.
const Precision = 4

type ProcessResponse struct {
	ProcessId      int `json:"pid"`
	ArrivalTime    int `json:"arrivalTime"`
	BurstTime      int `json:"burstTime"`
	Priority       int `json:"priority"`
	StartTime      int `json:"startTime"`
	CompletionTime int `json:"completionTime"`
	TurnAroundTime int `json:"turnaroundTime"`
	WaitingTime    int `json:"waitingTime"`
	ResponseTime   int `json:"responseTime"`
}

type IntervalResponse struct {
	ProcessId int  `json:"pid,omitempty"`
	Start     int  `json:"start"`
	End       int  `json:"end"`
	Idle      bool `json:"idle"`
}

type ScheduleResponse struct {
	Details               []ProcessResponse  `json:"processes"`
	AverageWaitingTime    float64            `json:"averageWaitingTime"`
	AverageTurnAroundTime float64            `json:"averageTurnaroundTime"`
	AverageResponseTime   float64            `json:"averageResponseTime"`
	TotalTime             int                `json:"totalTime"`
	IdleTime              int                `json:"idleTime"`
	CpuUtilization        float64            `json:"cpuUtilization"`
	CpuThroughput         float64            `json:"throughput"`
	Timeline              []IntervalResponse `json:"timeline"`
}

type AlgorithmResponse struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	NeedsQuantum bool   `json:"needsQuantum"`
}

// NewScheduleResponse is the only place averages are rounded.
func NewScheduleResponse(result core.ScheduleResult) ScheduleResponse {
	details := make([]ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		details = append(details, ProcessResponse{
			ProcessId:      p.PID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			StartTime:      p.StartTime,
			CompletionTime: p.CompletionTime,
			TurnAroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
			ResponseTime:   p.ResponseTime,
		})
	}

	timeline := make([]IntervalResponse, 0, len(result.Timeline))
	for _, in := range result.Timeline {
		timeline = append(timeline, IntervalResponse{ProcessId: in.PID, Start: in.Start, End: in.End, Idle: in.Idle})
	}

	return ScheduleResponse{
		Details:               details,
		AverageWaitingTime:    util.Round(result.AverageWaitingTime, Precision),
		AverageTurnAroundTime: util.Round(result.AverageTurnaroundTime, Precision),
		AverageResponseTime:   util.Round(result.AverageResponseTime, Precision),
		TotalTime:             result.Metric.TotalTime,
		IdleTime:              result.Metric.IdleTime,
		CpuUtilization:        util.Round(result.CpuUtilization, Precision),
		CpuThroughput:         util.Round(result.Throughput, Precision),
		Timeline:              timeline,
	}
}
