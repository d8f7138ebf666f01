package core

// Process is a scheduling input. It is never mutated once a simulation starts.
type Process struct {
	PID         int
	ArrivalTime int
	BurstTime   int
	Priority    int
}

// ProcessState is the private mutable copy of a Process owned by one simulation.
type ProcessState struct {
	Process
	RemainingTime  int
	StartTime      int
	CompletionTime int
}

func NewProcessState(p Process) ProcessState {
	return ProcessState{
		Process:       p,
		RemainingTime: p.BurstTime,
		StartTime:     -1,
	}
}

func (s ProcessState) Started() bool {
	return s.StartTime >= 0
}

func (s ProcessState) Completed() bool {
	return s.RemainingTime == 0
}

type ProcessResult struct {
	Process
	RemainingTime  int
	StartTime      int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int
}

// ScheduleResult is the outcome of one simulation. Averages are exact quotients of integer sums.
type ScheduleResult struct {
	Processes             []ProcessResult
	Timeline              []Interval
	Metric                CpuMetric
	AverageWaitingTime    float64
	AverageTurnaroundTime float64
	AverageResponseTime   float64
	CpuUtilization        float64
	Throughput            float64
}
