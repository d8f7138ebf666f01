package schedulers

import (
	"fmt"
	"log/slog"
	"strings"

	"cpu-scheduler/internal/core"
)

// Algorithm is the closed set of scheduling disciplines.
type Algorithm int

const (
	FCFS Algorithm = iota + 1
	SRTF
	RR
	NPP
)

// Algorithms lists every discipline in presentation order.
var Algorithms = []Algorithm{FCFS, SRTF, RR, NPP}

func (a Algorithm) String() string {
	switch a {
	case FCFS:
		return "FCFS"
	case SRTF:
		return "SRTF"
	case RR:
		return "RR"
	case NPP:
		return "NPP"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

func (a Algorithm) Label() string {
	switch a {
	case FCFS:
		return "First Come First Served"
	case SRTF:
		return "Shortest Remaining Time First"
	case RR:
		return "Round Robin"
	case NPP:
		return "Non-Preemptive Priority"
	}
	return a.String()
}

// NeedsQuantum reports whether the time quantum affects the schedule.
func (a Algorithm) NeedsQuantum() bool {
	return a == RR
}

// ParseAlgorithm resolves an algorithm id case-insensitively.
func ParseAlgorithm(id string) (Algorithm, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if id == "" {
		return 0, core.UnknownAlgorithm("algorithm identifier is required")
	}
	for _, a := range Algorithms {
		if a.String() == id {
			return a, nil
		}
	}
	return 0, core.UnknownAlgorithm(fmt.Sprintf("unsupported algorithm %q", id))
}

// Schedule validates the input and runs one simulation. It never returns a partial result.
// timeQuantum is only checked and used for RR.
func Schedule(algorithm Algorithm, timeQuantum int, processes []core.Process) (core.ScheduleResult, error) {
	if err := Validate(algorithm, timeQuantum, processes); err != nil {
		return core.ScheduleResult{}, err
	}
	slog.Debug("running scheduler", "algorithm", algorithm.String(), "timeQuantum", timeQuantum, "processes", len(processes))

	switch algorithm {
	case FCFS:
		return ScheduleFirstComeFirstServe(processes), nil
	case SRTF:
		return ScheduleShortestRemainingTimeFirst(processes), nil
	case RR:
		return ScheduleRoundRobin(processes, timeQuantum), nil
	case NPP:
		return ScheduleNonPreemptivePriority(processes), nil
	}
	return core.ScheduleResult{}, core.UnknownAlgorithm(fmt.Sprintf("unsupported algorithm %q", algorithm.String()))
}
