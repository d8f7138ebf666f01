package schedulers

import (
	"fmt"
	"math"

	"cpu-scheduler/internal/core"
)

// Limits bounds the work a single request may ask for. Zero fields disable the check.
type Limits struct {
	MaxProcesses  int
	MaxTotalBurst int
}

// Validate checks the algorithm, the quantum (RR only) and every process before any simulation starts.
func Validate(algorithm Algorithm, timeQuantum int, processes []core.Process) error {
	if algorithm < FCFS || algorithm > NPP {
		return core.UnknownAlgorithm(fmt.Sprintf("unsupported algorithm %q", algorithm.String()))
	}
	if algorithm.NeedsQuantum() && timeQuantum < 1 {
		return core.InvalidQuantum("must be greater than zero for Round Robin")
	}
	return ValidateProcesses(processes)
}

// ValidateProcesses checks every field and that the whole schedule fits in the clock:
// the latest arrival plus every burst must not exceed math.MaxInt.
func ValidateProcesses(processes []core.Process) error {
	seen := make(map[int]int, len(processes))
	latest, totalBurst := -1, 0
	for i, p := range processes {
		switch {
		case p.PID <= 0:
			return core.InvalidProcess(i, "pid", "must be a positive integer")
		case p.ArrivalTime < 0:
			return core.InvalidProcess(i, "arrivalTime", "must not be negative")
		case p.BurstTime < 1:
			return core.InvalidProcess(i, "burstTime", "must be greater than zero")
		case p.Priority < 0:
			return core.InvalidProcess(i, "priority", "must not be negative")
		}
		if first, ok := seen[p.PID]; ok {
			return core.InvalidProcess(i, "pid", fmt.Sprintf("duplicate pid %d (first used by processes[%d])", p.PID, first))
		}
		seen[p.PID] = i

		if p.BurstTime > math.MaxInt-totalBurst {
			return core.InvalidProcess(i, "burstTime", "total burst time overflows the simulation clock")
		}
		totalBurst += p.BurstTime
		if latest == -1 || p.ArrivalTime > processes[latest].ArrivalTime {
			latest = i
		}
	}
	if latest >= 0 && processes[latest].ArrivalTime > math.MaxInt-totalBurst {
		return core.InvalidProcess(latest, "arrivalTime", "schedule would overflow the simulation clock")
	}
	return nil
}

// CheckLimits rejects inputs whose simulation would exceed the configured bounds.
func CheckLimits(processes []core.Process, limits Limits) error {
	if limits.MaxProcesses > 0 && len(processes) > limits.MaxProcesses {
		return &core.ValidationError{
			Kind:   core.ErrInvalidProcess,
			Index:  -1,
			Field:  "processes",
			Reason: fmt.Sprintf("at most %d processes are allowed", limits.MaxProcesses),
		}
	}
	if limits.MaxTotalBurst > 0 {
		total := 0
		for i, p := range processes {
			total += p.BurstTime
			if total > limits.MaxTotalBurst {
				return core.InvalidProcess(i, "burstTime", fmt.Sprintf("total burst time exceeds %d ticks", limits.MaxTotalBurst))
			}
		}
	}
	return nil
}
