package schedulers

import (
	"container/heap"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestRemainingTimeFirst always runs the ready process with the least remaining time.
// Only an arrival can preempt the running process, so it runs until the next arrival or its completion.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) core.ScheduleResult {
	cpu := core.NewCPU(sortByArrival(processes))
	ready := newReadyQueue(cpu, shortestRemaining)
	admitted := 0

	for !cpu.Done() {
		admitted = admitArrivals(cpu, ready, admitted)
		current := ready.Peek()
		if current == -1 {
			cpu.IdleUntil(cpu.At(admitted).ArrivalTime)
			continue
		}

		ticks := cpu.At(current).RemainingTime
		if admitted < cpu.Len() {
			if gap := cpu.At(admitted).ArrivalTime - cpu.Clock(); gap < ticks {
				ticks = gap
			}
		}
		cpu.Extend(current, ticks)

		if cpu.At(current).RemainingTime == 0 {
			heap.Pop(ready)
		} else {
			heap.Fix(ready, 0)
		}
	}

	return generateResult(cpu)
}

func shortestRemaining(a, b core.ProcessState) bool {
	if a.RemainingTime != b.RemainingTime {
		return a.RemainingTime < b.RemainingTime
	}
	return earlier(a, b)
}
