package schedulers

import (
	"container/heap"

	"cpu-scheduler/internal/core"
)

// ScheduleNonPreemptivePriority runs the ready process with the smallest priority value to completion,
// then chooses again.
func ScheduleNonPreemptivePriority(processes []core.Process) core.ScheduleResult {
	cpu := core.NewCPU(sortByArrival(processes))
	ready := newReadyQueue(cpu, higherPriority)
	admitted := 0

	for !cpu.Done() {
		admitted = admitArrivals(cpu, ready, admitted)
		if ready.Len() == 0 {
			cpu.IdleUntil(cpu.At(admitted).ArrivalTime)
			continue
		}
		next := heap.Pop(ready).(int)
		cpu.Run(next, cpu.At(next).RemainingTime)
	}

	return generateResult(cpu)
}

func higherPriority(a, b core.ProcessState) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return earlier(a, b)
}
