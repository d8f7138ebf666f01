package schedulers

import "cpu-scheduler/internal/core"

// ScheduleRoundRobin serves a FIFO ready queue, giving each dispatch at most timeQuantum ticks.
// Processes that arrive during a slice are queued ahead of the preempted process.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) core.ScheduleResult {
	if timeQuantum < 1 {
		timeQuantum = 1
	}
	cpu := core.NewCPU(sortByArrivalThenPID(processes))

	readyQueue := make([]int, 0, cpu.Len())
	admitted := 0
	admit := func() {
		for admitted < cpu.Len() && cpu.At(admitted).ArrivalTime <= cpu.Clock() {
			readyQueue = append(readyQueue, admitted)
			admitted++
		}
	}

	for !cpu.Done() {
		admit()
		if len(readyQueue) == 0 {
			cpu.IdleUntil(cpu.At(admitted).ArrivalTime)
			continue
		}

		current := readyQueue[0]
		readyQueue = readyQueue[1:]
		cpu.Run(current, timeQuantum)

		admit()
		if cpu.At(current).RemainingTime > 0 {
			readyQueue = append(readyQueue, current)
		}
	}

	return generateResult(cpu)
}
