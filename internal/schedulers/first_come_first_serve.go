package schedulers

import "cpu-scheduler/internal/core"

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
// Equal arrivals keep their submission order; pid is not consulted.
func ScheduleFirstComeFirstServe(processes []core.Process) core.ScheduleResult {
	cpu := core.NewCPU(sortByArrival(processes))

	for i := 0; i < cpu.Len(); i++ {
		job := cpu.At(i)
		if cpu.Clock() < job.ArrivalTime {
			cpu.IdleUntil(job.ArrivalTime)
		}
		cpu.Run(i, job.RemainingTime)
	}

	return generateResult(cpu)
}
