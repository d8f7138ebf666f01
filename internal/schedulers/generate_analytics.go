package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

func generateResult(cpu *core.CPU) core.ScheduleResult {
	states := cpu.States()
	proccessDetails := make([]core.ProcessResult, 0, len(states))
	for _, state := range states {
		proccessDetails = append(proccessDetails, generateProcessDetails(state))
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(proccessDetails)
	metric := cpu.Metric()

	return core.ScheduleResult{
		Processes:             proccessDetails,
		Timeline:              cpu.Timeline(),
		Metric:                metric,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnaroundTime: averageTurnAroundTime,
		AverageResponseTime:   averageResponseTime,
		CpuUtilization:        util.Ratio(int64(metric.BusyTime), int64(metric.TotalTime)),
		Throughput:            util.Ratio(int64(len(proccessDetails)), int64(metric.TotalTime)),
	}
}

func generateProcessDetails(state core.ProcessState) core.ProcessResult {
	turnAroundTime := state.CompletionTime - state.ArrivalTime
	return core.ProcessResult{
		Process:        state.Process,
		RemainingTime:  state.RemainingTime,
		StartTime:      state.StartTime,
		CompletionTime: state.CompletionTime,
		TurnaroundTime: turnAroundTime,
		WaitingTime:    turnAroundTime - state.BurstTime,
		ResponseTime:   state.StartTime - state.ArrivalTime,
	}
}
