package util

import (
	"math"

	"cpu-scheduler/internal/core"
)

// CalculateAverage sums the integer times first and divides once, so the result is the exact mean
// up to float64 precision.
func CalculateAverage(proccessDetails []core.ProcessResult) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	var waitingTimeSum int64
	var responseTimeSum int64
	var turnAroundTimeSum int64

	for _, proccess := range proccessDetails {
		waitingTimeSum += int64(proccess.WaitingTime)
		responseTimeSum += int64(proccess.ResponseTime)
		turnAroundTimeSum += int64(proccess.TurnaroundTime)
	}

	proccessCount := int64(len(proccessDetails))

	averageWaitingTime = Ratio(waitingTimeSum, proccessCount)
	averageResponseTime = Ratio(responseTimeSum, proccessCount)
	averageTurnAroundTime = Ratio(turnAroundTimeSum, proccessCount)
	return
}

// Ratio divides num by den, returning 0 for an empty denominator.
func Ratio(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// Round rounds half away from zero to the given number of decimal places.
func Round(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}
