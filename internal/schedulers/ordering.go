package schedulers

import (
	"container/heap"
	"sort"

	"cpu-scheduler/internal/core"
)

// sortByArrival returns a copy ordered by arrival time; equal arrivals keep submission order.
func sortByArrival(processes []core.Process) []core.Process {
	jobs := append([]core.Process(nil), processes...)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})
	return jobs
}

// sortByArrivalThenPID returns a copy ordered by arrival time, then pid.
func sortByArrivalThenPID(processes []core.Process) []core.Process {
	jobs := append([]core.Process(nil), processes...)
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].ArrivalTime != jobs[j].ArrivalTime {
			return jobs[i].ArrivalTime < jobs[j].ArrivalTime
		}
		return jobs[i].PID < jobs[j].PID
	})
	return jobs
}

// earlier breaks ties between two candidates: earliest arrival, then smallest pid.
func earlier(a, b core.ProcessState) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.PID < b.PID
}

// readyQueue is a min-heap of CPU process indexes ordered by less.
type readyQueue struct {
	cpu   *core.CPU
	less  func(a, b core.ProcessState) bool
	items []int
}

func newReadyQueue(cpu *core.CPU, less func(a, b core.ProcessState) bool) *readyQueue {
	return &readyQueue{cpu: cpu, less: less, items: make([]int, 0, cpu.Len())}
}

func (q readyQueue) Len() int { return len(q.items) }
func (q readyQueue) Less(i, j int) bool {
	return q.less(q.cpu.At(q.items[i]), q.cpu.At(q.items[j]))
}
func (q readyQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *readyQueue) Push(x interface{}) {
	q.items = append(q.items, x.(int))
}

func (q *readyQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[0 : n-1]
	return item
}

// Peek returns the best ready index, or -1 when the queue is empty.
func (q readyQueue) Peek() int {
	if len(q.items) == 0 {
		return -1
	}
	return q.items[0]
}

func (q *readyQueue) Add(i int) {
	heap.Push(q, i)
}

// admitArrivals pushes every process that has arrived by the clock, starting at index next of an
// arrival-sorted CPU, and returns the first index not yet admitted.
func admitArrivals(cpu *core.CPU, queue *readyQueue, next int) int {
	for next < cpu.Len() && cpu.At(next).ArrivalTime <= cpu.Clock() {
		queue.Add(next)
		next++
	}
	return next
}
