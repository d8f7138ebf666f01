package core

import "fmt"

// State is the phase of the simulated CPU between scheduling decisions.
type State int

const (
	StateIdle State = iota
	StateSelecting
	StateRunning
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Interval is a half-open [Start, End) stretch of the timeline. Idle intervals carry no PID.
type Interval struct {
	PID   int
	Start int
	End   int
	Idle  bool
}

func (i Interval) Len() int {
	return i.End - i.Start
}

type CpuMetric struct {
	TotalTime int
	BusyTime  int
	IdleTime  int
}

// CPU is a single-core discrete-time simulator. Strategies pick which process runs;
// the CPU owns the clock, the process copies and the timeline.
type CPU struct {
	clock     int
	state     State
	processes []ProcessState
	timeline  []Interval
	completed int
	metric    CpuMetric
}

// NewCPU copies processes in the given order; indexes passed to Run and Extend refer to that order.
func NewCPU(processes []Process) *CPU {
	states := make([]ProcessState, len(processes))
	for i, p := range processes {
		states[i] = NewProcessState(p)
	}
	cpu := &CPU{
		state:     StateSelecting,
		processes: states,
		timeline:  make([]Interval, 0, len(processes)),
	}
	if len(states) == 0 {
		cpu.state = StateCompleted
	}
	return cpu
}

func (c *CPU) Clock() int {
	return c.clock
}

func (c *CPU) State() State {
	return c.state
}

func (c *CPU) Len() int {
	return len(c.processes)
}

func (c *CPU) At(i int) ProcessState {
	return c.processes[i]
}

func (c *CPU) Done() bool {
	return c.completed == len(c.processes)
}

// IsReady reports whether process i has arrived and still needs the CPU.
func (c *CPU) IsReady(i int) bool {
	p := c.processes[i]
	return p.ArrivalTime <= c.clock && p.RemainingTime > 0
}

// IdleUntil fast-forwards the clock to t, recording the gap as idle time.
func (c *CPU) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.state = StateIdle
	if n := len(c.timeline); n > 0 && c.timeline[n-1].Idle && c.timeline[n-1].End == c.clock {
		c.timeline[n-1].End = t
	} else {
		c.timeline = append(c.timeline, Interval{Start: c.clock, End: t, Idle: true})
	}
	c.metric.IdleTime += t - c.clock
	c.clock = t
	c.state = StateSelecting
}

// Run dispatches process i for up to ticks ticks as a new slice and returns the ticks used.
func (c *CPU) Run(i, ticks int) int {
	return c.execute(i, ticks, false)
}

// Extend runs process i like Run but continues the previous slice when i already held the CPU.
func (c *CPU) Extend(i, ticks int) int {
	return c.execute(i, ticks, true)
}

func (c *CPU) execute(i, ticks int, extend bool) int {
	if !c.IsReady(i) {
		panic(fmt.Sprintf("core: pid %d dispatched at %d while not ready", c.processes[i].PID, c.clock))
	}
	p := &c.processes[i]
	if ticks > p.RemainingTime {
		ticks = p.RemainingTime
	}
	if ticks <= 0 {
		return 0
	}

	c.state = StateRunning
	if !p.Started() {
		p.StartTime = c.clock
	}
	n := len(c.timeline)
	if extend && n > 0 && !c.timeline[n-1].Idle && c.timeline[n-1].PID == p.PID && c.timeline[n-1].End == c.clock {
		c.timeline[n-1].End += ticks
	} else {
		c.timeline = append(c.timeline, Interval{PID: p.PID, Start: c.clock, End: c.clock + ticks})
	}

	c.clock += ticks
	c.metric.BusyTime += ticks
	p.RemainingTime -= ticks
	if p.RemainingTime == 0 {
		p.CompletionTime = c.clock
		c.completed++
	}

	c.state = StateSelecting
	if c.Done() {
		c.state = StateCompleted
	}
	return ticks
}

// States returns a copy of the process states in CPU order.
func (c *CPU) States() []ProcessState {
	states := make([]ProcessState, len(c.processes))
	copy(states, c.processes)
	return states
}

func (c *CPU) Timeline() []Interval {
	timeline := make([]Interval, len(c.timeline))
	copy(timeline, c.timeline)
	return timeline
}

func (c *CPU) Metric() CpuMetric {
	metric := c.metric
	metric.TotalTime = c.clock
	return metric
}
