package requests

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/core"
)

// Int is an optional integer that accepts JSON/YAML numbers and numeric strings.
type Int struct {
	Value int
	Set   bool
}

func NewInt(v int) Int {
	return Int{Value: v, Set: true}
}

func (i Int) Or(fallback int) int {
	if !i.Set {
		return fallback
	}
	return i.Value
}

func (i *Int) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*i = Int{}
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	return i.parse(raw)
}

func (i *Int) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected integer at line %d", node.Line)
	}
	if node.Tag == "!!null" {
		*i = Int{}
		return nil
	}
	return i.parse(node.Value)
}

func (i *Int) parse(raw string) error {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("expected integer but found %q", raw)
	}
	*i = NewInt(value)
	return nil
}

type Process struct {
	PID         Int `json:"pid" yaml:"pid"`
	ArrivalTime Int `json:"arrivalTime" yaml:"arrivalTime"`
	BurstTime   Int `json:"burstTime" yaml:"burstTime"`
	Priority    Int `json:"priority" yaml:"priority"`
}

type ScheduleRequest struct {
	Algorithm   string    `json:"algorithm" yaml:"algorithm"`
	TimeQuantum Int       `json:"timeQuantum" yaml:"timeQuantum"`
	Processes   []Process `json:"processes" yaml:"processes"`
}

// ToProcesses applies the request defaults: pid falls back to its 1-based position and priority to 0.
// Arrival and burst times are required.
func (r *ScheduleRequest) ToProcesses() ([]core.Process, error) {
	if r.Processes == nil {
		return nil, &core.ValidationError{
			Kind:   core.ErrInvalidProcess,
			Index:  -1,
			Field:  "processes",
			Reason: "processes array is required",
		}
	}

	processes := make([]core.Process, 0, len(r.Processes))
	for index, job := range r.Processes {
		if !job.ArrivalTime.Set {
			return nil, core.InvalidProcess(index, "arrivalTime", "missing required field")
		}
		if !job.BurstTime.Set {
			return nil, core.InvalidProcess(index, "burstTime", "missing required field")
		}
		processes = append(processes, core.Process{
			PID:         job.PID.Or(index + 1),
			ArrivalTime: job.ArrivalTime.Value,
			BurstTime:   job.BurstTime.Value,
			Priority:    job.Priority.Or(0),
		})
	}
	return processes, nil
}
