// Package workload reads scheduling requests from YAML or JSON files for offline runs.
package workload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/requests"
)

// Load decodes the workload file at path.
func Load(path string) (requests.ScheduleRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return requests.ScheduleRequest{}, fmt.Errorf("failed to read workload: %w", err)
	}
	request, err := Decode(bytes.NewReader(data))
	if err != nil {
		return requests.ScheduleRequest{}, fmt.Errorf("%s: %w", path, err)
	}
	return request, nil
}

// Decode reads one workload document. Unknown keys are rejected so typos do not silently drop fields.
func Decode(r io.Reader) (requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&request); err != nil {
		if errors.Is(err, io.EOF) {
			return requests.ScheduleRequest{}, errors.New("empty workload")
		}
		return requests.ScheduleRequest{}, fmt.Errorf("invalid workload: %w", err)
	}
	return request, nil
}
