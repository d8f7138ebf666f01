// Package report renders a schedule as a text Gantt chart followed by a timing table.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
)

// Render writes the title, the Gantt chart and the schedule table for result.
func Render(w io.Writer, title string, result core.ScheduleResult) {
	outputTitle(w, title)
	outputGantt(w, result.Timeline)
	outputSchedule(w, result)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func label(in core.Interval) string {
	if in.Idle {
		return "idle"
	}
	return "P" + strconv.Itoa(in.PID)
}

func outputGantt(w io.Writer, timeline []core.Interval) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		return
	}

	var bar, marks strings.Builder
	bar.WriteString("|")
	marks.WriteString(strconv.Itoa(timeline[0].Start))
	for _, in := range timeline {
		bar.WriteString(" " + label(in) + " |")

		// right-align each end tick under the closing bar of its slice
		end := strconv.Itoa(in.End)
		pad := bar.Len() - marks.Len() - len(end)
		if pad < 1 {
			pad = 1
		}
		marks.WriteString(strings.Repeat(" ", pad) + end)
	}
	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintln(w, marks.String())
}

func outputSchedule(w io.Writer, result core.ScheduleResult) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(result.Processes))
	for _, p := range result.Processes {
		rows = append(rows, []string{
			strconv.Itoa(p.PID),
			strconv.Itoa(p.Priority),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.StartTime),
			strconv.Itoa(p.WaitingTime),
			strconv.Itoa(p.TurnaroundTime),
			strconv.Itoa(p.CompletionTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AverageTurnaroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", result.Throughput)})
	table.Render()

	_, _ = fmt.Fprintf(w, "CPU utilization %.2f%% (busy %d, idle %d, total %d)\n",
		result.CpuUtilization*100, result.Metric.BusyTime, result.Metric.IdleTime, result.Metric.TotalTime)
}
