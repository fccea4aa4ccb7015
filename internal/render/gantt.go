package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Bae-Sunny/cpu-scheduler-simulator/internal/responses"
)

// WriteSchedule renders a full run as plain text: title banner, gantt strip
// and the per-process schedule table with average footers.
func WriteSchedule(w io.Writer, title string, resp responses.ScheduleResponse) {
	writeTitle(w, title)
	writeGantt(w, resp.Gantt)
	writeTable(w, resp)
}

func writeTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func writeGantt(w io.Writer, gantt []responses.GanttSegment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, seg := range gantt {
		padding := strings.Repeat(" ", pad(len(seg.Label)))
		_, _ = fmt.Fprint(w, padding, seg.Label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, seg := range gantt {
		_, _ = fmt.Fprint(w, seg.Start, "\t")
		if i == len(gantt)-1 {
			_, _ = fmt.Fprint(w, seg.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func pad(labelLen int) int {
	if labelLen >= 8 {
		return 1
	}
	return (8 - labelLen) / 2
}

func writeTable(w io.Writer, resp responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(resp.Details))
	for _, d := range resp.Details {
		rows = append(rows, []string{
			fmt.Sprint(d.ProcessId),
			d.Name,
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", resp.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", resp.CpuThroughput)})
	table.Render()
}
