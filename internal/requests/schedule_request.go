package requests

import (
	"fmt"

	"github.com/Bae-Sunny/cpu-scheduler-simulator/internal/core"
)

type Job struct {
	ProcessId   int    `json:"process_id"`
	Name        string `json:"name"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

type ScheduleRequest struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum int   `json:"time_quantum"`
}

// Processes converts the wire jobs into core definitions. Jobs without a
// display name get "P<id>".
func (r *ScheduleRequest) Processes() []core.Process {
	procs := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		name := job.Name
		if name == "" {
			name = fmt.Sprintf("P%d", job.ProcessId)
		}
		procs = append(procs, core.Process{
			ID:       job.ProcessId,
			Name:     name,
			Arrival:  job.ArrivalTime,
			Burst:    job.BurstTime,
			Priority: job.Priority,
		})
	}
	return procs
}
