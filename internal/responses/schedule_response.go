package responses

import (
	"github.com/Bae-Sunny/cpu-scheduler-simulator/internal/scheduler"
)

type ProcessResponse struct {
	ProcessId      int    `json:"process_id"`
	Name           string `json:"name"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	CompletionTime int    `json:"completion_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
	ResponseTime   int    `json:"response_time"`
}

type GanttSegment struct {
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Gantt                 []GanttSegment    `json:"gantt"`
}

// NewScheduleResponse flattens the engine's run statistics and timeline into
// the wire shape.
func NewScheduleResponse(algo scheduler.Algorithm, stats scheduler.RunStats, timeline scheduler.Timeline) ScheduleResponse {
	details := make([]ProcessResponse, 0, len(stats.PerProcess))
	for _, ps := range stats.PerProcess {
		details = append(details, ProcessResponse{
			ProcessId:      ps.ID,
			Name:           ps.Name,
			ArrivalTime:    ps.Arrival,
			BurstTime:      ps.Burst,
			Priority:       ps.Priority,
			CompletionTime: ps.Completion,
			TurnAroundTime: ps.Turnaround,
			WaitingTime:    ps.Waiting,
			ResponseTime:   ps.Response,
		})
	}
	gantt := make([]GanttSegment, 0, len(timeline))
	for _, seg := range timeline {
		gantt = append(gantt, GanttSegment{Label: seg.Occupant, Start: seg.Start, End: seg.End})
	}
	return ScheduleResponse{
		Algorithm:             algo.String(),
		TotalTime:             stats.TotalTime,
		IdleTime:              stats.IdleTime,
		AverageWaitingTime:    stats.AverageWaiting,
		AverageResponseTime:   stats.AverageResponse,
		AverageTurnAroundTime: stats.AverageTurnaround,
		CpuUtilization:        stats.CPUUtilization,
		CpuThroughput:         stats.Throughput,
		Details:               details,
		Gantt:                 gantt,
	}
}
