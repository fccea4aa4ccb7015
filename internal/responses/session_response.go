package responses

import (
	"github.com/Bae-Sunny/cpu-scheduler-simulator/internal/scheduler"
)

// SessionResponse is the state snapshot returned by the interactive
// step-simulation endpoints.
type SessionResponse struct {
	SessionId string         `json:"session_id"`
	Algorithm string         `json:"algorithm"`
	Time      int            `json:"time"`
	Current   string         `json:"current"`
	Ready     []string       `json:"ready"`
	Completed []string       `json:"completed"`
	Remaining map[int]int    `json:"remaining"`
	Gantt     []GanttSegment `json:"gantt"`
	Done      bool           `json:"done"`
	Playing   bool           `json:"playing"`
}

func NewSessionResponse(id string, snap scheduler.Snapshot, playing bool) SessionResponse {
	gantt := make([]GanttSegment, 0, len(snap.Timeline))
	for _, seg := range snap.Timeline {
		gantt = append(gantt, GanttSegment{Label: seg.Occupant, Start: seg.Start, End: seg.End})
	}
	return SessionResponse{
		SessionId: id,
		Algorithm: snap.Algorithm,
		Time:      snap.Now,
		Current:   snap.Current,
		Ready:     snap.Ready,
		Completed: snap.Completed,
		Remaining: snap.Remaining,
		Gantt:     gantt,
		Done:      snap.Done,
		Playing:   playing,
	}
}
