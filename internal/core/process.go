package core

import (
	"fmt"
)

// Process is the static definition of a schedulable unit of work. All
// execution state (remaining time, completion tick) is owned by the
// simulator, not by the definition.
type Process struct {
	ID       int
	Name     string
	Arrival  int
	Burst    int
	Priority int // lower value = more urgent
}

func (p Process) Validate() error {
	if p.Arrival < 0 {
		return fmt.Errorf("process %d: arrival time must be >= 0, got %d", p.ID, p.Arrival)
	}
	if p.Burst < 1 {
		return fmt.Errorf("process %d: burst time must be >= 1, got %d", p.ID, p.Burst)
	}
	return nil
}

// ValidateSet checks every definition and rejects duplicate ids and names.
func ValidateSet(procs []Process) error {
	seenID := make(map[int]bool, len(procs))
	seenName := make(map[string]bool, len(procs))
	for _, p := range procs {
		if err := p.Validate(); err != nil {
			return err
		}
		if seenID[p.ID] {
			return fmt.Errorf("duplicate process id %d", p.ID)
		}
		if p.Name != "" && seenName[p.Name] {
			return fmt.Errorf("duplicate process name %q", p.Name)
		}
		seenID[p.ID] = true
		seenName[p.Name] = true
	}
	return nil
}
