package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcess_Validate(t *testing.T) {
	ass := assert.New(t)

	tests := []struct {
		name    string
		proc    Process
		wantErr bool
	}{
		{name: "valid", proc: Process{ID: 1, Name: "P1", Arrival: 0, Burst: 3}, wantErr: false},
		{name: "zero arrival ok", proc: Process{ID: 2, Name: "P2", Arrival: 0, Burst: 1}, wantErr: false},
		{name: "negative arrival", proc: Process{ID: 3, Name: "P3", Arrival: -1, Burst: 2}, wantErr: true},
		{name: "zero burst", proc: Process{ID: 4, Name: "P4", Arrival: 0, Burst: 0}, wantErr: true},
		{name: "negative burst", proc: Process{ID: 5, Name: "P5", Arrival: 2, Burst: -4}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.proc.Validate()
			if tt.wantErr {
				ass.Error(err)
			} else {
				ass.NoError(err)
			}
		})
	}
}

func TestValidateSet(t *testing.T) {
	ass := assert.New(t)

	ass.NoError(ValidateSet([]Process{
		{ID: 1, Name: "P1", Burst: 3},
		{ID: 2, Name: "P2", Burst: 1},
	}))
	ass.NoError(ValidateSet(nil))

	ass.Error(ValidateSet([]Process{
		{ID: 1, Name: "P1", Burst: 3},
		{ID: 1, Name: "P2", Burst: 1},
	}), "duplicate ids must be rejected")

	ass.Error(ValidateSet([]Process{
		{ID: 1, Name: "worker", Burst: 3},
		{ID: 2, Name: "worker", Burst: 1},
	}), "duplicate names must be rejected")
}
