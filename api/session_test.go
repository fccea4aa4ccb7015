package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Bae-Sunny/cpu-scheduler-simulator/internal/responses"
)

const sessionBody = `{
	"algorithm": "srt",
	"jobs": [
		{"process_id":1,"name":"P1","arrival_time":0,"burst_time":5},
		{"process_id":2,"name":"P2","arrival_time":2,"burst_time":2}
	]
}`

func TestSession_StepThroughSRT(t *testing.T) {
	ass := assert.New(t)
	app := newTestApp()

	resp, err := app.Test(jsonRequest("POST", "/api/v1/sessions", sessionBody))
	ass.NoError(err)
	ass.Equal(http.StatusCreated, resp.StatusCode)

	var created responses.SessionResponse
	ass.NoError(json.NewDecoder(resp.Body).Decode(&created))
	ass.NotEmpty(created.SessionId)
	ass.Equal("srt", created.Algorithm)
	ass.Equal(0, created.Time)
	ass.Empty(created.Gantt)

	base := "/api/v1/sessions/" + created.SessionId

	// Three steps: P1 runs ticks 0 and 1, then P2 preempts at tick 2.
	var state responses.SessionResponse
	for i := 0; i < 3; i++ {
		resp, err = app.Test(jsonRequest("POST", base+"/step", ""))
		ass.NoError(err)
		ass.Equal(http.StatusOK, resp.StatusCode)
		ass.NoError(json.NewDecoder(resp.Body).Decode(&state))
	}
	ass.Equal(3, state.Time)
	ass.Equal("P2", state.Current)
	ass.Equal([]string{"P1"}, state.Ready)
	ass.Equal([]responses.GanttSegment{
		{Label: "P1", Start: 0, End: 2},
		{Label: "P2", Start: 2, End: 3},
	}, state.Gantt)

	// Reset rewinds to the initial state.
	resp, err = app.Test(jsonRequest("POST", base+"/reset", ""))
	ass.NoError(err)
	ass.NoError(json.NewDecoder(resp.Body).Decode(&state))
	ass.Equal(0, state.Time)
	ass.Empty(state.Gantt)
	ass.Equal(5, state.Remaining[1])

	// Get reads without advancing.
	resp, err = app.Test(jsonRequest("GET", base, ""))
	ass.NoError(err)
	ass.Equal(http.StatusOK, resp.StatusCode)
	ass.NoError(json.NewDecoder(resp.Body).Decode(&state))
	ass.Equal(0, state.Time)

	// Delete, then the session is gone.
	resp, err = app.Test(jsonRequest("DELETE", base, ""))
	ass.NoError(err)
	ass.Equal(http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(jsonRequest("DELETE", base, ""))
	ass.NoError(err)
	ass.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestSession_PlayRunsToCompletion(t *testing.T) {
	ass := assert.New(t)
	app := newTestApp()

	body := `{"algorithm":"fcfs","jobs":[{"process_id":1,"name":"P1","arrival_time":0,"burst_time":3}]}`
	resp, err := app.Test(jsonRequest("POST", "/api/v1/sessions", body))
	ass.NoError(err)
	ass.Equal(http.StatusCreated, resp.StatusCode)

	var created responses.SessionResponse
	ass.NoError(json.NewDecoder(resp.Body).Decode(&created))
	base := "/api/v1/sessions/" + created.SessionId

	resp, err = app.Test(jsonRequest("POST", base+"/play", ""))
	ass.NoError(err)
	ass.Equal(http.StatusOK, resp.StatusCode)

	// The 1ms test cadence finishes 3 ticks well within the deadline.
	var state responses.SessionResponse
	deadline := time.Now().Add(2 * time.Second)
	for !state.Done {
		if time.Now().After(deadline) {
			t.Fatal("auto-run never finished")
		}
		time.Sleep(5 * time.Millisecond)
		resp, err = app.Test(jsonRequest("GET", base, ""))
		ass.NoError(err)
		ass.NoError(json.NewDecoder(resp.Body).Decode(&state))
	}
	ass.Equal(3, state.Time)
	ass.Equal([]responses.GanttSegment{{Label: "P1", Start: 0, End: 3}}, state.Gantt)
	ass.False(state.Playing)

	// Pausing a finished session is a no-op.
	resp, err = app.Test(jsonRequest("POST", base+"/pause", ""))
	ass.NoError(err)
	ass.Equal(http.StatusOK, resp.StatusCode)
}

func TestSession_StepWhilePlayingConflicts(t *testing.T) {
	ass := assert.New(t)
	app := newTestApp()

	body := `{"algorithm":"fcfs","jobs":[{"process_id":1,"name":"P1","arrival_time":0,"burst_time":5000}]}`
	resp, err := app.Test(jsonRequest("POST", "/api/v1/sessions", body))
	ass.NoError(err)

	var created responses.SessionResponse
	ass.NoError(json.NewDecoder(resp.Body).Decode(&created))
	base := "/api/v1/sessions/" + created.SessionId

	resp, err = app.Test(jsonRequest("POST", base+"/play", ""))
	ass.NoError(err)
	ass.Equal(http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", base+"/step", ""))
	ass.NoError(err)
	ass.Equal(http.StatusConflict, resp.StatusCode)

	// Pause hands control back to manual stepping.
	resp, err = app.Test(jsonRequest("POST", base+"/pause", ""))
	ass.NoError(err)
	resp, err = app.Test(jsonRequest("POST", base+"/step", ""))
	ass.NoError(err)
	ass.Equal(http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest("DELETE", base, ""))
	ass.NoError(err)
	ass.Equal(http.StatusNoContent, resp.StatusCode)
}

func TestSession_UnknownAlgorithm(t *testing.T) {
	ass := assert.New(t)
	app := newTestApp()

	resp, err := app.Test(jsonRequest("POST", "/api/v1/sessions", `{"algorithm":"mlfq","jobs":[]}`))
	ass.NoError(err)
	ass.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestSession_UnknownId(t *testing.T) {
	ass := assert.New(t)
	app := newTestApp()

	resp, err := app.Test(jsonRequest("POST", "/api/v1/sessions/99/step", ""))
	ass.NoError(err)
	ass.Equal(http.StatusNotFound, resp.StatusCode)
}
