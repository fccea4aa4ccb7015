package api

import (
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/Bae-Sunny/cpu-scheduler-simulator/config"
	"github.com/Bae-Sunny/cpu-scheduler-simulator/internal/core"
	"github.com/Bae-Sunny/cpu-scheduler-simulator/internal/requests"
	"github.com/Bae-Sunny/cpu-scheduler-simulator/internal/responses"
	"github.com/Bae-Sunny/cpu-scheduler-simulator/internal/scheduler"
)

// session couples a simulator with its auto-run driver. While runner is
// non-nil the runner goroutine owns the simulator; manual transitions are
// rejected until Pause.
type session struct {
	sim    *scheduler.Simulator
	runner *scheduler.Runner
}

// playing reports whether the auto-run loop is still consuming ticks, and
// clears the runner once it has finished on its own.
func (s *session) playing() bool {
	if s.runner == nil {
		return false
	}
	select {
	case <-s.runner.Done():
		s.runner = nil
		return false
	default:
		return true
	}
}

func (s *session) snapshot() scheduler.Snapshot {
	if s.runner != nil {
		return s.runner.Snapshot()
	}
	return s.sim.Snapshot()
}

// SessionHandler exposes interactive step-by-step simulations. Every state
// transition runs either under the store lock or inside the session's
// runner goroutine, so observers only ever see whole ticks.
type SessionHandler struct {
	config *config.SchedulerConfig

	mu       sync.Mutex
	seq      int
	sessions map[string]*session
}

func NewSessionHandler(config *config.SchedulerConfig) *SessionHandler {
	return &SessionHandler{
		config:   config,
		sessions: make(map[string]*session),
	}
}

type createSessionRequest struct {
	requests.ScheduleRequest
	Algorithm string `json:"algorithm"`
}

func (h *SessionHandler) Create(ctx *fiber.Ctx) error {
	var request createSessionRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	algo, err := scheduler.ParseAlgorithm(request.Algorithm)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	procs := request.Processes()
	if err := core.ValidateSet(procs); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	quantum := request.TimeQuantum
	if quantum < 1 {
		quantum = h.config.RoundRobinTimeQuantum
	}
	sim, err := scheduler.NewSimulator(procs, algo, quantum)
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	h.mu.Lock()
	h.seq++
	id := strconv.Itoa(h.seq)
	sess := &session{sim: sim}
	h.sessions[id] = sess
	snap := sess.snapshot()
	h.mu.Unlock()

	return ctx.Status(fiber.StatusCreated).JSON(responses.NewSessionResponse(id, snap, false))
}

func (h *SessionHandler) Get(ctx *fiber.Ctx) error {
	return h.withSession(ctx, func(sess *session) error { return nil })
}

// Step advances the session exactly one tick and returns the new state.
func (h *SessionHandler) Step(ctx *fiber.Ctx) error {
	return h.withSession(ctx, func(sess *session) error {
		if sess.playing() {
			return errSessionPlaying
		}
		sess.sim.Advance()
		return nil
	})
}

// Play starts auto-advancing at the configured tick interval. The loop
// stops by itself when the simulation finishes.
func (h *SessionHandler) Play(ctx *fiber.Ctx) error {
	return h.withSession(ctx, func(sess *session) error {
		if sess.playing() {
			return nil
		}
		sess.runner = scheduler.NewRunner(sess.sim, scheduler.NewIntervalTicker(h.config.TickInterval))
		sess.runner.Start()
		return nil
	})
}

// Pause stops the auto-run loop; pausing a session that is not playing is a
// no-op.
func (h *SessionHandler) Pause(ctx *fiber.Ctx) error {
	return h.withSession(ctx, func(sess *session) error {
		if sess.runner != nil {
			sess.runner.Stop()
			sess.runner = nil
		}
		return nil
	})
}

func (h *SessionHandler) Reset(ctx *fiber.Ctx) error {
	return h.withSession(ctx, func(sess *session) error {
		if sess.playing() {
			return errSessionPlaying
		}
		sess.runner = nil
		sess.sim.Reset()
		return nil
	})
}

func (h *SessionHandler) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	h.mu.Lock()
	sess, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown session"})
	}
	if sess.runner != nil {
		sess.runner.Stop()
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

var errSessionPlaying = fiber.NewError(fiber.StatusConflict, "session is auto-running, pause it first")

func (h *SessionHandler) withSession(ctx *fiber.Ctx, apply func(sess *session) error) error {
	id := ctx.Params("id")
	h.mu.Lock()
	sess, ok := h.sessions[id]
	if !ok {
		h.mu.Unlock()
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown session"})
	}
	if err := apply(sess); err != nil {
		h.mu.Unlock()
		if fe, isFiber := err.(*fiber.Error); isFiber {
			return ctx.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	snap := sess.snapshot()
	playing := sess.playing()
	h.mu.Unlock()

	return ctx.JSON(responses.NewSessionResponse(id, snap, playing))
}
