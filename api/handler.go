package api

import (
	"bytes"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Bae-Sunny/cpu-scheduler-simulator/config"
	"github.com/Bae-Sunny/cpu-scheduler-simulator/internal/core"
	"github.com/Bae-Sunny/cpu-scheduler-simulator/internal/render"
	"github.com/Bae-Sunny/cpu-scheduler-simulator/internal/requests"
	"github.com/Bae-Sunny/cpu-scheduler-simulator/internal/responses"
	"github.com/Bae-Sunny/cpu-scheduler-simulator/internal/scheduler"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTime(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	HighestResponseRatio(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, scheduler.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, scheduler.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTime(ctx *fiber.Ctx) error {
	return s.schedule(ctx, scheduler.ShortestRemainingTime)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, scheduler.Priority)
}

func (s *SchedulerHandlerImpl) HighestResponseRatio(ctx *fiber.Ctx) error {
	return s.schedule(ctx, scheduler.HighestResponseRatio)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, scheduler.RoundRobin)
}

// AllAlgorithms runs the same job set under every discipline and returns a
// map keyed by algorithm name.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	results := make(map[string]responses.ScheduleResponse, len(scheduler.Algorithms()))
	for _, algo := range scheduler.Algorithms() {
		response, err := s.run(&request, algo)
		if err != nil {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		results[algo.String()] = response
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algo scheduler.Algorithm) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	response, err := s.run(&request, algo)
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	if ctx.Query("format") == "table" {
		var buf bytes.Buffer
		render.WriteSchedule(&buf, algo.String(), response)
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return ctx.SendString(buf.String())
	}
	return ctx.JSON(response)
}

// run simulates the requested job set to completion under one discipline.
func (s *SchedulerHandlerImpl) run(request *requests.ScheduleRequest, algo scheduler.Algorithm) (responses.ScheduleResponse, error) {
	procs := request.Processes()
	if err := core.ValidateSet(procs); err != nil {
		return responses.ScheduleResponse{}, err
	}
	quantum := request.TimeQuantum
	if quantum < 1 {
		quantum = s.config.RoundRobinTimeQuantum
	}
	sim, err := scheduler.NewSimulator(procs, algo, quantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	if err := sim.Run(s.config.MaxTicks); err != nil {
		return responses.ScheduleResponse{}, err
	}
	log.Println("scheduled", len(procs), "jobs with", algo.String(), "in", sim.Now(), "ticks")
	return responses.NewScheduleResponse(algo, sim.Stats(), sim.Timeline()), nil
}
