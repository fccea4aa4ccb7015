package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Bae-Sunny/cpu-scheduler-simulator/api"
	"github.com/Bae-Sunny/cpu-scheduler-simulator/config"
)

func main() {
	cfg := config.GetSchedulerConfig()
	handler := api.NewSchedulerHandlerImpl(cfg)
	sessions := api.NewSessionHandler(cfg)

	app := fiber.New()
	apiGroup := app.Group("/api")

	v1 := apiGroup.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srt", handler.ShortestRemainingTime)
		v1.Post("/priority", handler.Priority)
		v1.Post("/hrn", handler.HighestResponseRatio)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)

		v1.Post("/sessions", sessions.Create)
		v1.Get("/sessions/:id", sessions.Get)
		v1.Post("/sessions/:id/step", sessions.Step)
		v1.Post("/sessions/:id/play", sessions.Play)
		v1.Post("/sessions/:id/pause", sessions.Pause)
		v1.Post("/sessions/:id/reset", sessions.Reset)
		v1.Delete("/sessions/:id", sessions.Delete)
	}

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
