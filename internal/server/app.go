// Package server exposes profiles and recommendations over HTTP.
package server

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

type Deps struct {
	Profiles  Profiles
	Generator Recommender
	Auth      Authenticator
	Log       zerolog.Logger
}

func New(deps Deps) *fiber.App {
	log := deps.Log.With().Str("component", "http").Logger()
	app := fiber.New(fiber.Config{AppName: "futureframe"})

	app.Use(accessLogMiddleware(log))
	app.Use(errorMiddleware(log))

	h := &handlers{profiles: deps.Profiles, generator: deps.Generator}
	app.Get("/health", h.health)

	v1 := app.Group("/api/v1", authMiddleware(deps.Auth), requestCacheMiddleware())
	v1.Get("/me", h.me)
	v1.Get("/profile", h.getProfile)
	v1.Put("/profile", h.putProfile)
	v1.Get("/careers", h.careers)
	v1.Post("/skills-pipeline", h.skillPipeline)

	return app
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
