package app

import (
	"fmt"
	"log"
	"strings"

	"jobport/internal/delivery/http/middleware"
	"jobport/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

// Bootstrap wires the container into a configured fiber app, starts the
// websocket hub and returns a cleanup for everything the container opened.
func Bootstrap(c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}

	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: int(c.Config.Upload.MaxBytes) + 1<<20,
	})

	registerGlobalMiddleware(f, c.Logger)

	go c.Hub.Run()

	routes.Register(f, routes.Deps{
		Config: c.Config,
		DB:     c.DB,
		Cache:  c.Cache,
		Files:  c.Files,
		Hub:    c.Hub,
		Logger: c.Logger,
	})

	return &App{Fiber: f}, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
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
