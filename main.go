package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"project-request-backend/config"
	apiv1 "project-request-backend/controllers/v1"
	_ "project-request-backend/docs"
	"project-request-backend/fiberlog"
	"project-request-backend/initializers"
	"project-request-backend/middleware"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
)

// @title Project request backend
// @version 1.0
// @description Прием заявок на проекты агентства с письмом-счетом клиенту
// @BasePath /
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	services := initializers.InitAllServices(ctx)

	bodyLimit := config.Conf.App.BodyLimitMb * 1024 * 1024
	app := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: config.Conf.App.SwaggerFile,
	}
	if _, err := os.Stat(swaggerCfg.FilePath); err == nil {
		app.Use(swagger.New(swaggerCfg))
	} else {
		log.WithField("file", swaggerCfg.FilePath).Warn("swagger файл не найден, документация API отключена")
	}

	apiv1.InitHealthRouters(app)

	//api
	api := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
	})
	api.Use(fiberlog.New(*initializers.LoggerConfig))
	api.Use(cors.New(cors.Config{
		AllowOrigins: config.Conf.App.CorsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	api.Use(middleware.WithBodyLimit(int64(bodyLimit)))
	if config.Conf.NotifyBot.Addr != "" {
		api.Use(middleware.ErrNotify(config.Conf.NotifyBot.Addr))
	}
	apiv1.InitProjectRequestApiRouters(api, services.ProjectRequest)
	app.Mount("/api", api)

	// фронтенд
	if config.Conf.App.StaticDir != "" {
		app.Static("/", config.Conf.App.StaticDir)
	}

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
