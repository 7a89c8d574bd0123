package fiberlog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Config настройки middleware логирования запросов
type Config struct {
	// Logger nil - пишем в стандартный логгер logrus
	Logger *logrus.Logger
	// Tags поля записи, см. Tag* константы
	Tags []string
	// Next возвращает true для запросов, которые не логируются
	Next func(c *fiber.Ctx) bool
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
	Next: skipPreflight,
}

func skipPreflight(c *fiber.Ctx) bool {
	return c.Method() == fiber.MethodOptions
}
