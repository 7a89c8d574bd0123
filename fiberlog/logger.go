package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const requestLogMsg = "запрос api"

func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields, len(ftm))
	for k, ft := range ftm {
		value := ft(c, d)
		if strValue, ok := value.(string); ok && strValue == "" {
			continue
		}
		f[k] = value
	}
	return f
}

// New логирование каждого запроса одной записью после ответа
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Next == nil {
		cfg.Next = skipPreflight
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		if cfg.Next(c) {
			return c.Next()
		}
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()

		logger.WithFields(getLogrusFields(ftm, c, d)).Log(getLevel(c.Response().StatusCode()), requestLogMsg)
		return err
	}
}

func getLevel(status int) log.Level {
	switch {
	case status >= fiber.StatusInternalServerError:
		return log.ErrorLevel
	case status >= fiber.StatusBadRequest:
		return log.WarnLevel
	}
	return log.InfoLevel
}
