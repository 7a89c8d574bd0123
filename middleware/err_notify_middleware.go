package middleware

import (
	"encoding/json"
	"net/http"
	botnotify "project-request-backend/lib/utils/bot-notify"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	log "github.com/sirupsen/logrus"
)

// ErrNotify отправляет 5xx ответы в бот уведомлений
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()

		if statusCode >= http.StatusInternalServerError {
			body := utils.CopyString(string(c.Response().Body()))

			var data struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			unmErr := json.Unmarshal(c.Response().Body(), &data)
			if unmErr != nil {
				log.WithError(unmErr).Warn("error unmarshalling response body in middleware")
			}

			path := utils.CopyString(c.OriginalURL())
			if r := c.Route(); r != nil {
				path = r.Path
			}
			msg := data.Message
			if msg == "" {
				msg = body
			}
			// данные fasthttp нельзя читать после возврата из обработчика
			event := botnotify.ErrorEvent{
				Code:      statusCode,
				Method:    utils.CopyString(c.Method()),
				Path:      path,
				RequestID: utils.CopyString(c.GetRespHeader(fiber.HeaderXRequestID)),
				Error:     msg,
			}
			botnotify.SendErrorAsync(addr, event, log.WithField("path", event.Path))
		}

		return err
	}
}
