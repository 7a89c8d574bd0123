package controllers

import (
	"mime/multipart"
	apimodels "project-request-backend/models/api"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("failed to read request data")
	}
	return nil
}

// GetFormFiles файлы multipart формы, для остальных типов запроса пустой список
func (c *BaseAPIController) GetFormFiles(ctx *fiber.Ctx, field string) ([]*multipart.FileHeader, error) {
	contentType := strings.ToLower(string(ctx.Request().Header.ContentType()))
	if !strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		return nil, nil
	}
	form, err := ctx.MultipartForm()
	if err != nil {
		log.WithError(err).Error("ошибка чтения файлов из запроса")
		return nil, errors.New("failed to read attached files")
	}
	return form.File[field], nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.WithFields(log.Fields{
		"request_id": ctx.GetRespHeader(fiber.HeaderXRequestID),
		"path":       ctx.Path(),
	})
}

// SendError пишет причину в лог, клиенту уходит только message
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, status int, message string) error {
	if status >= fiber.StatusInternalServerError {
		logger.WithError(err).Error(message)
	} else {
		logger.WithError(err).Warn(message)
	}
	return ctx.Status(status).JSON(apimodels.NewError(message))
}
