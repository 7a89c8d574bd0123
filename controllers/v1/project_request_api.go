package apiv1

import (
	"project-request-backend/controllers"
	projectrequest "project-request-backend/lib/project-request"
	apimodels "project-request-backend/models/api"
	projectrequestapimodels "project-request-backend/models/api/project-request"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

const (
	projectRequestSentMsg   = "Project request received and confirmation email sent!"
	projectRequestFailedMsg = "Failed to process request. Please try again later."
	projectRequestInvalid   = "Invalid project request."
)

type projectRequestApiController struct {
	controllers.BaseAPIController
	handler projectrequest.Provider
}

func InitProjectRequestApiRouters(app *fiber.App, handler projectrequest.Provider) {
	controller := projectRequestApiController{handler: handler}
	app.Post("send-project-request", controller.sendProjectRequest) // заявка на проект с файлами
}

// @Summary Отправить заявку на проект
// @Tags Заявка_на_проект
// @Description Загружает файлы, формирует письмо-счет и отправляет клиенту с копией администратору
// @Accept	multipart/form-data
// @Param	projectName			formData	string	true	"название проекта"
// @Param	clientName			formData	string	true	"имя клиента"
// @Param	projectType			formData	string	true	"тип проекта"
// @Param	projectDescription	formData	string	true	"описание"
// @Param	timeline			formData	string	true	"сроки"
// @Param	clientEmail			formData	string	true	"почта клиента"
// @Param	clientCompany		formData	string	false	"компания"
// @Param	clientPhone			formData	string	false	"телефон"
// @Param	additionalInfo		formData	string	false	"дополнительно"
// @Param	budget				formData	string	false	"бюджет"
// @Param	referenceFiles		formData	file	false	"файлы"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/send-project-request [post]
func (c *projectRequestApiController) sendProjectRequest(ctx *fiber.Ctx) error {
	logger := c.GetLogger(ctx)
	var payload projectrequestapimodels.ProjectRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	files, err := c.GetFormFiles(ctx, projectrequestapimodels.ReferenceFilesField)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger.
		WithField("project_name", payload.ProjectName).
		WithField("files", len(files)).
		Info("получена заявка на проект")

	uploaded, err := c.handler.UploadReferenceFiles(ctx.UserContext(), files)
	if err != nil {
		return c.sendRequestError(ctx, err)
	}
	_, err = c.handler.SendProjectRequest(ctx.UserContext(), payload, uploaded)
	if err != nil {
		return c.sendRequestError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(projectRequestSentMsg))
}

func (c *projectRequestApiController) sendRequestError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, projectrequest.ErrValidation) {
		return c.SendError(ctx, c.GetLogger(ctx), err, fiber.StatusBadRequest, projectRequestInvalid)
	}
	return c.SendError(ctx, c.GetLogger(ctx), err, fiber.StatusInternalServerError, projectRequestFailedMsg)
}
