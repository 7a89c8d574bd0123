package apiv1

import (
	"github.com/gofiber/fiber/v2"
)

const livenessMsg = "Hello! server is running correctly"

func InitHealthRouters(app *fiber.App) {
	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString(livenessMsg)
	})
}
