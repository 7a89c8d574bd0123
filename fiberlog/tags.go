package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid      = "pid"
	TagLatency  = "latency"
	TagStatus   = "status"
	TagMethod   = "method"
	TagPath     = "path"
	TagIP       = "ip"
	TagUA       = "user_agent"
	TagBody     = "body"
	TagResBody  = "res_body"
	TagBytesIn  = "bytes_in"
	TagBytesOut = "bytes_out"
	RequestID   = "request_id"
)

// bodyLogLimit тела больше лимита (загрузки файлов) в лог не пишутся
const bodyLogLimit = 4 * 1024

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag возвращает значение поля лога для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagUA: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			return limitBody(c.Body())
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			return limitBody(c.Response().Body())
		},
		TagBytesIn: func(c *fiber.Ctx, _ *data) interface{} {
			return len(c.Request().Body())
		},
		TagBytesOut: func(c *fiber.Ctx, _ *data) interface{} {
			return len(c.Response().Body())
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			return c.GetRespHeader(fiber.HeaderXRequestID)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

func limitBody(body []byte) string {
	if len(body) > bodyLogLimit {
		return ""
	}
	return string(body)
}
