package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(10))
	app.Post("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run(`small body check`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("12345")), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run(`large body check`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 11))), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
		var body map[string]interface{}
		require.Nil(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, false, body["success"])
	})
}

func TestErrNotify(t *testing.T) {
	received := make(chan map[string]interface{}, 1)
	bot := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload map[string]interface{}
		_ = json.Unmarshal(body, &payload)
		received <- payload
	}))
	defer bot.Close()

	app := fiber.New()
	app.Use(ErrNotify(bot.URL))
	app.Get("/fail", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed"})
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run(`ok response check`, func(t *testing.T) {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
		require.Nil(t, err)
		select {
		case <-received:
			t.Fatal("notification for successful response")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run(`error response check`, func(t *testing.T) {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
		require.Nil(t, err)
		select {
		case payload := <-received:
			require.Equal(t, float64(500), payload["code"])
			require.Equal(t, "GET", payload["method"])
			require.Equal(t, "/fail", payload["path"])
			require.Equal(t, "Failed", payload["error"])
		case <-time.After(5 * time.Second):
			t.Fatal("notification not received")
		}
	})
}
