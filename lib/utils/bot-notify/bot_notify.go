package botnotify

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var client = &http.Client{Timeout: 10 * time.Second}

type ErrorEvent struct {
	Code      int    `json:"code"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

// SendError отправка события об ошибке сервера в бот уведомлений
func SendError(addr string, event ErrorEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации уведомления")
	}
	resp, err := client.Post(addr, "application/json", strings.NewReader(string(body)))
	if err != nil {
		return errors.Wrap(err, "ошибка отправки уведомления")
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("бот уведомлений ответил статусом %v", resp.StatusCode)
	}
	return nil
}

// SendErrorAsync то же, что SendError, ошибка только логируется
func SendErrorAsync(addr string, event ErrorEvent, logger *logrus.Entry) {
	go func() {
		if err := SendError(addr, event); err != nil {
			logger.WithError(err).Warn("error sending error notification")
		}
	}()
}
