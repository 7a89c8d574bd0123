package smtp

import (
	"context"
	"encoding/base64"
	"net/mail"
	"project-request-backend/lib/utils/helpers"
	"strings"

	"github.com/mrz1836/postmark"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type postmarkSender interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// ConnectPostmark отправка через HTTP API Postmark вместо smtp
func ConnectPostmark(serverToken, accountToken string) Provider {
	p := &postmarkImpl{}
	if serverToken != "" {
		p.client = postmark.NewClient(serverToken, accountToken)
	}
	return p
}

type postmarkImpl struct {
	client postmarkSender
}

func (p postmarkImpl) IsConfigured() bool {
	return p.client != nil
}

func (p postmarkImpl) SendHtmlEMail(ctx context.Context, msg Message) (string, error) {
	logger := log.WithFields(log.Fields{
		"sender":  msg.From,
		"to":      msg.To,
		"subject": msg.Subject,
	})
	if !p.IsConfigured() {
		logger.Warn("Письмо не отправлено, тк не задан токен postmark")
		return "", ErrNotConfigured
	}
	email := postmark.Email{
		From:       (&mail.Address{Name: msg.FromName, Address: msg.From}).String(),
		To:         msg.To,
		Cc:         strings.Join(helpers.NonEmpty(msg.Cc...), ","),
		Subject:    msg.Subject,
		HTMLBody:   msg.Html,
		TrackOpens: false,
	}
	for _, file := range msg.Attachments {
		email.Attachments = append(email.Attachments, postmark.Attachment{
			Name:        file.FileName,
			Content:     base64.StdEncoding.EncodeToString(file.Body),
			ContentType: file.ContentType,
		})
	}
	resp, err := p.client.SendEmail(ctx, email)
	if err != nil {
		logger.WithError(err).Error("Ошибка отправки сообщения через postmark")
		return "", errors.Wrap(err, "ошибка отправки письма через postmark")
	}
	if resp.ErrorCode > 0 {
		logger.WithField("error_code", resp.ErrorCode).Error("postmark отклонил сообщение")
		return "", errors.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message)
	}
	logger.WithField("message_id", resp.MessageID).Info("письмо отправлено")
	return resp.MessageID, nil
}
