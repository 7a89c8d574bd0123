package smtp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"project-request-backend/lib/utils/helpers"
	"project-request-backend/models"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var ErrNotConfigured = errors.New("mail transport is not configured")

type Provider interface {
	SendHtmlEMail(ctx context.Context, msg Message) (messageID string, err error)
	IsConfigured() bool
}

// Message исходящее письмо
type Message struct {
	FromName    string
	From        string
	To          string
	Cc          []string
	Subject     string
	Html        string
	Attachments []models.File
}

// Recipients адреса конверта: получатель и копии
func (m Message) Recipients() []string {
	return helpers.NonEmpty(append([]string{m.To}, m.Cc...)...)
}

type sendFunc func(addr string, a sasl.Client, from string, to []string, r io.Reader) error

func Connect(user, password, host, port string, secure bool) Provider {
	i := &impl{
		user:     user,
		password: password,
		host:     host,
		port:     port,
		secure:   secure,
		send:     smtp.SendMail,
	}
	if secure {
		i.send = smtp.SendMailTLS
	}
	return i
}

type impl struct {
	user     string
	password string
	host     string
	port     string
	secure   bool
	send     sendFunc
}

func (i impl) IsConfigured() bool {
	return i.host != "" && i.port != ""
}

func (i impl) SendHtmlEMail(ctx context.Context, msg Message) (messageID string, err error) {
	logger := log.WithFields(log.Fields{
		"sender":  msg.From,
		"to":      msg.To,
		"subject": msg.Subject,
	})
	if !i.IsConfigured() {
		logger.Warn("Письмо не отправлено, тк не настроен smtp клиент")
		return "", ErrNotConfigured
	}
	if err = ctx.Err(); err != nil {
		return "", err
	}
	messageID = newMessageID(msg.From)
	body, err := buildMessage(msg, messageID)
	if err != nil {
		logger.WithError(err).Error("Ошибка формирования письма")
		return "", err
	}
	// Authentication.
	var auth sasl.Client
	if i.user != "" {
		auth = sasl.NewPlainClient("", i.user, i.password)
	}
	err = i.send(i.host+":"+i.port, auth, msg.From, msg.Recipients(), body)
	if err != nil {
		logger.WithError(err).Error("Ошибка отправки сообщения")
		return "", errors.Wrap(err, "ошибка отправки письма через smtp")
	}
	logger.WithField("message_id", messageID).Info("письмо отправлено")
	return messageID, nil
}

func buildMessage(msg Message, messageID string) (*bytes.Buffer, error) {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.From, msg.FromName)
	m.SetHeader("To", msg.To)
	if len(msg.Cc) != 0 {
		m.SetHeader("Cc", msg.Cc...)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/html", msg.Html)
	for _, file := range msg.Attachments {
		m.Attach(file.FileName,
			gomail.SetHeader(map[string][]string{"Content-Type": {file.ContentType}}),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(file.Body)
				return err
			}))
	}
	buf := new(bytes.Buffer)
	if _, err := m.WriteTo(buf); err != nil {
		return nil, errors.Wrap(err, "ошибка записи MIME сообщения")
	}
	return buf, nil
}

func newMessageID(from string) string {
	domain := "localhost"
	if idx := strings.LastIndex(from, "@"); idx != -1 && idx < len(from)-1 {
		domain = from[idx+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.New().String(), domain)
}
