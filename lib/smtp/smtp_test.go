package smtp

import (
	"context"
	"io"
	"project-request-backend/models"
	"strings"
	"testing"

	"github.com/emersion/go-sasl"
	"github.com/mrz1836/postmark"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	addr string
	from string
	to   []string
	body string
	auth bool
}

func newTestImpl(sent *[]sentMail, sendErr error) *impl {
	return &impl{
		user:     "agency@example.com",
		password: "secret",
		host:     "smtp.example.com",
		port:     "587",
		send: func(addr string, a sasl.Client, from string, to []string, r io.Reader) error {
			body, err := io.ReadAll(r)
			if err != nil {
				return err
			}
			*sent = append(*sent, sentMail{addr: addr, from: from, to: to, body: string(body), auth: a != nil})
			return sendErr
		},
	}
}

func testMessage() Message {
	return Message{
		FromName: "Pixel Studio",
		From:     "agency@example.com",
		To:       "client@example.com",
		Cc:       []string{"admin@example.com"},
		Subject:  "Project Request Confirmation – Brand Refresh",
		Html:     "<p>hello</p>",
	}
}

func TestSmtpSend(t *testing.T) {
	t.Run(`send check`, func(t *testing.T) {
		var sent []sentMail
		i := newTestImpl(&sent, nil)
		messageID, err := i.SendHtmlEMail(context.TODO(), testMessage())
		require.Nil(t, err)
		require.True(t, strings.HasSuffix(messageID, "@example.com>"))
		require.Len(t, sent, 1)
		require.Equal(t, "smtp.example.com:587", sent[0].addr)
		require.Equal(t, "agency@example.com", sent[0].from)
		require.Equal(t, []string{"client@example.com", "admin@example.com"}, sent[0].to)
		require.True(t, sent[0].auth)
		require.Contains(t, sent[0].body, "To: client@example.com")
		require.Contains(t, sent[0].body, "Cc: admin@example.com")
		require.Contains(t, sent[0].body, "Message-ID: "+messageID)
		require.Contains(t, sent[0].body, "text/html")
	})

	t.Run(`send error check`, func(t *testing.T) {
		var sent []sentMail
		i := newTestImpl(&sent, errors.New("connection refused"))
		_, err := i.SendHtmlEMail(context.TODO(), testMessage())
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "connection refused")
	})

	t.Run(`not configured check`, func(t *testing.T) {
		i := Connect("", "", "", "", false)
		require.False(t, i.IsConfigured())
		_, err := i.SendHtmlEMail(context.TODO(), testMessage())
		require.True(t, errors.Is(err, ErrNotConfigured))
	})

	t.Run(`cancelled context check`, func(t *testing.T) {
		var sent []sentMail
		i := newTestImpl(&sent, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i.SendHtmlEMail(ctx, testMessage())
		require.NotNil(t, err)
		require.Len(t, sent, 0)
	})

	t.Run(`attachment check`, func(t *testing.T) {
		var sent []sentMail
		i := newTestImpl(&sent, nil)
		msg := testMessage()
		msg.Attachments = []models.File{{FileName: "INV-1.pdf", ContentType: "application/pdf", Body: []byte("%PDF-1.3")}}
		_, err := i.SendHtmlEMail(context.TODO(), msg)
		require.Nil(t, err)
		require.Contains(t, sent[0].body, "INV-1.pdf")
		require.Contains(t, sent[0].body, "application/pdf")
	})
}

func TestRecipients(t *testing.T) {
	msg := Message{To: "client@example.com", Cc: []string{"", "admin@example.com"}}
	require.Equal(t, []string{"client@example.com", "admin@example.com"}, msg.Recipients())
}

type postmarkMock struct {
	emails []postmark.Email
	resp   postmark.EmailResponse
	err    error
}

func (m *postmarkMock) SendEmail(_ context.Context, email postmark.Email) (postmark.EmailResponse, error) {
	m.emails = append(m.emails, email)
	return m.resp, m.err
}

func TestPostmarkSend(t *testing.T) {
	t.Run(`send check`, func(t *testing.T) {
		mock := &postmarkMock{resp: postmark.EmailResponse{MessageID: "pm-1"}}
		p := postmarkImpl{client: mock}
		messageID, err := p.SendHtmlEMail(context.TODO(), testMessage())
		require.Nil(t, err)
		require.Equal(t, "pm-1", messageID)
		require.Len(t, mock.emails, 1)
		require.Equal(t, `"Pixel Studio" <agency@example.com>`, mock.emails[0].From)
		require.Equal(t, "client@example.com", mock.emails[0].To)
		require.Equal(t, "admin@example.com", mock.emails[0].Cc)
		require.Equal(t, "<p>hello</p>", mock.emails[0].HTMLBody)
	})

	t.Run(`rejected check`, func(t *testing.T) {
		mock := &postmarkMock{resp: postmark.EmailResponse{ErrorCode: 300, Message: "Invalid email request"}}
		p := postmarkImpl{client: mock}
		_, err := p.SendHtmlEMail(context.TODO(), testMessage())
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "300")
	})

	t.Run(`not configured check`, func(t *testing.T) {
		p := ConnectPostmark("", "")
		require.False(t, p.IsConfigured())
		_, err := p.SendHtmlEMail(context.TODO(), testMessage())
		require.True(t, errors.Is(err, ErrNotConfigured))
	})
}
