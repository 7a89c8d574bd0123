package apiv1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	messagetemplate "project-request-backend/lib/message-template"
	projectrequest "project-request-backend/lib/project-request"
	"project-request-backend/lib/smtp"
	"project-request-backend/models"
	apimodels "project-request-backend/models/api"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type mailerMock struct {
	sent []smtp.Message
	err  error
}

func (m *mailerMock) SendHtmlEMail(_ context.Context, msg smtp.Message) (string, error) {
	m.sent = append(m.sent, msg)
	if m.err != nil {
		return "", m.err
	}
	return "<id@example.com>", nil
}

func (m *mailerMock) IsConfigured() bool {
	return true
}

type storageMock struct {
	err error
}

func (s *storageMock) UploadReferenceFile(_ context.Context, fileName, _ string, fileReader io.Reader, _ int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	_, _ = io.ReadAll(fileReader)
	return "https://cdn.example.com/uploads/" + fileName, nil
}

func newTestApp(mailer smtp.Provider, storage *storageMock) *fiber.App {
	handler := projectrequest.NewHandler(projectrequest.Config{
		Agency:      models.AgencyBranding{Name: "Pixel Studio", Website: "https://pixel.example.com", Email: "hello@pixel.example.com"},
		SenderEmail: "agency@example.com",
		AdminEmail:  "admin@example.com",
		Now:         func() time.Time { return time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC) },
	}, mailer, storage, messagetemplate.NewHandler(messagetemplate.ThemePremium))

	app := fiber.New()
	InitHealthRouters(app)
	api := fiber.New()
	InitProjectRequestApiRouters(api, handler)
	app.Mount("/api", api)
	return app
}

func requestFields() map[string]string {
	return map[string]string{
		"projectName":        "Brand Refresh",
		"clientName":         "Jamie Doe",
		"projectType":        "Logo Design",
		"projectDescription": "New logo\nand brand book",
		"timeline":           "2 weeks",
		"clientEmail":        "jamie@example.com",
	}
}

func newMultipartRequest(t *testing.T, fields map[string]string, files ...string) *http.Request {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.Nil(t, writer.WriteField(key, value))
	}
	for _, name := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="referenceFiles"; filename="`+name+`"`)
		header.Set("Content-Type", "image/png")
		part, err := writer.CreatePart(header)
		require.Nil(t, err)
		_, err = part.Write([]byte("content of " + name))
		require.Nil(t, err)
	}
	require.Nil(t, writer.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/send-project-request", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func readResponse(t *testing.T, resp *http.Response) apimodels.Response {
	defer resp.Body.Close()
	var result apimodels.Response
	require.Nil(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func TestSendProjectRequestApi(t *testing.T) {
	t.Run(`success without files check`, func(t *testing.T) {
		mailer := &mailerMock{}
		app := newTestApp(mailer, &storageMock{})
		resp, err := app.Test(newMultipartRequest(t, requestFields()), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		result := readResponse(t, resp)
		require.True(t, result.Success)
		require.Equal(t, projectRequestSentMsg, result.Message)
		require.Len(t, mailer.sent, 1)
		require.Equal(t, "jamie@example.com", mailer.sent[0].To)
		require.Equal(t, []string{"admin@example.com"}, mailer.sent[0].Cc)
		require.Contains(t, mailer.sent[0].Html, "<strong>References:</strong> None")
		require.Contains(t, mailer.sent[0].Html, "New logo<br />and brand book")
	})

	t.Run(`transport error check`, func(t *testing.T) {
		mailer := &mailerMock{err: errors.New("dial tcp 10.0.0.1:587: i/o timeout")}
		app := newTestApp(mailer, &storageMock{})
		resp, err := app.Test(newMultipartRequest(t, requestFields()), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		result := readResponse(t, resp)
		require.False(t, result.Success)
		require.Equal(t, projectRequestFailedMsg, result.Message)
		require.NotContains(t, result.Message, "timeout")
	})

	t.Run(`not configured check`, func(t *testing.T) {
		mailer := &mailerMock{err: smtp.ErrNotConfigured}
		app := newTestApp(mailer, &storageMock{})
		resp, err := app.Test(newMultipartRequest(t, requestFields()), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		require.False(t, readResponse(t, resp).Success)
	})

	t.Run(`two files check`, func(t *testing.T) {
		mailer := &mailerMock{}
		app := newTestApp(mailer, &storageMock{})
		resp, err := app.Test(newMultipartRequest(t, requestFields(), "a.png", "b.png"), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Len(t, mailer.sent, 1)
		require.Contains(t, mailer.sent[0].Html,
			"https://cdn.example.com/uploads/a.png, https://cdn.example.com/uploads/b.png")
	})

	t.Run(`upload error check`, func(t *testing.T) {
		mailer := &mailerMock{}
		app := newTestApp(mailer, &storageMock{err: errors.New("bucket not found")})
		resp, err := app.Test(newMultipartRequest(t, requestFields(), "a.png"), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		require.False(t, readResponse(t, resp).Success)
		require.Len(t, mailer.sent, 0)
	})

	t.Run(`invalid email check`, func(t *testing.T) {
		mailer := &mailerMock{}
		app := newTestApp(mailer, &storageMock{})
		fields := requestFields()
		fields["clientEmail"] = "jamie"
		resp, err := app.Test(newMultipartRequest(t, fields), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.False(t, readResponse(t, resp).Success)
		require.Len(t, mailer.sent, 0)
	})

	t.Run(`json body check`, func(t *testing.T) {
		mailer := &mailerMock{}
		app := newTestApp(mailer, &storageMock{})
		body, err := json.Marshal(requestFields())
		require.Nil(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/send-project-request", bytes.NewReader(body))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		resp, err := app.Test(req, -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Len(t, mailer.sent, 1)
	})

	t.Run(`escaped input check`, func(t *testing.T) {
		mailer := &mailerMock{}
		app := newTestApp(mailer, &storageMock{})
		fields := requestFields()
		fields["clientName"] = "<script>alert(1)</script>"
		resp, err := app.Test(newMultipartRequest(t, fields), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.NotContains(t, mailer.sent[0].Html, "<script>")
	})
}

func TestHealthApi(t *testing.T) {
	app := newTestApp(&mailerMock{}, &storageMock{})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.Nil(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	require.True(t, strings.HasPrefix(string(body), livenessMsg))
}
