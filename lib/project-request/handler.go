package projectrequest

import (
	"context"
	"fmt"
	"mime/multipart"
	pdfexport "project-request-backend/lib/export/pdf"
	filestorage "project-request-backend/lib/file-storage"
	messagetemplate "project-request-backend/lib/message-template"
	"project-request-backend/lib/smtp"
	"project-request-backend/lib/utils/helpers"
	initchecker "project-request-backend/lib/utils/init-checker"
	"project-request-backend/models"
	projectrequestapimodels "project-request-backend/models/api/project-request"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	noReferenceFiles   = "None"
	submissionDateTpl  = "Monday, January 2, 2006"
	referenceFilesJoin = ", "
)

type Provider interface {
	UploadReferenceFiles(ctx context.Context, files []*multipart.FileHeader) ([]projectrequestapimodels.UploadedFile, error)
	SendProjectRequest(ctx context.Context, payload projectrequestapimodels.ProjectRequest, files []projectrequestapimodels.UploadedFile) (messageID string, err error)
}

// Config неизменяемые настройки, загружаются один раз при старте
type Config struct {
	Agency      models.AgencyBranding
	SenderEmail string
	AdminEmail  string
	AttachPdf   bool
	// Now источник времени для даты заявки и номера счета, по умолчанию time.Now
	Now func() time.Time
}

// NewHandler fileStorage может быть nil, тогда заявки с файлами отклоняются
func NewHandler(cfg Config, mailer smtp.Provider, fileStorage filestorage.Provider, templates messagetemplate.Provider) Provider {
	initchecker.CheckInit(
		"mailer", mailer,
		"templates", templates,
	)
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &impl{
		cfg:         cfg,
		mailer:      mailer,
		fileStorage: fileStorage,
		templates:   templates,
	}
}

type impl struct {
	cfg         Config
	mailer      smtp.Provider
	fileStorage filestorage.Provider
	templates   messagetemplate.Provider
}

func (i impl) UploadReferenceFiles(ctx context.Context, files []*multipart.FileHeader) ([]projectrequestapimodels.UploadedFile, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if i.fileStorage == nil {
		return nil, classify(ErrConfiguration, errors.New("хранилище файлов не настроено"))
	}
	result := make([]projectrequestapimodels.UploadedFile, 0, len(files))
	for _, file := range files {
		if helpers.IsContextDone(ctx) {
			return nil, classify(ErrTransport, errors.New("загрузка файлов прервана"))
		}
		fileURL, err := i.uploadFile(ctx, file)
		if err != nil {
			return nil, classify(ErrTransport, err)
		}
		result = append(result, projectrequestapimodels.UploadedFile{
			FileName: file.Filename,
			URL:      fileURL,
		})
	}
	return result, nil
}

func (i impl) uploadFile(ctx context.Context, file *multipart.FileHeader) (string, error) {
	reader, err := file.Open()
	if err != nil {
		return "", errors.Wrapf(err, "ошибка чтения файла %v", file.Filename)
	}
	defer reader.Close()
	return i.fileStorage.UploadReferenceFile(ctx, file.Filename, file.Header.Get("Content-Type"), reader, file.Size)
}

func (i impl) SendProjectRequest(ctx context.Context, payload projectrequestapimodels.ProjectRequest, files []projectrequestapimodels.UploadedFile) (string, error) {
	logger := log.WithFields(log.Fields{
		"project_name": payload.ProjectName,
		"client_email": payload.ClientEmail,
		"files":        len(files),
	})
	if err := payload.Validate(); err != nil {
		return "", classify(ErrValidation, err)
	}
	payload.ClientEmail = payload.NormalizedClientEmail()

	now := i.cfg.Now()
	tplData := i.getTemplateData(payload, files, now)
	html, err := i.templates.BuildProjectRequestEmail(tplData)
	if err != nil {
		logger.WithError(err).Error("ошибка формирования письма по заявке")
		return "", err
	}

	msg := smtp.Message{
		FromName: i.cfg.Agency.Name,
		From:     i.cfg.SenderEmail,
		To:       payload.ClientEmail,
		Subject:  i.templates.GetProjectRequestTitle(payload.ProjectName),
		Html:     html,
	}
	if i.cfg.AdminEmail != "" {
		msg.Cc = []string{i.cfg.AdminEmail}
	}
	if i.cfg.AttachPdf {
		pdfFile, err := pdfexport.GenerateInvoice(tplData)
		if err != nil {
			// письмо уходит и без вложения
			logger.WithError(err).Warn("не удалось сформировать PDF счета")
		} else {
			msg.Attachments = append(msg.Attachments, models.File{
				FileName:    pdfexport.GetInvoiceFileName(tplData.InvoiceNumber),
				ContentType: "application/pdf",
				Body:        pdfFile,
			})
		}
	}

	messageID, err := i.mailer.SendHtmlEMail(ctx, msg)
	if err != nil {
		if errors.Is(err, smtp.ErrNotConfigured) {
			return "", classify(ErrConfiguration, err)
		}
		return "", classify(ErrTransport, err)
	}
	logger.
		WithField("invoice_number", tplData.InvoiceNumber).
		WithField("message_id", messageID).
		Info("заявка на проект отправлена")
	return messageID, nil
}

func (i impl) getTemplateData(payload projectrequestapimodels.ProjectRequest, files []projectrequestapimodels.UploadedFile, now time.Time) models.ProjectRequestTemplateData {
	return models.ProjectRequestTemplateData{
		ProjectName:        payload.ProjectName,
		ProjectType:        payload.ProjectType,
		ProjectDescription: payload.ProjectDescription,
		Timeline:           payload.Timeline,
		Budget:             payload.Budget,
		ReferenceFiles:     GetReferenceFiles(files),
		ClientName:         payload.ClientName,
		ClientEmail:        payload.ClientEmail,
		ClientPhone:        payload.ClientPhone,
		ClientCompany:      payload.ClientCompany,
		AdditionalInfo:     payload.AdditionalInfo,
		SubmissionDate:     GetSubmissionDate(now),
		InvoiceNumber:      GetInvoiceNumber(now),
		Agency:             i.cfg.Agency,
	}
}

func GetReferenceFiles(files []projectrequestapimodels.UploadedFile) string {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		urls = append(urls, file.URL)
	}
	urls = helpers.NonEmpty(urls...)
	if len(urls) == 0 {
		return noReferenceFiles
	}
	return strings.Join(urls, referenceFilesJoin)
}

func GetSubmissionDate(now time.Time) string {
	return now.Format(submissionDateTpl)
}

// GetInvoiceNumber INV- и последние 6 цифр unix-времени в миллисекундах
func GetInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%06d", now.UnixMilli()%1000000)
}
