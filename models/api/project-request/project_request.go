package projectrequestapimodels

import (
	"net/mail"
	"strings"

	"github.com/pkg/errors"
)

const ReferenceFilesField = "referenceFiles"

// ProjectRequest форма заявки на проект.
// Обязательные поля не проверяются, кроме формата почты клиента: на нее уходит письмо.
type ProjectRequest struct {
	ProjectName        string `json:"projectName" form:"projectName"`
	ClientName         string `json:"clientName" form:"clientName"`
	ProjectType        string `json:"projectType" form:"projectType"`
	ProjectDescription string `json:"projectDescription" form:"projectDescription"`
	Timeline           string `json:"timeline" form:"timeline"`
	ClientEmail        string `json:"clientEmail" form:"clientEmail"`
	ClientCompany      string `json:"clientCompany" form:"clientCompany"`   // необязательное
	ClientPhone        string `json:"clientPhone" form:"clientPhone"`       // необязательное
	AdditionalInfo     string `json:"additionalInfo" form:"additionalInfo"` // необязательное
	Budget             string `json:"budget" form:"budget"`                 // необязательное
}

func (r ProjectRequest) Validate() error {
	if strings.TrimSpace(r.ClientEmail) == "" {
		return errors.New("client email is required")
	}
	addr, err := mail.ParseAddress(r.ClientEmail)
	if err != nil || addr.Name != "" {
		return errors.New("client email has invalid format")
	}
	return nil
}

// NormalizedClientEmail адрес без пробелов и обрамления, пригодный для RCPT TO
func (r ProjectRequest) NormalizedClientEmail() string {
	addr, err := mail.ParseAddress(r.ClientEmail)
	if err != nil {
		return strings.TrimSpace(r.ClientEmail)
	}
	return addr.Address
}

// UploadedFile загруженный во внешнее хранилище файл
type UploadedFile struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
}
