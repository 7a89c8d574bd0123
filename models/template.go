package models

import "strings"

// AgencyBranding реквизиты агентства для шапки и подвала письма
type AgencyBranding struct {
	Name    string
	Website string
	Phone   string
	Email   string
}

// ProjectRequestTemplateData данные для шаблона письма-счета.
// InvoiceNumber и SubmissionDate вычисляются вызывающей стороной.
type ProjectRequestTemplateData struct {
	ProjectName        string
	ProjectType        string
	ProjectDescription string
	Timeline           string
	Budget             string
	ReferenceFiles     string
	ClientName         string
	ClientEmail        string
	ClientPhone        string
	ClientCompany      string
	AdditionalInfo     string
	SubmissionDate     string
	InvoiceNumber      string
	Agency             AgencyBranding
}

type File struct {
	FileName    string
	ContentType string
	Body        []byte
}

const (
	DefaultClientPhone    = "N/A"
	DefaultClientCompany  = "N/A"
	DefaultAdditionalInfo = "None"
	DefaultReferenceFiles = "None provided"
	DefaultBudget         = "0"
)

// WithDefaults подставляет заглушки вместо пустых необязательных полей
func (d ProjectRequestTemplateData) WithDefaults() ProjectRequestTemplateData {
	d.ClientPhone = orDefault(d.ClientPhone, DefaultClientPhone)
	d.ClientCompany = orDefault(d.ClientCompany, DefaultClientCompany)
	d.AdditionalInfo = orDefault(d.AdditionalInfo, DefaultAdditionalInfo)
	d.ReferenceFiles = orDefault(d.ReferenceFiles, DefaultReferenceFiles)
	d.Budget = orDefault(d.Budget, DefaultBudget)
	return d
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
