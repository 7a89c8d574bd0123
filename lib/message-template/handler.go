package messagetemplate

import (
	"project-request-backend/models"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Provider формирует письмо-счет по заявке на проект.
// Номер счета и дату заявки передает вызывающая сторона, поэтому результат детерминирован.
type Provider interface {
	BuildProjectRequestEmail(data models.ProjectRequestTemplateData) (html string, err error)
	GetProjectRequestTitle(projectName string) string
	ThemeName() string
}

func NewHandler(themeName string) Provider {
	theme, ok := GetTheme(themeName)
	// пустое имя - тема по умолчанию без предупреждения
	if !ok && strings.TrimSpace(themeName) != "" {
		log.WithField("theme", themeName).Warn("неизвестная тема письма, используется тема по умолчанию")
	}
	return &impl{theme: theme}
}

type impl struct {
	theme Theme
}

func (i impl) BuildProjectRequestEmail(data models.ProjectRequestTemplateData) (string, error) {
	return buildProjectRequestMsg(data, i.theme)
}

func (i impl) GetProjectRequestTitle(projectName string) string {
	return GetProjectRequestTitle(projectName)
}

func (i impl) ThemeName() string {
	return i.theme.Name
}
