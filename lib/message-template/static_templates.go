package messagetemplate

import (
	"bytes"
	"embed"
	"html/template"
	"project-request-backend/models"
	"strings"

	"github.com/pkg/errors"
)

const (
	projectRequestTitle = "Project Request Confirmation"
	invoiceTplFile      = "static/project_request_invoice.html"
)

//go:embed static/*.html
var staticFiles embed.FS

// Theme оформление письма. Значения CSS задаются только в коде.
type Theme struct {
	Name             string
	Icon             string
	Title            string
	Subtitle         string
	Greeting         string
	ThankYou         string
	PageBackground   template.CSS
	HeaderBackground template.CSS
	TableHead        template.CSS
	Accent           template.CSS
}

const (
	ThemePremium = "premium"
	ThemeClassic = "classic"
)

var themes = map[string]Theme{
	ThemePremium: {
		Name:             ThemePremium,
		Icon:             "🧾",
		Title:            "Design Project Invoice",
		Subtitle:         "Prepared especially for you",
		Greeting:         "Here is your professionally prepared invoice summary for your project request.",
		ThankYou:         "Thank you for choosing our design services!",
		PageBackground:   "#f4f5f7",
		HeaderBackground: "linear-gradient(135deg,#4338ca,#6366f1)",
		TableHead:        "#eef2ff",
		Accent:           "#4338ca",
	},
	ThemeClassic: {
		Name:             ThemeClassic,
		Icon:             "📨",
		Title:            "Project Request Received",
		Subtitle:         "Your request summary and estimate",
		Greeting:         "Thank you for reaching out. Below is a summary of your project request and our initial estimate.",
		ThankYou:         "We will get back to you shortly.",
		PageBackground:   "#f3f4f6",
		HeaderBackground: "#111827",
		TableHead:        "#f3f4f6",
		Accent:           "#047857",
	},
}

// GetTheme возвращает тему по имени, для неизвестного имени ok=false и тема по умолчанию
func GetTheme(name string) (theme Theme, ok bool) {
	theme, ok = themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return themes[ThemePremium], false
	}
	return theme, true
}

type invoiceItem struct {
	Service string
	Qty     string
	Rate    string
	Amount  string
}

type invoiceTemplateData struct {
	models.ProjectRequestTemplateData
	Theme Theme
	Items []invoiceItem
}

func invoiceItems(budget string) []invoiceItem {
	return []invoiceItem{
		{Service: "🎨 Design Drafts", Qty: "1", Rate: "Included", Amount: "Included"},
		{Service: "📦 Final Deliverables", Qty: "1", Rate: budget, Amount: budget},
		{Service: "🔄 Revisions", Qty: "7 Days", Rate: "Included", Amount: "$0"},
	}
}

var invoiceTpl = template.Must(getTemplate(invoiceTplFile, true))

func buildProjectRequestMsg(data models.ProjectRequestTemplateData, theme Theme) (string, error) {
	data = data.WithDefaults()
	tplData := invoiceTemplateData{
		ProjectRequestTemplateData: data,
		Theme:                      theme,
		Items:                      invoiceItems(data.Budget),
	}
	buf := new(bytes.Buffer)
	err := invoiceTpl.Execute(buf, tplData)
	if err != nil {
		return "", errors.Wrap(err, "ошибка заполнения шаблона письма")
	}
	return buf.String(), nil
}

func GetProjectRequestTitle(projectName string) string {
	// перевод строки в теме письма недопустим
	projectName = strings.Join(strings.Fields(projectName), " ")
	return projectRequestTitle + " – " + projectName
}

// multiline экранирует текст и заменяет переводы строк на <br />
func multiline(text string) template.HTML {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(text), "\n", "<br />"))
}

func odd(i int) bool {
	return i%2 == 1
}

func getTemplate(filePath string, isHtml bool) (*template.Template, error) {
	tmplBody, err := getTplFile(filePath)
	if err != nil {
		return nil, err
	}
	var body string
	if isHtml {
		body = strings.Replace(string(tmplBody), "\n", "", -1)
	} else {
		body = string(tmplBody)
	}

	tpl, err := template.New("msg_body").
		Funcs(template.FuncMap{
			"multiline": multiline,
			"odd":       odd,
		}).
		Parse(body)
	if err != nil {
		return nil, err
	}
	return tpl, nil
}

func getTplFile(filePath string) ([]byte, error) {
	body, err := staticFiles.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка чтения файла шаблона %v", filePath)
	}
	return body, nil
}
