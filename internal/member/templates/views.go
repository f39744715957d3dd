// Package templates renders the dashboard views. Markup lives in embedded
// html/template files and is exposed to handlers as templ components.
package templates

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"

	"finitefield.org/opai-member/internal/member/templates/helpers"
)

//go:embed html/*.tmpl
var files embed.FS

var views = template.Must(template.New("views").Funcs(funcMap()).ParseFS(files, "html/*.tmpl"))

func funcMap() template.FuncMap {
	return template.FuncMap{
		"navClass":   helpers.NavClass,
		"rankClass":  helpers.RankClass,
		"toneClass":  helpers.ToneClass,
		"levelClass": helpers.LevelClass,
		"toastClass": helpers.ToastClass,
		"number": func(v int) string {
			return helpers.Number(int64(v))
		},
	}
}

// Page renders a full section page.
func Page(data PageData) templ.Component {
	return templ.FromGoHTML(views.Lookup("page"), data)
}

// Content renders only the section body, for htmx swaps into #content.
func Content(data PageData) templ.Component {
	return templ.FromGoHTML(views.Lookup("content"), data)
}

// NotFound renders the not-found view.
func NotFound(data NotFoundData) templ.Component {
	return templ.FromGoHTML(views.Lookup("notfound"), data)
}

// Toasts renders a list of notices for the toast region.
func Toasts(toasts []Toast) templ.Component {
	return templ.FromGoHTML(views.Lookup("toasts"), toasts)
}
