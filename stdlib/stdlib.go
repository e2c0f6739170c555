package stdlib

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/reconquest/karma-go"
)

type Lib struct {
	Templates *template.Template
	Vars      map[string]interface{}
}

func New() (*Lib, error) {
	var (
		lib Lib
		err error
	)

	lib.Templates, err = templates()
	if err != nil {
		return nil, err
	}

	lib.Vars = map[string]interface{}{}

	return &lib, nil
}

func templates() (*template.Template, error) {
	text := func(line ...string) string {
		return strings.Join(line, ``)
	}

	templates := template.New(`stdlib`).Funcs(
		template.FuncMap{
			// Weather degrees come out of the backup as float64, render
			// them without trailing zeros.
			"degrees": func(value float64) string {
				return strconv.FormatFloat(value, 'f', -1, 64)
			},
		},
	)

	var err error

	for name, body := range map[string]string{
		// This template is the whole document shell. Body is already
		// rendered HTML.
		`html:page`: text(
			`<!DOCTYPE html>{{printf "\n"}}`,
			`<html>{{printf "\n"}}`,
			`<head>{{printf "\n"}}`,
			/**/ `<meta charset="UTF-8"/>{{printf "\n"}}`,
			/**/ `<link rel="stylesheet" href="{{ .Stylesheet }}" type="text/css"/>{{printf "\n"}}`,
			/**/ `<title>{{ .Title | html }}</title>{{printf "\n"}}`,
			`</head>{{printf "\n"}}`,
			`<body>{{printf "\n"}}`,
			/**/ `<header><h1>{{ .Title | html }}</h1></header>{{printf "\n"}}`,
			/**/ `<main>{{printf "\n"}}{{ .Body }}</main>{{printf "\n"}}`,
			/**/ `{{ if .Footer }}<footer>{{ .Footer | html }}</footer>{{printf "\n"}}{{ end }}`,
			`</body>{{printf "\n"}}`,
			`</html>{{printf "\n"}}`,
		),

		// This template is used for a single journal entry. The heading is
		// the curated title when the entry carries one, the date otherwise.
		`html:entry`: text(
			`<article class="entry" id="{{ .Anchor }}">{{printf "\n"}}`,
			/**/ `<h1>{{ if .Title }}{{ .Title | html }}{{ else }}{{ .Date | html }}{{ end }}</h1>{{printf "\n"}}`,
			/**/ `{{ if .Title }}<h5 class="date">{{ .Date | html }}</h5>{{printf "\n"}}{{ end }}`,
			/**/ `{{ if .Address }}<h5>{{ if .MapURL }}<a href="{{ .MapURL | html }}">{{ .Address | html }}</a>{{ else }}{{ .Address | html }}{{ end }}</h5>{{printf "\n"}}`,
			/**/ `{{ else if .Location }}<h5><a href="{{ .MapURL | html }}">{{ .Location | html }}</a></h5>{{printf "\n"}}{{ end }}`,
			/**/ `{{ template "html:weather" .Weather }}`,
			/**/ `{{ if .Photos }}<div class="photos">`,
			/**/ /**/ `{{ range .Photos }}{{ template "html:image" . }}{{ end }}`,
			/**/ `</div>{{printf "\n"}}{{ end }}`,
			/**/ `<div class="text">{{printf "\n"}}{{ .Body }}</div>{{printf "\n"}}`,
			/**/ `{{ template "html:tags" .Tags }}`,
			`</article>{{printf "\n"}}`,
		),

		`html:image`: text(
			`<img src="{{ .Src }}"`,
			`{{ if .Width }} width="{{ .Width }}"{{ end }}`,
			`{{ if .Alt }} alt="{{ .Alt }}"{{ end }}`,
			`/>`,
		),

		`html:tags`: text(
			`{{ if . }}<p class="tags">`,
			`{{ range . }}<code>#{{ . | html }}</code> {{ end }}`,
			`</p>{{printf "\n"}}{{ end }}`,
		),

		`html:weather`: text(
			`{{ if .Description }}<p class="weather">`,
			`{{ degrees .DegreeC }}&deg;C, {{ .Description | html }}`,
			`</p>{{printf "\n"}}{{ end }}`,
		),

		// This template is used for the date index at the top of the page.
		`html:nav`: text(
			`{{ if . }}<nav class="index"><ul>`,
			`{{ range . }}<li><a href="#{{ .Anchor }}">{{ .Label | html }}</a></li>{{ end }}`,
			`</ul></nav>{{ end }}`,
		),
	} {
		templates, err = templates.New(name).Parse(body)
		if err != nil {
			return nil, karma.Describe("template", name).Format(
				err,
				"unable to parse template",
			)
		}
	}

	return templates, nil
}
