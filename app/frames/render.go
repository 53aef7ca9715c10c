package frames

import (
	"html/template"
	"strings"
)

// frameTmpl emits the fc:frame meta-tag document Farcaster clients parse.
// The body is a minimal fallback for regular browsers.
var frameTmpl = template.Must(template.New("frame").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width" />
    <meta property="fc:frame" content="vNext" />
    <meta property="fc:frame:image" content="{{.ImageURL}}" />
    <meta property="fc:frame:post_url" content="{{.PostURL}}" />
    {{- range $i, $label := .Buttons}}
    <meta property="fc:frame:button:{{inc $i}}" content="{{$label}}" />
    {{- end}}
    {{- if .InputPrompt}}
    <meta property="fc:frame:input:text" content="{{.InputPrompt}}" />
    {{- end}}
    <meta property="og:image" content="{{.ImageURL}}" />
    <title>{{.Title}}</title>
  </head>
  <body>
    <div style="padding: 2rem; font-family: monospace; text-align: center;">
      <h1>🎯 iWager</h1>
      <p>{{.Title}}</p>
    </div>
  </body>
</html>`))

// RenderFrame produces the HTML document for a card view
func RenderFrame(view CardView) string {
	var sb strings.Builder
	if err := frameTmpl.Execute(&sb, view); err != nil {
		return ""
	}
	return sb.String()
}
