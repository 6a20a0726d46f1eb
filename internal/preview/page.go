package preview

import (
	"html/template"

	"github.com/opencode-ai/neumorph/internal/neumorph"
)

type sliderData struct {
	Name  string
	Label string
	Value int
	Min   int
	Max   int
}

type pageData struct {
	Params    neumorph.ParameterSet
	Inline    template.CSS
	CSS       string
	Sliders   []sliderData
	PageClass string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en" class="{{.PageClass}}">
<head>
<meta charset="utf-8">
<title>Neumorphism CSS Generator</title>
<style>
body { margin: 0; font-family: system-ui, sans-serif; background: #e0e0e0; color: #111827; transition: background-color 0.3s; }
.dark body { background: #111827; color: #f3f4f6; }
main { max-width: 72rem; margin: 0 auto; padding: 3rem 1rem; }
.card { display: flex; flex-wrap: wrap; background: #ffffff; border-radius: 0.5rem; overflow: hidden; }
.dark .card { background: #1f2937; }
.stage { flex: 1 1 24rem; display: flex; align-items: center; justify-content: center; padding: 2rem; min-height: 28rem; background: #ebeaea; }
.dark .stage { background: #374151; }
.controls { flex: 1 1 24rem; padding: 2rem; }
label { display: block; font-size: 0.875rem; font-weight: 500; margin: 1rem 0 0.5rem; }
.field { display: flex; align-items: center; gap: 1rem; }
input[type=range] { flex: 1; }
input[type=number] { width: 4rem; }
pre { background: #1f2937; color: #d1d5db; padding: 1rem; border-radius: 0.5rem; white-space: pre-wrap; }
</style>
</head>
<body>
<main>
<h1>Neumorphism CSS Generator</h1>
<div class="card">
  <div class="stage"><div class="preview-box" style="{{.Inline}}"></div></div>
  <form class="controls" method="get" action="/">
    {{range .Sliders}}
    <label for="{{.Name}}">{{.Label}}</label>
    <div class="field">
      <input type="range" min="{{.Min}}" max="{{.Max}}" value="{{.Value}}" aria-label="{{.Label}}" oninput="this.nextElementSibling.value = this.value" onchange="this.form.submit()">
      <input type="number" id="{{.Name}}" name="{{.Name}}" min="{{.Min}}" max="{{.Max}}" value="{{.Value}}" onchange="this.form.submit()">
    </div>
    {{end}}
    <label for="color">Color</label>
    <input type="color" id="color" name="color" value="{{.Params.Color}}" onchange="this.form.submit()">
    <label><input type="checkbox" name="dark" {{if .Params.DarkMode}}checked{{end}} onchange="this.form.submit()"> Dark mode</label>
    <input type="hidden" name="dark" value="false">
    <h2>Generated CSS</h2>
    <pre>{{.CSS}}</pre>
  </form>
</div>
</main>
</body>
</html>
`))
