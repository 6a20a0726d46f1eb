package preview

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/opencode-ai/neumorph/internal/editor"
	"github.com/opencode-ai/neumorph/internal/neumorph"
)

// query parameter names accepted by the page and the API.
var fieldParams = []struct {
	name  string
	field editor.Field
}{
	{"size", editor.FieldSize},
	{"radius", editor.FieldCornerRadius},
	{"blur", editor.FieldBlur},
	{"intensity", editor.FieldIntensity},
}

// StyleResponse is the payload of GET /api/v1/style.
type StyleResponse struct {
	Params  neumorph.ParameterSet `json:"params"`
	Style   neumorph.Style        `json:"style"`
	CSS     string                `json:"css"`
	CSSLine string                `json:"css_line"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) styleHandler(w http.ResponseWriter, r *http.Request) {
	ed, err := s.editorFromQuery(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	style := ed.Style()
	writeJSON(w, http.StatusOK, StyleResponse{
		Params:  ed.Params(),
		Style:   style,
		CSS:     style.CSS(),
		CSSLine: style.CSSLine(),
	})
}

func (s *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	ed, err := s.editorFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := ed.Params()
	style := ed.Style()
	data := pageData{
		Params:    params,
		Inline:    template.CSS(style.InlineCSS()),
		CSS:       style.CSS(),
		Sliders:   make([]sliderData, 0, len(fieldParams)),
		PageClass: "light",
	}
	if params.DarkMode {
		data.PageClass = "dark"
	}
	for _, fp := range fieldParams {
		bounds := fp.field.Bounds()
		data.Sliders = append(data.Sliders, sliderData{
			Name:  fp.name,
			Label: fp.field.Label(),
			Value: fp.field.Value(params),
			Min:   bounds.Min,
			Max:   bounds.Max,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error().Err(err).Msg("render preview page")
	}
}

// editorFromQuery starts from the server defaults and applies query values.
// Numbers are clamped to the slider ranges; malformed values are errors.
func (s *Server) editorFromQuery(query url.Values) (*editor.Editor, error) {
	ed := editor.New(s.opts.Defaults)

	for _, fp := range fieldParams {
		raw := strings.TrimSpace(query.Get(fp.name))
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer", fp.name)
		}
		ed.Set(fp.field, value)
	}

	if raw := query.Get("color"); raw != "" {
		if err := ed.SetColor(raw); err != nil {
			return nil, err
		}
	}

	if raw := strings.TrimSpace(query.Get("dark")); raw != "" {
		dark, err := parseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("dark must be a boolean")
		}
		ed.SetDarkMode(dark)
	}

	return ed, nil
}

// parseBool accepts strconv booleans plus the "on" sent by HTML checkboxes.
func parseBool(raw string) (bool, error) {
	if strings.EqualFold(raw, "on") {
		return true, nil
	}
	return strconv.ParseBool(raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
