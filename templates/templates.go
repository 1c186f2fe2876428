package templates

import (
	"embed"
	"errors"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Load parses the page templates for gin's HTML renderer.
func Load() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"selected": func(current, option string) bool { return current == option },
		"dict":     dict,
	}).ParseFS(files, "*.tmpl")
}

func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict expects key/value pairs")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, errors.New("dict keys must be strings")
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
