package pdf

import (
	"bytes"
	"fmt"
	"html/template"
)

// Renderer turns a RenderModel into a standalone HTML page using one of the
// built-in layouts
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses the built-in templates
func NewRenderer() *Renderer {
	return &Renderer{
		templates: map[string]*template.Template{
			TemplateBase:    template.Must(template.New(TemplateBase).Parse(baseTemplate)),
			TemplateBranded: template.Must(template.New(TemplateBranded).Parse(brandedTemplate)),
		},
	}
}

// Render executes the named template against the model. An unknown template
// name falls back to the base layout.
func (r *Renderer) Render(model *RenderModel, templateName string) (string, error) {
	tmpl, ok := r.templates[templateName]
	if !ok {
		tmpl = r.templates[TemplateBase]
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, model); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return buf.String(), nil
}
