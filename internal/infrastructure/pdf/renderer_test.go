package pdf

import (
	"strings"
	"testing"

	"github.com/facturio/facturio-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererBaseTemplate(t *testing.T) {
	doc := testDocument()
	model, err := Project(doc)
	require.NoError(t, err)

	html, err := NewRenderer().Render(model, TemplateBase)
	require.NoError(t, err)

	assert.Contains(t, html, "Devis N° 42")
	assert.Contains(t, html, "ACME SARL")
	assert.Contains(t, html, "Atelier Dupont")
	assert.Contains(t, html, "200,00 EUR")
	assert.Contains(t, html, "40,00 EUR")
	assert.Contains(t, html, "240,00 EUR")
	assert.Contains(t, html, "20%")
	assert.Contains(t, html, "size: A4")
	assert.Contains(t, html, "margin: 0")
	assert.Contains(t, html, "14/03/2026")
}

func TestRendererIsDeterministic(t *testing.T) {
	doc := testDocument()
	model, err := Project(doc)
	require.NoError(t, err)

	r := NewRenderer()
	first, err := r.Render(model, TemplateBase)
	require.NoError(t, err)
	second, err := r.Render(model, TemplateBase)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRendererExemptionHidesVatColumn(t *testing.T) {
	doc := testDocument()
	doc.VatExemptionReason = enum.VatExemptionFranceNoVat
	doc.Company.ExemptVat = true
	model, err := Project(doc)
	require.NoError(t, err)

	html, err := NewRenderer().Render(model, TemplateBase)
	require.NoError(t, err)

	assert.NotContains(t, html, "20%")
	assert.Contains(t, html, "TVA non applicable, art. 293 B du CGI")
	// TTC equals HT, the VAT line disappears
	assert.Contains(t, html, "200,00 EUR")
	assert.NotContains(t, html, "40,00 EUR")
}

func TestRendererSectionRowSpansTable(t *testing.T) {
	doc := testDocument()
	doc.Items = append(doc.Items, doc.Items[0])
	doc.Items[0].Description = "## Phase 1"
	doc.Items[0].Type = enum.ItemTypeSection
	model, err := Project(doc)
	require.NoError(t, err)

	html, err := NewRenderer().Render(model, TemplateBase)
	require.NoError(t, err)

	assert.Contains(t, html, `colspan="3"`)
	assert.Contains(t, html, "Phase 1")
}

func TestRendererUnknownTemplateFallsBack(t *testing.T) {
	doc := testDocument()
	model, err := Project(doc)
	require.NoError(t, err)

	r := NewRenderer()
	fallback, err := r.Render(model, "does-not-exist")
	require.NoError(t, err)
	base, err := r.Render(model, TemplateBase)
	require.NoError(t, err)

	assert.Equal(t, base, fallback)
}

func TestRendererBrandedTemplate(t *testing.T) {
	doc := testDocument()
	doc.Company.PDFConfig.PrimaryColor = "#1e3a8a"
	doc.Company.PDFConfig.SecondaryColor = "#1e3a8a"
	model, err := Project(doc)
	require.NoError(t, err)

	html, err := NewRenderer().Render(model, TemplateBranded)
	require.NoError(t, err)

	assert.Contains(t, html, "#1e3a8a")
	// Dark table background flips the header text to white
	assert.Contains(t, html, "#ffffff")
	assert.Contains(t, html, "240,00 EUR")
}

func TestRendererEscapesClientInput(t *testing.T) {
	doc := testDocument()
	doc.Client.Name = `<script>alert("x")</script>`
	model, err := Project(doc)
	require.NoError(t, err)

	html, err := NewRenderer().Render(model, TemplateBase)
	require.NoError(t, err)

	assert.False(t, strings.Contains(html, `<script>alert`))
}
