package pdf

// Template names accepted by the renderer
const (
	TemplateBase    = "base"
	TemplateBranded = "branded"
)

// baseTemplate is the minimalist black-and-white layout
const baseTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.DocLabel}} {{.Number}}</title>
    <style>
        @page {
            margin: 0;
            size: A4;
        }
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }
        body {
            font-family: {{.FontFamily}}, sans-serif;
            margin: 0;
            padding: {{.Padding}}px;
            color: #000;
            background: white;
            font-size: 12px;
            line-height: 1.6;
        }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            align-items: flex-start;
        }
        .client-info {
            flex: 1;
        }
        .client-info h1 {
            font-size: 16px;
            font-weight: bold;
            margin-bottom: 10px;
            color: #000;
        }
        .client-info p {
            font-size: 12px;
            line-height: 1.6;
            color: #000;
        }
        .company-info {
            text-align: right;
            flex: 1;
        }
        .company-info p {
            font-size: 11px;
            line-height: 1.6;
            color: #000;
        }
        .doc-title {
            margin: 25px 0;
        }
        .doc-title h2 {
            font-size: 18px;
            font-weight: bold;
            margin-bottom: 10px;
            color: #000;
        }
        .doc-title p {
            font-size: 12px;
            line-height: 1.6;
        }
        table {
            width: 100%;
            border-collapse: collapse;
            margin: 20px 0;
            font-size: 12px;
        }
        th, td {
            padding: 10px 8px;
            text-align: left;
            border-bottom: 1px solid #ddd;
        }
        th {
            background-color: transparent;
            font-weight: bold;
            color: #000;
            border-bottom: 1px solid #000;
            padding-bottom: 8px;
        }
        tbody tr {
            border-bottom: 1px solid #ddd;
        }
        tfoot tr {
            border-top: 1px solid #ddd;
        }
        tfoot tr:last-child {
            border-top: 2px solid #000;
            font-weight: bold;
        }
        .total-row {
            font-weight: bold;
            background-color: transparent;
        }
        .section-row {
            background-color: transparent;
            font-weight: bold;
        }
        .section-row td {
            padding-top: 15px;
            padding-bottom: 8px;
        }
        .description-cell {
            line-height: 1.6;
        }
        .description-cell p {
            margin: 4px 0;
        }
        .description-cell strong {
            font-weight: bold;
        }
        .description-cell em {
            font-style: italic;
        }
        .description-cell h1, .description-cell h2, .description-cell h3 {
            font-weight: bold;
            margin: 8px 0 4px 0;
        }
        .description-cell h1 {
            font-size: 18px;
        }
        .description-cell h2 {
            font-size: 16px;
        }
        .description-cell h3 {
            font-size: 14px;
        }
        .description-cell ul, .description-cell ol {
            margin: 4px 0;
            padding-left: 20px;
        }
        .description-cell code {
            background-color: #f5f5f5;
            padding: 2px 4px;
            border-radius: 3px;
            font-size: 11px;
        }
        .description-cell blockquote {
            border-left: 3px solid #ddd;
            padding-left: 10px;
            margin: 4px 0;
            font-style: italic;
        }
        .description-cell a {
            color: #2563eb;
            text-decoration: underline;
        }
        .payment-info {
            margin-top: 25px;
            padding: 0;
            font-size: 11px;
            color: #000;
            line-height: 1.6;
        }
        .payment-info p {
            margin: 3px 0;
        }
        .notes {
            margin-top: 20px;
            font-size: 11px;
            line-height: 1.6;
        }
        .penalty-text {
            margin-top: 10px;
            font-size: 11px;
            color: #000;
            line-height: 1.6;
        }
        .vat-exempt {
            font-size: 11px;
            color: #000;
            text-align: right;
            margin-top: 10px;
            font-style: italic;
        }
        .signature-section {
            margin-top: 40px;
            display: flex;
            justify-content: space-between;
            font-size: 11px;
        }
        .signature-box {
            border: 1px solid #ddd;
            padding: 10px;
            width: 45%;
            min-height: 80px;
        }
        .footer-text {
            text-align: center;
            margin-top: 40px;
            padding-top: 15px;
            border-top: 1px solid #ddd;
            color: #666;
            font-size: 11px;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="client-info">
            <h1>{{.Client.Name}}</h1>
            <p>
                {{.Client.Address}}<br>
                {{.Client.PostalCode}} {{.Client.City}}<br>
                {{.Client.Country}}
            </p>
        </div>
        <div class="company-info">
            {{if .Company.Description}}
            <p>
                {{.Company.Description}}<br>
            </p>
            {{end}}
            <p>
                {{.Company.Address}}<br>
                {{.Company.PostalCode}} {{.Company.City}}<br>
                {{.Company.Country}}<br>
                {{if .Company.Phone}}Mobile : {{.Company.Phone}}<br>{{end}}
                {{if .Company.Email}}Email : {{.Company.Email}}<br>{{end}}
                {{if .Company.LegalID}}{{.Labels.LegalID}} : {{.Company.LegalID}}<br>{{end}}
                {{if .Company.VatID}}{{.Labels.VatID}} : {{.Company.VatID}}{{end}}
            </p>
        </div>
    </div>
    <div class="doc-title">
        <h2>{{.DocLabel}} N° {{.Number}}</h2>
        {{if .Title}}<p>{{.Title}}</p>{{end}}
        <p>
            Date d'émission : {{.Date}}<br>
            {{if .ValidUntil}}{{.Labels.ValidUntil}} : {{.ValidUntil}}<br>{{end}}
            {{if .DueDate}}Échéance : {{.DueDate}}<br>{{end}}
            {{if .PaymentMethod}}
            {{.Labels.PaymentMethod}} : {{.PaymentMethod}}
            {{else}}
            {{.Labels.PaymentMethod}} : À réception
            {{end}}
        </p>
    </div>
    <table>
        <thead>
            <tr>
                <th>{{.Labels.Description}}</th>
                {{if .ShowVAT}}
                <th style="text-align: center;">{{.Labels.VatRate}}</th>
                {{end}}
                <th style="text-align: right;">Montant HT</th>
            </tr>
        </thead>
        <tbody>
            {{range .Items}}
            {{if .IsSection}}
            <tr class="section-row">
                <td colspan="{{$.ColSpan}}">{{.Description}}</td>
            </tr>
            {{else}}
            <tr>
                <td class="description-cell">{{.Description}}</td>
                {{if $.ShowVAT}}
                <td style="text-align: center;">{{.VatRate}}%</td>
                {{end}}
                <td style="text-align: right;">{{.UnitPrice}} {{$.Currency}}</td>
            </tr>
            {{end}}
            {{end}}
        </tbody>
        <tfoot>
            <tr>
                <td><strong>{{.Labels.Total}}</strong></td>
                {{if .ShowVAT}}
                <td></td>
                {{end}}
                <td style="text-align: right;"><strong>{{.TotalHT}} {{.Currency}}</strong></td>
            </tr>
            {{if .ShowVAT}}
            <tr>
                <td><strong>{{.Labels.Vat}}</strong></td>
                <td></td>
                <td style="text-align: right;"><strong>{{.TotalVAT}} {{.Currency}}</strong></td>
            </tr>
            <tr>
                <td><strong>{{.Labels.GrandTotal}}</strong></td>
                <td></td>
                <td style="text-align: right;"><strong>{{.TotalTTC}} {{.Currency}}</strong></td>
            </tr>
            {{else}}
            <tr class="total-row">
                <td><strong>{{.Labels.GrandTotal}}</strong></td>
                <td style="text-align: right;"><strong>{{.TotalTTC}} {{.Currency}}</strong></td>
            </tr>
            {{end}}
        </tfoot>
    </table>

    {{if .PaymentDetails}}
    <div class="payment-info">
        {{.PaymentDetails}}
    </div>
    {{end}}

    {{if .NoteExists}}
    <div class="notes">
        <strong>{{.Labels.Notes}}</strong><br>
        {{.Notes}}
    </div>
    {{end}}

    <div class="penalty-text">
        En cas de retard de paiement, une pénalité de 3 fois le taux d'intérêt légal sera appliquée, à laquelle s'ajoutera une indemnité forfaitaire pour frais de recouvrement de 40€.
    </div>

    {{if .VatExemptText}}
    <div class="vat-exempt">{{.VatExemptText}}</div>
    {{end}}

    {{if .ShowSignatureSection}}
    <div class="signature-section">
        {{if .ShowAcceptance}}
        <div class="signature-box">
            Bon pour accord<br>
            Date :
        </div>
        {{end}}
        {{if .ShowSignature}}
        <div class="signature-box">
            Signature :
        </div>
        {{end}}
    </div>
    {{end}}

    {{if .FooterText}}
    <div class="footer-text">{{.FooterText}} - Page 1/1</div>
    {{end}}
</body>
</html>
`

// brandedTemplate is the colored layout driven by the company's configured
// colors and logo
const brandedTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.DocLabel}} {{.Number}}</title>
    <style>
        @page {
            margin: 0;
            size: A4;
        }
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }
        body {
            font-family: {{.FontFamily}}, sans-serif;
            margin: 0;
            padding: {{.Padding}}px;
            color: #1a1a1a;
            background: white;
            font-size: 12px;
            line-height: 1.6;
        }
        .band {
            height: 6px;
            background-color: {{.PrimaryColor}};
            margin: -{{.Padding}}px -{{.Padding}}px 30px -{{.Padding}}px;
        }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            align-items: flex-start;
        }
        .logo img {
            max-height: 60px;
        }
        .company-info {
            text-align: right;
        }
        .company-info h1 {
            font-size: 16px;
            color: {{.PrimaryColor}};
            margin-bottom: 6px;
        }
        .company-info p {
            font-size: 11px;
            line-height: 1.6;
        }
        .doc-title h2 {
            font-size: 22px;
            color: {{.PrimaryColor}};
            margin-bottom: 6px;
        }
        .doc-meta {
            font-size: 12px;
            margin-bottom: 20px;
        }
        .client-block {
            margin: 20px 0;
            padding: 12px 16px;
            background-color: {{.SecondaryColor}};
            color: {{.TableTextColor}};
            border-radius: 4px;
            display: inline-block;
            min-width: 40%;
        }
        .client-block h3 {
            font-size: 13px;
            margin-bottom: 6px;
        }
        table {
            width: 100%;
            border-collapse: collapse;
            margin: 20px 0;
            font-size: 12px;
        }
        th, td {
            padding: 10px 8px;
            text-align: left;
            border-bottom: 1px solid #e5e5e5;
        }
        thead th {
            background-color: {{.SecondaryColor}};
            color: {{.TableTextColor}};
            font-weight: bold;
        }
        .section-row td {
            font-weight: bold;
            padding-top: 15px;
            color: {{.PrimaryColor}};
        }
        tfoot tr:last-child td {
            border-top: 2px solid {{.PrimaryColor}};
            font-weight: bold;
        }
        .description-cell p {
            margin: 4px 0;
        }
        .payment-info, .notes, .penalty-text {
            margin-top: 20px;
            font-size: 11px;
            line-height: 1.6;
        }
        .vat-exempt {
            font-size: 11px;
            text-align: right;
            margin-top: 10px;
            font-style: italic;
        }
        .signature-section {
            margin-top: 40px;
            display: flex;
            justify-content: space-between;
            font-size: 11px;
        }
        .signature-box {
            border: 1px solid {{.SecondaryColor}};
            padding: 10px;
            width: 45%;
            min-height: 80px;
        }
        .footer-text {
            text-align: center;
            margin-top: 40px;
            padding-top: 15px;
            border-top: 1px solid #e5e5e5;
            color: #666;
            font-size: 11px;
        }
    </style>
</head>
<body>
    <div class="band"></div>
    <div class="header">
        <div class="logo">
            {{if .IncludeLogo}}<img src="data:image/png;base64,{{.LogoB64}}" alt="">{{end}}
        </div>
        <div class="company-info">
            <h1>{{.Company.Name}}</h1>
            <p>
                {{.Company.Address}}<br>
                {{.Company.PostalCode}} {{.Company.City}}<br>
                {{.Company.Country}}<br>
                {{if .Company.Phone}}Mobile : {{.Company.Phone}}<br>{{end}}
                {{if .Company.Email}}Email : {{.Company.Email}}<br>{{end}}
                {{if .Company.LegalID}}{{.Labels.LegalID}} : {{.Company.LegalID}}<br>{{end}}
                {{if .Company.VatID}}{{.Labels.VatID}} : {{.Company.VatID}}{{end}}
            </p>
        </div>
    </div>
    <div class="doc-title">
        <h2>{{.DocLabel}} N° {{.Number}}</h2>
        {{if .Title}}<p>{{.Title}}</p>{{end}}
    </div>
    <div class="doc-meta">
        {{.Labels.Date}} : {{.Date}}<br>
        {{if .ValidUntil}}{{.Labels.ValidUntil}} : {{.ValidUntil}}<br>{{end}}
        {{if .DueDate}}Échéance : {{.DueDate}}<br>{{end}}
        {{if .PaymentMethod}}{{.Labels.PaymentMethod}} : {{.PaymentMethod}}{{else}}{{.Labels.PaymentMethod}} : À réception{{end}}
    </div>
    <div class="client-block">
        <h3>{{.Labels.QuoteFor}}</h3>
        {{.Client.Name}}<br>
        {{.Client.Address}}<br>
        {{.Client.PostalCode}} {{.Client.City}}<br>
        {{.Client.Country}}
    </div>
    <table>
        <thead>
            <tr>
                <th>{{.Labels.Description}}</th>
                {{if .ShowVAT}}
                <th style="text-align: center;">{{.Labels.VatRate}}</th>
                {{end}}
                <th style="text-align: right;">Montant HT</th>
            </tr>
        </thead>
        <tbody>
            {{range .Items}}
            {{if .IsSection}}
            <tr class="section-row">
                <td colspan="{{$.ColSpan}}">{{.Description}}</td>
            </tr>
            {{else}}
            <tr>
                <td class="description-cell">{{.Description}}</td>
                {{if $.ShowVAT}}
                <td style="text-align: center;">{{.VatRate}}%</td>
                {{end}}
                <td style="text-align: right;">{{.UnitPrice}} {{$.Currency}}</td>
            </tr>
            {{end}}
            {{end}}
        </tbody>
        <tfoot>
            <tr>
                <td><strong>{{.Labels.Total}}</strong></td>
                {{if .ShowVAT}}
                <td></td>
                {{end}}
                <td style="text-align: right;"><strong>{{.TotalHT}} {{.Currency}}</strong></td>
            </tr>
            {{if .ShowVAT}}
            <tr>
                <td><strong>{{.Labels.Vat}}</strong></td>
                <td></td>
                <td style="text-align: right;"><strong>{{.TotalVAT}} {{.Currency}}</strong></td>
            </tr>
            <tr>
                <td><strong>{{.Labels.GrandTotal}}</strong></td>
                <td></td>
                <td style="text-align: right;"><strong>{{.TotalTTC}} {{.Currency}}</strong></td>
            </tr>
            {{else}}
            <tr>
                <td><strong>{{.Labels.GrandTotal}}</strong></td>
                <td style="text-align: right;"><strong>{{.TotalTTC}} {{.Currency}}</strong></td>
            </tr>
            {{end}}
        </tfoot>
    </table>

    {{if .PaymentDetails}}
    <div class="payment-info">
        {{.PaymentDetails}}
    </div>
    {{end}}

    {{if .NoteExists}}
    <div class="notes">
        <strong>{{.Labels.Notes}}</strong><br>
        {{.Notes}}
    </div>
    {{end}}

    <div class="penalty-text">
        En cas de retard de paiement, une pénalité de 3 fois le taux d'intérêt légal sera appliquée, à laquelle s'ajoutera une indemnité forfaitaire pour frais de recouvrement de 40€.
    </div>

    {{if .VatExemptText}}
    <div class="vat-exempt">{{.VatExemptText}}</div>
    {{end}}

    {{if .ShowSignatureSection}}
    <div class="signature-section">
        {{if .ShowAcceptance}}
        <div class="signature-box">
            Bon pour accord<br>
            Date :
        </div>
        {{end}}
        {{if .ShowSignature}}
        <div class="signature-box">
            Signature :
        </div>
        {{end}}
    </div>
    {{end}}

    {{if .FooterText}}
    <div class="footer-text">{{.FooterText}} - Page 1/1</div>
    {{end}}
</body>
</html>
`
