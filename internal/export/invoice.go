package export

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"autonom-backend/internal/domain"
)

// VATRate is the Romanian standard VAT rate applied on invoices.
const VATRate = 0.19

// Company holds the issuer block printed on every invoice.
type Company struct {
	Name    string
	Address string
	Phone   string
	Email   string
	TaxID   string
	RegNo   string
}

// Invoice is the fully resolved document handed to the template.
type Invoice struct {
	Number      string
	IssuedOn    string
	Company     Company
	ClientName  string
	ClientCNP   string
	ClientPhone string
	Vehicle     string
	PlateNumber string
	Period      string
	Status      string
	NetAmount   string
	VATAmount   string
	Total       string
}

// InvoiceNumber derives the printed invoice number from the transaction ID.
func InvoiceNumber(id int32) string {
	return fmt.Sprintf("FAC-%08d", id)
}

// BuildInvoice assembles the invoice view for a paid or unpaid transaction.
// The stored amount is VAT inclusive; the net and VAT lines are derived.
func BuildInvoice(t domain.Transaction, company Company, now time.Time) Invoice {
	inv := Invoice{
		Number:   InvoiceNumber(t.ID),
		IssuedOn: now.Format(dateLayout),
		Company:  company,
		Status:   string(t.Status),
	}

	total := float64(t.AmountCents) / 100
	net := total / (1 + VATRate)
	inv.Total = formatAmount(total)
	inv.NetAmount = formatAmount(net)
	inv.VATAmount = formatAmount(total - net)

	if r := t.Reservation; r != nil {
		inv.Period = formatDate(r.StartDate) + " - " + formatDate(r.EndDate)
		if r.Client != nil {
			inv.ClientName = r.Client.FullName
			inv.ClientCNP = r.Client.CNP
			inv.ClientPhone = r.Client.Phone
		}
		if r.Vehicle != nil {
			inv.Vehicle = strings.TrimSpace(r.Vehicle.Make + " " + r.Vehicle.Model)
			inv.PlateNumber = r.Vehicle.PlateNumber
		}
	}
	return inv
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f RON", v)
}

// RenderInvoiceHTML produces a standalone printable page. The operator
// prints it to PDF from the browser.
func RenderInvoiceHTML(inv Invoice) (string, error) {
	var b strings.Builder
	if err := invoiceTemplate.Execute(&b, inv); err != nil {
		return "", fmt.Errorf("failed to render invoice: %w", err)
	}
	return b.String(), nil
}

var invoiceTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html lang="ro">
<head>
<meta charset="utf-8">
<title>Factură {{.Number}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; color: #222; }
h1 { font-size: 22px; margin-bottom: 0; }
.header { display: flex; justify-content: space-between; margin-bottom: 30px; }
.company p, .meta p { margin: 2px 0; font-size: 13px; }
table { width: 100%; border-collapse: collapse; margin-top: 20px; }
th, td { border: 1px solid #999; padding: 8px; font-size: 13px; text-align: left; }
.totals { margin-top: 20px; width: 300px; margin-left: auto; }
.totals td { border: none; padding: 4px; }
.totals .grand { font-weight: bold; border-top: 1px solid #222; }
.status { margin-top: 30px; font-size: 14px; }
@media print { .no-print { display: none; } }
</style>
</head>
<body>
<div class="header">
  <div class="company">
    <h1>{{.Company.Name}}</h1>
    <p>{{.Company.Address}}</p>
    <p>Tel: {{.Company.Phone}} | {{.Company.Email}}</p>
    <p>CUI: {{.Company.TaxID}} | Reg. Com.: {{.Company.RegNo}}</p>
  </div>
  <div class="meta">
    <p><strong>Factură {{.Number}}</strong></p>
    <p>Data emiterii: {{.IssuedOn}}</p>
  </div>
</div>
<div class="client">
  <p><strong>Client:</strong> {{.ClientName}}</p>
  {{if .ClientCNP}}<p>CNP: {{.ClientCNP}}</p>{{end}}
  {{if .ClientPhone}}<p>Telefon: {{.ClientPhone}}</p>{{end}}
</div>
<table>
  <tr><th>Descriere</th><th>Perioadă</th><th>Valoare</th></tr>
  <tr>
    <td>Închiriere auto {{.Vehicle}} ({{.PlateNumber}})</td>
    <td>{{.Period}}</td>
    <td>{{.Total}}</td>
  </tr>
</table>
<table class="totals">
  <tr><td>Valoare fără TVA</td><td>{{.NetAmount}}</td></tr>
  <tr><td>TVA 19%</td><td>{{.VATAmount}}</td></tr>
  <tr class="grand"><td>Total de plată</td><td>{{.Total}}</td></tr>
</table>
<p class="status">Status plată: {{.Status}}</p>
</body>
</html>
`))
