package renderer

import (
	"bytes"
	"context"
	"html/template"
	"time"

	ierr "github.com/orderdocs/orderdocs/internal/errors"

	"github.com/orderdocs/orderdocs/internal/domain/company"
	"github.com/orderdocs/orderdocs/internal/domain/document"
)

const invoiceHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Order.OrderNumber}}</title>
  <style>
    body {
      font-family: DejaVu Sans, sans-serif;
      font-size: 12px;
      color: #333;
      margin: 0;
      padding: 20px;
    }
    .invoice-header {
      border-bottom: 2px solid #333;
      margin-bottom: 30px;
      padding-bottom: 20px;
    }
    .company-info {
      float: left;
      width: 50%;
    }
    .invoice-info {
      float: right;
      width: 45%;
      text-align: right;
    }
    .company-logo {
      max-width: 200px;
      margin-bottom: 15px;
    }
    .company-name {
      font-size: 20px;
      font-weight: bold;
      margin-bottom: 10px;
    }
    .invoice-title {
      font-size: 24px;
      font-weight: bold;
      color: #333;
      margin-bottom: 10px;
    }
    .clear { clear: both; }
    .billing-shipping { margin: 30px 0; }
    .billing-info, .shipping-info {
      float: left;
      width: 48%;
    }
    .shipping-info { float: right; }
    .address-title {
      font-weight: bold;
      margin-bottom: 10px;
      padding-bottom: 5px;
      border-bottom: 1px solid #ddd;
    }
    table {
      width: 100%;
      border-collapse: collapse;
      margin: 20px 0;
    }
    th, td {
      border: 1px solid #ddd;
      padding: 8px;
      text-align: left;
    }
    th {
      background-color: #f5f5f5;
      font-weight: bold;
    }
    .item-column { width: 40%; }
    .quantity-column { width: 10%; text-align: center; }
    .price-column { width: 15%; text-align: right; }
    .total-column { width: 15%; text-align: right; }
    .totals {
      float: right;
      width: 300px;
      margin-top: 20px;
    }
    .totals table { margin: 0; }
    .totals th, .totals td {
      border: none;
      padding: 5px 10px;
    }
    .totals .total-row {
      border-top: 2px solid #333;
      font-weight: bold;
      font-size: 14px;
    }
    .footer {
      margin-top: 50px;
      padding-top: 20px;
      border-top: 1px solid #ddd;
      font-size: 10px;
      color: #666;
    }
  </style>
</head>
<body>
  <div class="invoice-header">
    <div class="company-info">
      {{if .Company.LogoURL}}
      <img src="{{.Company.LogoURL}}" alt="{{.Company.Name}}" class="company-logo">
      {{end}}
      <div class="company-name">{{.Company.Name}}</div>
      {{if .Company.Address}}<div>{{nl2br .Company.Address}}</div>{{end}}
      {{if .Company.Phone}}<div>Phone: {{.Company.Phone}}</div>{{end}}
      {{if .Company.Email}}<div>Email: {{.Company.Email}}</div>{{end}}
    </div>
    <div class="invoice-info">
      <div class="invoice-title">INVOICE</div>
      <div><strong>Invoice Number:</strong> {{.Order.OrderNumber}}</div>
      <div><strong>Invoice Date:</strong> {{.Date}}</div>
      <div><strong>Order Number:</strong> {{.Order.OrderNumber}}</div>
      <div><strong>Order Date:</strong> {{formatDate .Order.OrderDate}}</div>
    </div>
    <div class="clear"></div>
  </div>

  <div class="billing-shipping">
    <div class="billing-info">
      <div class="address-title">Bill To:</div>
      <div>{{.Order.Billing.FullName}}</div>
      {{if .Order.Billing.Company}}<div>{{.Order.Billing.Company}}</div>{{end}}
      {{if .Order.Billing.Address1}}<div>{{.Order.Billing.Address1}}</div>{{end}}
      {{if .Order.Billing.Address2}}<div>{{.Order.Billing.Address2}}</div>{{end}}
      {{with .Order.Billing.CityLine}}<div>{{.}}</div>{{end}}
      {{if .Order.Billing.Country}}<div>{{.Order.Billing.Country}}</div>{{end}}
    </div>

    {{if .Order.Shipping.Address1}}
    <div class="shipping-info">
      <div class="address-title">Ship To:</div>
      <div>{{.Order.Shipping.FullName}}</div>
      {{if .Order.Shipping.Company}}<div>{{.Order.Shipping.Company}}</div>{{end}}
      <div>{{.Order.Shipping.Address1}}</div>
      {{if .Order.Shipping.Address2}}<div>{{.Order.Shipping.Address2}}</div>{{end}}
      {{with .Order.Shipping.CityLine}}<div>{{.}}</div>{{end}}
      {{if .Order.Shipping.Country}}<div>{{.Order.Shipping.Country}}</div>{{end}}
    </div>
    {{end}}
    <div class="clear"></div>
  </div>

  <table>
    <thead>
      <tr>
        <th class="item-column">Item</th>
        <th class="quantity-column">Qty</th>
        <th class="price-column">Price</th>
        <th class="total-column">Total</th>
      </tr>
    </thead>
    <tbody>
      {{range .Order.Items}}
      <tr>
        <td class="item-column">
          <strong>{{.Name}}</strong>
          {{if .SKU}}<br><small>SKU: {{.SKU}}</small>{{end}}
        </td>
        <td class="quantity-column">{{.Quantity}}</td>
        <td class="price-column">{{formatMoney .UnitPrice $.Order.Currency}}</td>
        <td class="total-column">{{formatMoney .Total $.Order.Currency}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <div class="totals">
    <table>
      <tr>
        <th>Subtotal:</th>
        <td>{{formatMoney .Order.Total .Order.Currency}}</td>
      </tr>
      <tr class="total-row">
        <th>Total:</th>
        <td>{{formatMoney .Order.Total .Order.Currency}}</td>
      </tr>
    </table>
  </div>
  <div class="clear"></div>

  <div class="footer">
    <div>Thank you for your business!</div>
  </div>
</body>
</html>
`

// InvoiceRenderer renders the customer-facing invoice as a standalone HTML
// document with inlined CSS, ready for rasterization.
type InvoiceRenderer struct {
	tpl *template.Template
}

func NewInvoiceRenderer() *InvoiceRenderer {
	return &InvoiceRenderer{
		tpl: template.Must(template.New("invoice").Funcs(templateFuncs()).Parse(invoiceHTMLTemplate)),
	}
}

type htmlInput struct {
	Company *company.Profile
	Order   *document.Snapshot
	Date    string
}

func (r *InvoiceRenderer) Render(ctx context.Context, snap *document.Snapshot, profile *company.Profile) (string, error) {
	input := htmlInput{
		Company: profile,
		Order:   snap,
		Date:    formatDate(time.Now()),
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", ierr.WithError(err).
			WithHint("failed to render invoice template").
			Mark(ierr.ErrSystem)
	}
	return buf.String(), nil
}
