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

const packingSlipHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Packing Slip - {{.Order.OrderNumber}}</title>
  <style>
    body {
      font-family: DejaVu Sans, sans-serif;
      font-size: 12px;
      color: #333;
      margin: 0;
      padding: 20px;
    }
    .packing-slip-header {
      border-bottom: 2px solid #333;
      margin-bottom: 30px;
      padding-bottom: 20px;
    }
    .company-info {
      float: left;
      width: 50%;
    }
    .order-info {
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
    .document-title {
      font-size: 24px;
      font-weight: bold;
      color: #333;
      margin-bottom: 10px;
    }
    .clear { clear: both; }
    .shipping-address {
      margin: 30px 0;
      padding: 15px;
      border: 1px solid #ddd;
      background-color: #f9f9f9;
    }
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
    .item-column { width: 60%; }
    .quantity-column { width: 20%; text-align: center; }
    .packed-column {
      width: 20%;
      text-align: center;
      border-right: 2px solid #333;
    }
    .notes {
      margin-top: 30px;
      padding: 15px;
      background-color: #f9f9f9;
      border-left: 4px solid #333;
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
  <div class="packing-slip-header">
    <div class="company-info">
      {{if .Company.LogoURL}}
      <img src="{{.Company.LogoURL}}" alt="{{.Company.Name}}" class="company-logo">
      {{end}}
      <div class="company-name">{{.Company.Name}}</div>
      {{if .Company.Address}}<div>{{nl2br .Company.Address}}</div>{{end}}
    </div>
    <div class="order-info">
      <div class="document-title">Packing Slip</div>
      <div><strong>Order Number:</strong> {{.Order.OrderNumber}}</div>
      <div><strong>Order Date:</strong> {{formatDate .Order.OrderDate}}</div>
      <div><strong>Packing Date:</strong> {{.Date}}</div>
    </div>
    <div class="clear"></div>
  </div>

  <div class="shipping-address">
    <div class="address-title">Ship To:</div>
    <div>{{.Order.Shipping.FullName}}</div>
    {{if .Order.Shipping.Company}}<div>{{.Order.Shipping.Company}}</div>{{end}}
    {{if .Order.Shipping.Address1}}<div>{{.Order.Shipping.Address1}}</div>{{end}}
    {{if .Order.Shipping.Address2}}<div>{{.Order.Shipping.Address2}}</div>{{end}}
    {{with .Order.Shipping.CityLine}}<div>{{.}}</div>{{end}}
    {{if .Order.Shipping.Country}}<div>{{.Order.Shipping.Country}}</div>{{end}}
  </div>

  <table>
    <thead>
      <tr>
        <th class="item-column">Item</th>
        <th class="quantity-column">Ordered Qty</th>
        <th class="packed-column">Packed Qty</th>
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
        <td class="packed-column">_______</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  {{if .Order.CustomerNote}}
  <div class="notes">
    <strong>Customer Notes:</strong><br>
    {{.Order.CustomerNote}}
  </div>
  {{end}}

  <div class="footer">
    <div>Please check all items against this packing slip and report any discrepancies immediately.</div>
  </div>
</body>
</html>
`

// PackingSlipRenderer renders the warehouse packing slip: ship-to block,
// item table with a blank packed-quantity column for manual fulfillment
// checking, and the customer note when present.
type PackingSlipRenderer struct {
	tpl *template.Template
}

func NewPackingSlipRenderer() *PackingSlipRenderer {
	return &PackingSlipRenderer{
		tpl: template.Must(template.New("packing-slip").Funcs(templateFuncs()).Parse(packingSlipHTMLTemplate)),
	}
}

func (r *PackingSlipRenderer) Render(ctx context.Context, snap *document.Snapshot, profile *company.Profile) (string, error) {
	input := htmlInput{
		Company: profile,
		Order:   snap,
		Date:    formatDate(time.Now()),
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", ierr.WithError(err).
			WithHint("failed to render packing slip template").
			Mark(ierr.ErrSystem)
	}
	return buf.String(), nil
}
