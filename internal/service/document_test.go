package service

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/orderdocs/orderdocs/internal/config"
	"github.com/orderdocs/orderdocs/internal/domain/order"
	"github.com/orderdocs/orderdocs/internal/domain/settings"
	ierr "github.com/orderdocs/orderdocs/internal/errors"
	"github.com/orderdocs/orderdocs/internal/filestore"
	"github.com/orderdocs/orderdocs/internal/renderer"
	"github.com/orderdocs/orderdocs/internal/testutil"
	"github.com/orderdocs/orderdocs/internal/types"
)

type DocumentServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DocumentService
	store   filestore.Store
}

func TestDocumentService(t *testing.T) {
	suite.Run(t, new(DocumentServiceSuite))
}

func (s *DocumentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	cfg := config.GetDefaultConfig()
	cfg.Storage.Root = s.T().TempDir()

	s.store = filestore.NewStore(cfg, s.GetLogger())

	snapshotService := NewSnapshotService(s.GetOrderStore(), s.GetLogger())
	companyService := NewCompanyService(s.GetSettingsStore(), cfg, s.GetLogger())

	s.service = NewDocumentService(
		snapshotService,
		companyService,
		s.GetSettingsStore(),
		renderer.NewRegistry(),
		s.GetRasterizer(),
		s.store,
		s.GetLogger(),
	)

	s.GetOrderStore().Add(widgetOrder())
}

func widgetOrder() *order.Order {
	return &order.Order{
		ID:       1042,
		Number:   "1042",
		Date:     time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Status:   "processing",
		Total:    decimal.RequireFromString("29.97"),
		Currency: "USD",
		Billing: order.Address{
			FirstName: "Jamie",
			LastName:  "Rivera",
			Address1:  "42 Elm St",
			City:      "Portland",
			State:     "OR",
			Postcode:  "97201",
			Country:   "US",
		},
		Shipping: order.Address{
			FirstName: "Jamie",
			LastName:  "Rivera",
			Address1:  "42 Elm St",
			City:      "Portland",
			State:     "OR",
			Postcode:  "97201",
			Country:   "US",
		},
		Items: []order.Item{
			{Name: "Widget", SKU: "WID-1", Quantity: 3, Total: decimal.RequireFromString("29.97")},
		},
	}
}

func (s *DocumentServiceSuite) TestGeneratePDFInvoice() {
	doc, err := s.service.Generate(s.GetContext(), 1042, types.DocumentKindPDFInvoice)
	s.NoError(err)
	s.NotNil(doc)

	s.Equal(types.DocumentKindPDFInvoice, doc.Kind)
	s.Equal(1042, doc.OrderID)
	s.Equal(1, s.GetRasterizer().Calls())

	info, err := os.Stat(doc.FilePath)
	s.NoError(err)
	s.Greater(info.Size(), int64(0))
}

func (s *DocumentServiceSuite) TestGenerateUBLSkipsRasterization() {
	doc, err := s.service.Generate(s.GetContext(), 1042, types.DocumentKindUBLInvoice)
	s.NoError(err)
	s.NotNil(doc)

	s.Zero(s.GetRasterizer().Calls())

	body, err := os.ReadFile(doc.FilePath)
	s.NoError(err)
	s.Contains(string(body), `<?xml version="1.0" encoding="UTF-8"?>`)
	s.Contains(string(body), "<InvoicedQuantity>3</InvoicedQuantity>")
	s.Contains(string(body), "<PayableAmount>29.97</PayableAmount>")
}

func (s *DocumentServiceSuite) TestGeneratePackingSlip() {
	doc, err := s.service.Generate(s.GetContext(), 1042, types.DocumentKindPackingSlip)
	s.NoError(err)
	s.Equal(types.DocumentKindPackingSlip, doc.Kind)
	s.Equal(1, s.GetRasterizer().Calls())
}

func (s *DocumentServiceSuite) TestGenerateTwiceProducesDistinctFiles() {
	first, err := s.service.Generate(s.GetContext(), 1042, types.DocumentKindPDFInvoice)
	s.NoError(err)
	second, err := s.service.Generate(s.GetContext(), 1042, types.DocumentKindPDFInvoice)
	s.NoError(err)

	s.NotEqual(first.FilePath, second.FilePath)
	for _, doc := range []string{first.FilePath, second.FilePath} {
		info, err := os.Stat(doc)
		s.NoError(err)
		s.Greater(info.Size(), int64(0))
	}
}

func (s *DocumentServiceSuite) TestGenerateUnknownOrder() {
	doc, err := s.service.Generate(s.GetContext(), 9999, types.DocumentKindPDFInvoice)
	s.Error(err)
	s.Nil(doc)
	s.True(ierr.IsNotFound(err))
}

func (s *DocumentServiceSuite) TestGenerateInvalidKind() {
	doc, err := s.service.Generate(s.GetContext(), 1042, types.DocumentKind("WORD_INVOICE"))
	s.Error(err)
	s.Nil(doc)
	s.True(ierr.IsValidation(err))
}

func (s *DocumentServiceSuite) TestGenerateInvalidOrderID() {
	doc, err := s.service.Generate(s.GetContext(), 0, types.DocumentKindPDFInvoice)
	s.Error(err)
	s.Nil(doc)
	s.True(ierr.IsValidation(err))
}

func (s *DocumentServiceSuite) TestGenerateDisabledKind() {
	st := settings.DefaultSettings()
	st.PDFEnabled = false
	s.GetSettingsStore().Set(st)

	doc, err := s.service.Generate(s.GetContext(), 1042, types.DocumentKindPDFInvoice)
	s.Error(err)
	s.Nil(doc)
	s.True(ierr.IsInvalidOperation(err))
	s.Zero(s.GetRasterizer().Calls())
}

func (s *DocumentServiceSuite) TestGenerateRasterizerFailure() {
	s.GetRasterizer().Fail = true

	doc, err := s.service.Generate(s.GetContext(), 1042, types.DocumentKindPDFInvoice)
	s.Error(err)
	s.Nil(doc)
	s.True(ierr.IsSystem(err))

	// the UBL path does not touch the rasterizer and still succeeds
	doc, err = s.service.Generate(s.GetContext(), 1042, types.DocumentKindUBLInvoice)
	s.NoError(err)
	s.NotNil(doc)
}
