package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/orderdocs/orderdocs/internal/config"
	"github.com/orderdocs/orderdocs/internal/domain/settings"
	"github.com/orderdocs/orderdocs/internal/testutil"
)

type CompanyServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CompanyService
}

func TestCompanyService(t *testing.T) {
	suite.Run(t, new(CompanyServiceSuite))
}

func (s *CompanyServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	cfg := config.GetDefaultConfig()
	cfg.Site.Name = "Acme Store"
	cfg.Site.AdminEmail = "admin@acme.example"
	cfg.Site.URL = "https://acme.example"

	s.service = NewCompanyService(s.GetSettingsStore(), cfg, s.GetLogger())
}

func (s *CompanyServiceSuite) TestConfiguredCompanyWins() {
	st := settings.DefaultSettings()
	st.CompanyName = "Acme GmbH"
	st.CompanyEmail = "billing@acme.example"
	st.CompanyAddress = "1 Factory Rd"
	s.GetSettingsStore().Set(st)

	profile, err := s.service.GetCompanyProfile(s.GetContext())
	s.NoError(err)
	s.Equal("Acme GmbH", profile.Name)
	s.Equal("billing@acme.example", profile.Email)
	s.Equal("1 Factory Rd", profile.Address)
	s.Equal("https://acme.example", profile.Website)
}

func (s *CompanyServiceSuite) TestSiteFallbacks() {
	profile, err := s.service.GetCompanyProfile(s.GetContext())
	s.NoError(err)
	s.Equal("Acme Store", profile.Name)
	s.Equal("admin@acme.example", profile.Email)
	s.Empty(profile.Address)
}

func (s *CompanyServiceSuite) TestSettingsEditsApplyImmediately() {
	profile, err := s.service.GetCompanyProfile(s.GetContext())
	s.NoError(err)
	s.Equal("Acme Store", profile.Name)

	st := settings.DefaultSettings()
	st.CompanyName = "Renamed Co"
	s.GetSettingsStore().Set(st)

	profile, err = s.service.GetCompanyProfile(s.GetContext())
	s.NoError(err)
	s.Equal("Renamed Co", profile.Name)
}
