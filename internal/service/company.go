package service

import (
	"context"

	"github.com/orderdocs/orderdocs/internal/config"
	"github.com/orderdocs/orderdocs/internal/domain/company"
	"github.com/orderdocs/orderdocs/internal/domain/settings"
	"github.com/orderdocs/orderdocs/internal/logger"
)

// CompanyService builds the company identity block stamped on generated
// documents. Settings are re-read on every call so operator edits apply
// immediately; unset fields fall back to the site-wide defaults.
type CompanyService interface {
	GetCompanyProfile(ctx context.Context) (*company.Profile, error)
}

type companyService struct {
	settingsRepo settings.Repository
	site         config.SiteConfig
	logger       *logger.Logger
}

func NewCompanyService(settingsRepo settings.Repository, cfg *config.Configuration, logger *logger.Logger) CompanyService {
	return &companyService{
		settingsRepo: settingsRepo,
		site:         cfg.Site,
		logger:       logger,
	}
}

func (s *companyService) GetCompanyProfile(ctx context.Context) (*company.Profile, error) {
	st, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	profile := &company.Profile{
		Name:    st.CompanyName,
		Address: st.CompanyAddress,
		Email:   st.CompanyEmail,
		Phone:   st.CompanyPhone,
		Website: s.site.URL,
		LogoURL: st.CompanyLogo,
	}

	if profile.Name == "" {
		profile.Name = s.site.Name
	}
	if profile.Email == "" {
		profile.Email = s.site.AdminEmail
	}

	return profile, nil
}
