package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/orderdocs/orderdocs/internal/domain/settings"
	ierr "github.com/orderdocs/orderdocs/internal/errors"
	"github.com/orderdocs/orderdocs/internal/logger"
	"github.com/orderdocs/orderdocs/internal/types"
)

type settingsRepository struct {
	db     *sqlx.DB
	logger *logger.Logger
}

// NewSettingsRepository reads the flat key-value settings table written by
// the admin settings surface.
func NewSettingsRepository(db *sqlx.DB, logger *logger.Logger) settings.Repository {
	return &settingsRepository{db: db, logger: logger}
}

type settingRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

const settingsQuery = `SELECT key, value FROM store_settings`

func (r *settingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	var rows []settingRow
	if err := r.db.SelectContext(ctx, &rows, settingsQuery); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to load settings").
			Mark(ierr.ErrDatabase)
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}

	s := settings.DefaultSettings()
	s.CompanyName = values[settings.KeyCompanyName]
	s.CompanyAddress = values[settings.KeyCompanyAddress]
	s.CompanyEmail = values[settings.KeyCompanyEmail]
	s.CompanyPhone = values[settings.KeyCompanyPhone]
	s.CompanyLogo = values[settings.KeyCompanyLogo]

	s.PDFEnabled = parseEnabled(values, settings.KeyPDFEnabled)
	s.UBLEnabled = parseEnabled(values, settings.KeyUBLEnabled)
	s.PackingSlipsEnabled = parseEnabled(values, settings.KeyPackingSlipsEnabled)

	s.AttachInvoicesTo = parseTriggerSet(values[settings.KeyAttachInvoicesTo])
	s.AttachPackingSlipsTo = parseTriggerSet(values[settings.KeyAttachPackingSlipsTo])

	return s, nil
}

// parseEnabled treats anything except an explicit "no" as enabled, matching
// the yes|no convention of the settings form.
func parseEnabled(values map[string]string, key string) bool {
	value, ok := values[key]
	if !ok {
		return true
	}
	return value != "no"
}

// parseTriggerSet splits a comma-separated list of email trigger ids.
func parseTriggerSet(value string) []types.EmailTrigger {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	triggers := make([]types.EmailTrigger, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			triggers = append(triggers, types.EmailTrigger(trimmed))
		}
	}
	return triggers
}
