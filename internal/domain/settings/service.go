package settings

import (
	"context"
	"fmt"
)

// Well-known setting keys.
const (
	KeyHighRiskAlerts   = "alerts.high_risk.enabled"
	KeyHistoryLimit     = "assessments.history.default_limit"
	KeyAlertRecipient   = "alerts.high_risk.recipient"
	KeyMaintenanceNotes = "system.maintenance_notes"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Set(ctx context.Context, setting *Setting) error {
	if setting.Key == "" {
		return fmt.Errorf("setting key is required")
	}
	return s.repo.Set(ctx, setting)
}

func (s *Service) Get(ctx context.Context, key string) (*Setting, error) {
	return s.repo.Get(ctx, key)
}

func (s *Service) Delete(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

func (s *Service) List(ctx context.Context) ([]*Setting, error) {
	return s.repo.List(ctx)
}

// BoolOr fetches a boolean setting, falling back to def when the key is
// missing or unparsable.
func (s *Service) BoolOr(ctx context.Context, key string, def bool) bool {
	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		return def
	}
	return setting.Bool(def)
}

// IntOr fetches an integer setting, falling back to def when the key is
// missing or unparsable.
func (s *Service) IntOr(ctx context.Context, key string, def int) int {
	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		return def
	}
	return setting.Int(def)
}
