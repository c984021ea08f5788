// Package settings manages the persisted user-settings record: theme and
// lock toggles, first-launch flag, and the PIN credential lifecycle.
package settings

import (
	"context"

	"github.com/dkurbatov/filevault/internal/common"
	"github.com/dkurbatov/filevault/internal/cryptox"
	"github.com/dkurbatov/filevault/internal/logging"
	"github.com/dkurbatov/filevault/internal/models"
)

// Snapshotter persists the settings record. Implementations retry and log
// failures internally.
type Snapshotter interface {
	SaveSettings(ctx context.Context, s models.Settings) error
}

// Service owns the in-memory settings and mirrors every change to storage.
// Like the file store, it assumes a single logical writer.
type Service struct {
	log       logging.Logger
	snapshots Snapshotter
	current   models.Settings
}

// New constructs a Service with default (fresh-install) settings.
// snapshots may be nil for in-memory use.
func New(log logging.Logger, snapshots Snapshotter) *Service {
	return &Service{log: log, snapshots: snapshots, current: models.DefaultSettings()}
}

// Load replaces the in-memory settings with a persisted record.
func (s *Service) Load(settings models.Settings) {
	s.current = settings
}

// Current returns a copy of the settings record.
func (s *Service) Current() models.Settings {
	return s.current
}

func (s *Service) ToggleDarkMode(ctx context.Context) {
	s.current.DarkMode = !s.current.DarkMode
	s.save(ctx)
}

func (s *Service) ToggleAppLock(ctx context.Context) {
	s.current.AppLockEnabled = !s.current.AppLockEnabled
	s.save(ctx)
}

func (s *Service) ToggleBiometrics(ctx context.Context) {
	s.current.UseBiometrics = !s.current.UseBiometrics
	s.save(ctx)
}

func (s *Service) SetFirstLaunch(ctx context.Context, v bool) {
	s.current.FirstLaunch = v
	s.save(ctx)
}

// SetPin derives a salted verifier from the digits and persists it.
// The raw digits are never stored.
func (s *Service) SetPin(ctx context.Context, pin []byte) error {
	encoded, err := cryptox.EncodePin(pin)
	if err != nil {
		return err
	}
	s.current.Pin = &encoded
	s.save(ctx)
	return nil
}

// ClearPin removes the PIN credential.
func (s *Service) ClearPin(ctx context.Context) {
	s.current.Pin = nil
	s.save(ctx)
}

// HasPin reports whether a PIN credential is configured.
func (s *Service) HasPin() bool {
	return s.current.HasPin()
}

// UseBiometrics reports the biometric preference.
func (s *Service) UseBiometrics() bool {
	return s.current.UseBiometrics
}

// VerifyPin checks digits against the stored credential.
// Returns common.ErrNoPinConfigured when no PIN is set.
func (s *Service) VerifyPin(pin []byte) (bool, error) {
	if !s.HasPin() {
		return false, common.ErrNoPinConfigured
	}
	return cryptox.VerifyPin(pin, *s.current.Pin)
}

func (s *Service) save(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.SaveSettings(ctx, s.current); err != nil {
		if s.log != nil {
			s.log.Error(ctx, "settings snapshot save failed", "error", err)
		}
	}
}
