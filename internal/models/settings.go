package models

// Settings is the persisted user-settings record.
//
// Pin holds an encoded salted verifier (see cryptox), never the raw digits;
// nil/empty means no PIN is configured and the Access Gate is bypassed with
// a one-time advisory.
type Settings struct {
	DarkMode       bool    `json:"darkMode"`
	AppLockEnabled bool    `json:"appLockEnabled"`
	UseBiometrics  bool    `json:"useBiometrics"`
	Pin            *string `json:"pin"`
	FirstLaunch    bool    `json:"firstLaunch"`
}

// DefaultSettings returns the settings of a fresh install.
func DefaultSettings() Settings {
	return Settings{FirstLaunch: true}
}

// HasPin reports whether a PIN credential is configured.
func (s *Settings) HasPin() bool {
	return s.Pin != nil && *s.Pin != ""
}
