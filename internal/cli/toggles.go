package cli

import (
	"context"
	"fmt"

	"github.com/dkurbatov/filevault/internal/gate"
	"github.com/dkurbatov/filevault/internal/models"
)

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// ToggleDarkMode flips the theme preference.
func (a *App) ToggleDarkMode(ctx context.Context) error {
	a.settings.ToggleDarkMode(ctx)
	fmt.Fprintf(a.out, "Dark mode: %s\n", onOff(a.settings.Current().DarkMode))
	return nil
}

// ToggleAppLock flips the app-lock preference. The lock takes effect on the
// next start; without a PIN it opens unprotected.
func (a *App) ToggleAppLock(ctx context.Context) error {
	a.settings.ToggleAppLock(ctx)
	cur := a.settings.Current()
	fmt.Fprintf(a.out, "App lock: %s\n", onOff(cur.AppLockEnabled))
	if cur.AppLockEnabled && !cur.HasPin() {
		fmt.Fprintln(a.out, "No PIN is configured; run 'setpin' or the lock will open unprotected.")
	}
	return nil
}

// ToggleBiometrics flips the biometric preference. The preference is kept
// even without biometric hardware; the gate falls back to the PIN.
func (a *App) ToggleBiometrics(ctx context.Context) error {
	a.settings.ToggleBiometrics(ctx)
	cur := a.settings.Current()
	fmt.Fprintf(a.out, "Biometrics: %s\n", onOff(cur.UseBiometrics))
	if cur.UseBiometrics && a.auth.Capability() != gate.CapabilityBiometric {
		fmt.Fprintln(a.out, "No biometric hardware is available on this platform.")
	}
	return nil
}

// Cloud lists the built-in cloud bookmarks; viewing happens in a browser.
func (a *App) Cloud() error {
	for _, b := range models.DefaultCloudBookmarks() {
		fmt.Fprintf(a.out, "%-14s %s\n", b.Name, b.URL)
	}
	return nil
}
