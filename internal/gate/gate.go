// Package gate implements the access gate guarding the secure view and,
// optionally, the whole application. It is a small state machine driven by
// discrete user events: activation, biometric completion and PIN digits.
package gate

import (
	"context"

	"github.com/dkurbatov/filevault/internal/common"
	"github.com/dkurbatov/filevault/internal/logging"
)

// State is the gate's position in the unlock flow.
type State int

const (
	Locked State = iota
	AwaitingBiometric
	AwaitingPin
	Unlocked
)

func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	case AwaitingBiometric:
		return "awaiting-biometric"
	case AwaitingPin:
		return "awaiting-pin"
	case Unlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// Kind distinguishes the two protected surfaces. The secure-view gate lets
// the user retry after a failed biometric with no PIN fallback; the app-lock
// gate stays locked.
type Kind int

const (
	SecureView Kind = iota
	AppLock
)

// Advisory is a non-fatal message for the caller to surface once.
type Advisory int

const (
	AdvisoryNone Advisory = iota

	// AdvisoryNoProtection: neither biometrics nor a PIN is configured;
	// the gate opened without prompting.
	AdvisoryNoProtection

	// AdvisoryNoPinFallback: biometric auth failed and there is no PIN
	// to fall back to.
	AdvisoryNoPinFallback
)

// Capability reports what the authentication platform can do.
type Capability int

const (
	CapabilityNone Capability = iota
	CapabilityBiometric
)

// Authenticator is the biometric collaborator. Platform errors returned by
// Authenticate are treated exactly like a failed attempt, never as fatal.
type Authenticator interface {
	Capability() Capability
	Authenticate(ctx context.Context, prompt, fallbackLabel string) (bool, error)
}

// Credentials exposes the stored-credential state the gate switches on.
// *settings.Service satisfies this interface.
type Credentials interface {
	UseBiometrics() bool
	HasPin() bool
	VerifyPin(pin []byte) (bool, error)
}

// PinLength is the fixed credential length.
const PinLength = 4

// Gate guards one protected surface. A Gate instance covers one session of
// that surface; re-entering the surface calls Reset (or creates a new Gate),
// which re-initializes to Locked.
type Gate struct {
	kind  Kind
	creds Credentials
	auth  Authenticator
	log   logging.Logger

	state  State
	buffer []byte
}

// New constructs a gate in the Locked state. auth may be nil when no
// biometric surface exists; this is equivalent to CapabilityNone.
func New(kind Kind, creds Credentials, auth Authenticator, log logging.Logger) *Gate {
	return &Gate{kind: kind, creds: creds, auth: auth, log: log, state: Locked}
}

// State returns the current gate state.
func (g *Gate) State() State {
	return g.state
}

// Reset returns the gate to Locked and wipes any partial PIN entry.
func (g *Gate) Reset() {
	common.WipeByteArray(g.buffer)
	g.buffer = g.buffer[:0]
	g.state = Locked
}

// Activate starts the unlock flow from Locked.
//
// With a biometric preference and usable hardware it runs the biometric
// check; success unlocks, failure falls back to the PIN when one exists.
// Without biometrics, a configured PIN moves the gate to AwaitingPin.
// With no protection configured at all, the gate unlocks immediately and
// reports AdvisoryNoProtection.
func (g *Gate) Activate(ctx context.Context) (Advisory, error) {
	g.Reset()

	if g.creds.UseBiometrics() && g.biometricUsable() {
		g.state = AwaitingBiometric
		ok, err := g.auth.Authenticate(ctx, g.prompt(), "Use PIN")
		if err != nil {
			// platform errors are equivalent to a failed attempt
			if g.log != nil {
				g.log.Warn(ctx, "biometric authentication error", "error", err)
			}
			ok = false
		}
		if ok {
			g.state = Unlocked
			return AdvisoryNone, nil
		}
		if g.creds.HasPin() {
			g.state = AwaitingPin
			return AdvisoryNone, nil
		}
		// no fallback: secure view allows a manual retry, app lock stays shut
		g.state = Locked
		return AdvisoryNoPinFallback, common.ErrAuthenticationFailed
	}

	if g.creds.HasPin() {
		g.state = AwaitingPin
		return AdvisoryNone, nil
	}

	g.state = Unlocked
	return AdvisoryNoProtection, nil
}

func (g *Gate) biometricUsable() bool {
	return g.auth != nil && g.auth.Capability() == CapabilityBiometric
}

func (g *Gate) prompt() string {
	if g.kind == AppLock {
		return "Authenticate to unlock the app"
	}
	return "Authenticate to access secure files"
}

// SubmitDigit appends one digit to the entry buffer. When the buffer reaches
// PinLength it is checked against the stored credential: a match unlocks, a
// mismatch clears the buffer and returns common.ErrPinMismatch while the
// gate stays in AwaitingPin. There is no attempt counting or lockout.
func (g *Gate) SubmitDigit(digit byte) (State, error) {
	if g.state != AwaitingPin {
		return g.state, nil
	}
	if digit < '0' || digit > '9' {
		return g.state, common.ErrInvalidPinFormat
	}
	g.buffer = append(g.buffer, digit)
	if len(g.buffer) < PinLength {
		return g.state, nil
	}
	return g.checkBuffer()
}

// SubmitPin enters a full sequence at once. The sequence must be exactly
// PinLength digits; otherwise common.ErrInvalidPinFormat is returned and
// the buffer is left empty.
func (g *Gate) SubmitPin(pin string) (State, error) {
	if g.state != AwaitingPin {
		return g.state, nil
	}
	if !validPin(pin) {
		return g.state, common.ErrInvalidPinFormat
	}
	g.buffer = append(g.buffer[:0], pin...)
	return g.checkBuffer()
}

func (g *Gate) checkBuffer() (State, error) {
	defer func() {
		common.WipeByteArray(g.buffer)
		g.buffer = g.buffer[:0]
	}()

	ok, err := g.creds.VerifyPin(g.buffer)
	if err != nil {
		return g.state, err
	}
	if !ok {
		return g.state, common.ErrPinMismatch
	}
	g.state = Unlocked
	return g.state, nil
}

// Backspace removes the last buffered digit.
func (g *Gate) Backspace() {
	if n := len(g.buffer); n > 0 {
		g.buffer[n-1] = 0
		g.buffer = g.buffer[:n-1]
	}
}

// BufferLen reports how many digits are currently entered.
func (g *Gate) BufferLen() int {
	return len(g.buffer)
}

func validPin(pin string) bool {
	if len(pin) != PinLength {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}
