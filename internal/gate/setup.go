package gate

import (
	"context"

	"github.com/dkurbatov/filevault/internal/common"
)

// SetupState tracks the PIN-setup sub-flow, which is distinct from
// verification: the user enters a new PIN and then confirms it.
type SetupState int

const (
	EnteringNewPin SetupState = iota
	ConfirmingNewPin
	SetupComplete
)

func (s SetupState) String() string {
	switch s {
	case EnteringNewPin:
		return "entering-new-pin"
	case ConfirmingNewPin:
		return "confirming-new-pin"
	case SetupComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// CredentialWriter persists a newly confirmed PIN.
// *settings.Service satisfies this interface.
type CredentialWriter interface {
	SetPin(ctx context.Context, pin []byte) error
}

// PinSetup collects a new PIN and its confirmation. On match the credential
// is persisted through the writer; on mismatch the confirmation buffer is
// cleared and the flow stays in ConfirmingNewPin for another attempt.
type PinSetup struct {
	writer CredentialWriter

	state  SetupState
	first  []byte
	buffer []byte
}

// NewPinSetup starts a setup flow in EnteringNewPin.
func NewPinSetup(writer CredentialWriter) *PinSetup {
	return &PinSetup{writer: writer, state: EnteringNewPin}
}

// State returns the current setup step.
func (p *PinSetup) State() SetupState {
	return p.state
}

// SubmitDigit appends one digit to the active buffer, advancing the flow
// when the buffer reaches PinLength.
func (p *PinSetup) SubmitDigit(ctx context.Context, digit byte) (SetupState, error) {
	if p.state == SetupComplete {
		return p.state, nil
	}
	if digit < '0' || digit > '9' {
		return p.state, common.ErrInvalidPinFormat
	}
	p.buffer = append(p.buffer, digit)
	if len(p.buffer) < PinLength {
		return p.state, nil
	}
	return p.advance(ctx)
}

// SubmitPin enters a full PinLength-digit sequence for the active step.
func (p *PinSetup) SubmitPin(ctx context.Context, pin string) (SetupState, error) {
	if p.state == SetupComplete {
		return p.state, nil
	}
	if !validPin(pin) {
		return p.state, common.ErrInvalidPinFormat
	}
	p.buffer = append(p.buffer[:0], pin...)
	return p.advance(ctx)
}

func (p *PinSetup) advance(ctx context.Context) (SetupState, error) {
	switch p.state {
	case EnteringNewPin:
		p.first = append([]byte(nil), p.buffer...)
		p.buffer = p.buffer[:0]
		p.state = ConfirmingNewPin
		return p.state, nil

	case ConfirmingNewPin:
		match := string(p.first) == string(p.buffer)
		common.WipeByteArray(p.buffer)
		p.buffer = p.buffer[:0]
		if !match {
			return p.state, common.ErrPinsDoNotMatch
		}
		if err := p.writer.SetPin(ctx, p.first); err != nil {
			return p.state, err
		}
		common.WipeByteArray(p.first)
		p.first = nil
		p.state = SetupComplete
		return p.state, nil
	}
	return p.state, nil
}

// Backspace removes the last digit from the active buffer.
func (p *PinSetup) Backspace() {
	if n := len(p.buffer); n > 0 {
		p.buffer[n-1] = 0
		p.buffer = p.buffer[:n-1]
	}
}

// BufferLen reports how many digits are entered for the active step.
func (p *PinSetup) BufferLen() int {
	return len(p.buffer)
}
