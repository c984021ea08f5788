package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkurbatov/filevault/internal/common"
)

type fakeWriter struct {
	pin []byte
	err error
}

func (f *fakeWriter) SetPin(_ context.Context, pin []byte) error {
	f.pin = append([]byte(nil), pin...)
	return f.err
}

func TestPinSetup_Success(t *testing.T) {
	w := &fakeWriter{}
	p := NewPinSetup(w)
	ctx := context.Background()

	st, err := p.SubmitPin(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, ConfirmingNewPin, st)

	st, err = p.SubmitPin(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, SetupComplete, st)
	assert.Equal(t, "1234", string(w.pin))
}

func TestPinSetup_Mismatch(t *testing.T) {
	w := &fakeWriter{}
	p := NewPinSetup(w)
	ctx := context.Background()

	_, err := p.SubmitPin(ctx, "1234")
	require.NoError(t, err)

	st, err := p.SubmitPin(ctx, "5678")
	require.ErrorIs(t, err, common.ErrPinsDoNotMatch)
	assert.Equal(t, ConfirmingNewPin, st, "mismatch keeps the flow awaiting confirmation")
	assert.Equal(t, 0, p.BufferLen(), "confirmation buffer must be empty")
	assert.Nil(t, w.pin, "nothing may be persisted on mismatch")

	// a matching confirmation still completes the flow
	st, err = p.SubmitPin(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, SetupComplete, st)
	assert.Equal(t, "1234", string(w.pin))
}

func TestPinSetup_DigitEntry(t *testing.T) {
	w := &fakeWriter{}
	p := NewPinSetup(w)
	ctx := context.Background()

	for _, d := range []byte("0007") {
		_, err := p.SubmitDigit(ctx, d)
		require.NoError(t, err)
	}
	assert.Equal(t, ConfirmingNewPin, p.State())

	// backspace during confirmation
	_, _ = p.SubmitDigit(ctx, '9')
	p.Backspace()
	for _, d := range []byte("0007") {
		_, err := p.SubmitDigit(ctx, d)
		require.NoError(t, err)
	}
	assert.Equal(t, SetupComplete, p.State())
	assert.Equal(t, "0007", string(w.pin))
}

func TestPinSetup_FormatValidation(t *testing.T) {
	p := NewPinSetup(&fakeWriter{})
	ctx := context.Background()

	_, err := p.SubmitPin(ctx, "12")
	require.ErrorIs(t, err, common.ErrInvalidPinFormat)
	_, err = p.SubmitDigit(ctx, 'a')
	require.ErrorIs(t, err, common.ErrInvalidPinFormat)
	assert.Equal(t, EnteringNewPin, p.State())
}

func TestPinSetup_WriterError(t *testing.T) {
	w := &fakeWriter{err: errors.New("storage down")}
	p := NewPinSetup(w)
	ctx := context.Background()

	_, err := p.SubmitPin(ctx, "1234")
	require.NoError(t, err)
	st, err := p.SubmitPin(ctx, "1234")
	require.Error(t, err)
	assert.Equal(t, ConfirmingNewPin, st, "persist failure keeps the flow retryable")
}

func TestPinSetup_CompleteIsTerminal(t *testing.T) {
	w := &fakeWriter{}
	p := NewPinSetup(w)
	ctx := context.Background()

	_, _ = p.SubmitPin(ctx, "1234")
	_, _ = p.SubmitPin(ctx, "1234")

	st, err := p.SubmitPin(ctx, "9999")
	require.NoError(t, err)
	assert.Equal(t, SetupComplete, st)
	assert.Equal(t, "1234", string(w.pin))
}
