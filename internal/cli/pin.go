package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkurbatov/filevault/internal/common"
	"github.com/dkurbatov/filevault/internal/gate"
)

// SetPin runs the enter/confirm setup flow and persists the new PIN.
// An empty entry cancels; a mismatched confirmation asks again.
func (a *App) SetPin(ctx context.Context) error {
	setup := gate.NewPinSetup(a.settings)
	for setup.State() != gate.SetupComplete {
		prompt := "Enter new PIN (4 digits)"
		if setup.State() == gate.ConfirmingNewPin {
			prompt = "Confirm new PIN"
		}
		pin, err := getPin(a.out, prompt)
		if err != nil {
			return err
		}
		if pin == "" {
			fmt.Fprintln(a.out, "Cancelled.")
			return nil
		}
		if _, err := setup.SubmitPin(ctx, pin); err != nil {
			switch {
			case errors.Is(err, common.ErrInvalidPinFormat):
				fmt.Fprintln(a.out, "The PIN is exactly four digits.")
			case errors.Is(err, common.ErrPinsDoNotMatch):
				fmt.Fprintln(a.out, "PINs do not match, try again.")
			default:
				fmt.Fprintln(a.out, "error:", err)
				return err
			}
		}
	}
	fmt.Fprintln(a.out, "PIN set.")
	return nil
}

// ClearPin removes the PIN after verifying the current one.
func (a *App) ClearPin(ctx context.Context) error {
	if !a.settings.HasPin() {
		fmt.Fprintln(a.out, "No PIN is configured.")
		return nil
	}
	pin, err := getPin(a.out, "Enter current PIN")
	if err != nil {
		return err
	}
	ok, err := a.settings.VerifyPin([]byte(pin))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Incorrect PIN.")
		return common.ErrPinMismatch
	}
	a.settings.ClearPin(ctx)
	fmt.Fprintln(a.out, "PIN removed.")
	return nil
}
