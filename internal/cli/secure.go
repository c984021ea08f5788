package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dkurbatov/filevault/internal/gate"
)

// Secure opens the secure folder through the access gate and runs a small
// sub-loop over the secure records. Leaving the loop re-locks the gate.
func (a *App) Secure(ctx context.Context) error {
	g := gate.New(gate.SecureView, a.settings, a.auth, a.log)
	if err := a.unlock(ctx, g); err != nil {
		return err
	}
	defer g.Reset()

	a.listSecure()

	for {
		line, err := getSimpleText(a.reader, "secure: unsecure <id> | list | back", a.out)
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "list":
			a.listSecure()
		case "unsecure":
			if len(parts) < 2 {
				fmt.Fprintln(a.out, "Usage: unsecure <id>")
				continue
			}
			a.store.RemoveFromSecure(ctx, parts[1])
			fmt.Fprintln(a.out, "Done.")
		case "back", "exit", "quit":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

func (a *App) listSecure() {
	records := a.store.SecureFiles()
	if len(records) == 0 {
		fmt.Fprintln(a.out, "The secure folder is empty.")
		return
	}
	for _, r := range records {
		a.printRecord(r)
	}
}
