package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	List(ctx context.Context) error
	Find(ctx context.Context) error
	MkDir(ctx context.Context, name string) error
	Touch(ctx context.Context, name string) error
	Import(ctx context.Context, path string) error
	Rename(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
	CopyTo(ctx context.Context, id, folderID string) error
	MoveTo(ctx context.Context, id, folderID string) error
	Select(id string) error
	Deselect(id string) error
	ShowSelection() error
	ClearSelection() error
	RemoveSelected(ctx context.Context) error
	SecureSelected(ctx context.Context) error
	Secure(ctx context.Context) error
	Share(ctx context.Context, id string) error
	SetPin(ctx context.Context) error
	ClearPin(ctx context.Context) error
	ToggleDarkMode(ctx context.Context) error
	ToggleAppLock(ctx context.Context) error
	ToggleBiometrics(ctx context.Context) error
	Cloud() error
}

const helpText = `Available commands:
  l, list                 list all records
  find                    search by name, type, size and date
  mkdir <name>            create a folder record
  touch <name>            create an empty file record
  import <path>           import a local file or s3:// object
  rename <id>             rename a record (prompts for the new name)
  rm <id>                 remove a record (and its content, if any)
  cp <id> <folder-id>     copy a record into a folder
  mv <id> <folder-id>     move a record into a folder
  select <id>             add a record to the selection
  deselect <id>           remove a record from the selection
  selection               show the current selection
  clear                   clear the selection
  rmsel                   remove all selected records
  securesel               move all selected records to the secure folder
  secure                  open the secure folder (PIN / biometric)
  share <id>              print a share link for s3:// content
  setpin, clearpin        manage the PIN
  darkmode, applock, biometrics
                          toggle the corresponding setting
  cloud                   list cloud storage bookmarks
  exit, quit              leave the program`

// runREPL starts a simple read–eval–print loop for the FileVault CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("filevault %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "find":
			_ = a.Find(ctx)

		case "mkdir":
			if len(args) == 0 {
				printlnFn("Usage: mkdir <name>")
				continue
			}
			_ = a.MkDir(ctx, strings.Join(args, " "))

		case "touch":
			if len(args) == 0 {
				printlnFn("Usage: touch <name>")
				continue
			}
			_ = a.Touch(ctx, strings.Join(args, " "))

		case "import":
			if len(args) == 0 {
				printlnFn("Usage: import <path>")
				continue
			}
			_ = a.Import(ctx, strings.Join(args, " "))

		case "rename":
			if len(args) == 0 {
				printlnFn("Usage: rename <id>")
				continue
			}
			_ = a.Rename(ctx, args[0])

		case "rm":
			if len(args) == 0 {
				printlnFn("Usage: rm <id>")
				continue
			}
			_ = a.Remove(ctx, args[0])

		case "cp":
			if len(args) < 2 {
				printlnFn("Usage: cp <id> <folder-id>")
				continue
			}
			_ = a.CopyTo(ctx, args[0], args[1])

		case "mv":
			if len(args) < 2 {
				printlnFn("Usage: mv <id> <folder-id>")
				continue
			}
			_ = a.MoveTo(ctx, args[0], args[1])

		case "select":
			if len(args) == 0 {
				printlnFn("Usage: select <id>")
				continue
			}
			_ = a.Select(args[0])

		case "deselect":
			if len(args) == 0 {
				printlnFn("Usage: deselect <id>")
				continue
			}
			_ = a.Deselect(args[0])

		case "selection":
			_ = a.ShowSelection()

		case "clear":
			_ = a.ClearSelection()

		case "rmsel":
			_ = a.RemoveSelected(ctx)

		case "securesel":
			_ = a.SecureSelected(ctx)

		case "secure":
			_ = a.Secure(ctx)

		case "share":
			if len(args) == 0 {
				printlnFn("Usage: share <id>")
				continue
			}
			_ = a.Share(ctx, args[0])

		case "setpin":
			_ = a.SetPin(ctx)

		case "clearpin":
			_ = a.ClearPin(ctx)

		case "darkmode":
			_ = a.ToggleDarkMode(ctx)

		case "applock":
			_ = a.ToggleAppLock(ctx)

		case "biometrics":
			_ = a.ToggleBiometrics(ctx)

		case "cloud":
			_ = a.Cloud()

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
