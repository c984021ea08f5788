package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dkurbatov/filevault/internal/blob"
	"github.com/dkurbatov/filevault/internal/common"
	"github.com/dkurbatov/filevault/internal/config"
	"github.com/dkurbatov/filevault/internal/gate"
	"github.com/dkurbatov/filevault/internal/logging"
	"github.com/dkurbatov/filevault/internal/repositories/kv"
	"github.com/dkurbatov/filevault/internal/settings"
	"github.com/dkurbatov/filevault/internal/state"
	"github.com/dkurbatov/filevault/internal/store"
)

// getSimpleText and getPin are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPin = GetPin

// objectStore is a storage backend that can also hand out share links.
type objectStore interface {
	blob.Storage
	blob.Sharer
}

// App holds everything the REPL commands operate on.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	store    *store.Store
	settings *settings.Service
	auth     gate.Authenticator
	local    blob.Storage
	s3       objectStore
	out      io.Writer
	reader   *bufio.Reader
}

// NewApp opens the snapshot database, loads the persisted settings and file
// records, and wires the store, settings service and storage backends.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, repo, err := kv.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("open snapshot database: %w", err)
	}

	persister := state.NewPersister(repo, cfg.PersistMaxRetries, cfg.PersistBackoff)

	svc := settings.New(log, persister)
	if s, found, err := persister.LoadSettings(ctx); err != nil {
		log.Warn(ctx, "settings snapshot unreadable, starting with defaults", "error", err)
	} else if found {
		svc.Load(s)
	}

	fileStore := store.New(log, persister)
	if files, err := persister.LoadFiles(ctx); err != nil {
		log.Warn(ctx, "file snapshot unreadable, starting empty", "error", err)
	} else {
		fileStore.Load(files)
	}

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		store:    fileStore,
		settings: svc,
		auth:     gate.Unavailable{},
		local:    blob.NewLocal(),
		out:      os.Stdout,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Close releases the snapshot database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run shows the first-launch notice, passes the app-lock gate when enabled,
// and hands control to the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if a.settings.Current().FirstLaunch {
		fmt.Fprintln(a.out, "Welcome to FileVault! Your files stay on this device;")
		fmt.Fprintln(a.out, "use 'setpin' to protect the secure folder.")
		a.settings.SetFirstLaunch(ctx, false)
	}

	if a.settings.Current().AppLockEnabled {
		g := gate.New(gate.AppLock, a.settings, a.auth, a.log)
		if err := a.unlock(ctx, g); err != nil {
			fmt.Fprintln(a.out, "Authentication failed, exiting.")
			return err
		}
	}

	fmt.Fprintln(a.out, "FileVault CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
	return nil
}

// unlock drives a gate from Locked to Unlocked, prompting for the PIN for
// as long as the gate keeps asking. An empty PIN entry cancels.
func (a *App) unlock(ctx context.Context, g *gate.Gate) error {
	advisory, err := g.Activate(ctx)
	switch advisory {
	case gate.AdvisoryNoProtection:
		fmt.Fprintln(a.out, "No PIN configured; access is not protected. Use 'setpin' to add one.")
	case gate.AdvisoryNoPinFallback:
		fmt.Fprintln(a.out, "Biometric authentication failed and no PIN is configured.")
	}
	if err != nil {
		return err
	}

	for g.State() == gate.AwaitingPin {
		pin, err := getPin(a.out, "Enter PIN")
		if err != nil {
			return err
		}
		if pin == "" {
			return common.ErrAuthenticationFailed
		}
		if _, err := g.SubmitPin(pin); err != nil {
			switch {
			case errors.Is(err, common.ErrInvalidPinFormat):
				fmt.Fprintln(a.out, "The PIN is exactly four digits.")
			case errors.Is(err, common.ErrPinMismatch):
				fmt.Fprintln(a.out, "Incorrect PIN, try again.")
			default:
				return err
			}
		}
	}
	return nil
}

func (a *App) getStatus() string {
	s := fmt.Sprintf("%d items", a.store.Len())
	if n := len(a.store.Selected()); n > 0 {
		s = fmt.Sprintf("%s, %d selected", s, n)
	}
	return "(" + s + ")"
}

// storageFor picks the content backend by URI scheme: s3:// goes to the
// object store, everything else is a local path.
func (a *App) storageFor(ctx context.Context, uri string) (blob.Storage, error) {
	if strings.HasPrefix(uri, "s3://") {
		return a.s3Storage(ctx)
	}
	return a.local, nil
}

func (a *App) sharerFor(ctx context.Context, uri string) (blob.Sharer, error) {
	if strings.HasPrefix(uri, "s3://") {
		return a.s3Storage(ctx)
	}
	if s, ok := a.local.(blob.Sharer); ok {
		return s, nil
	}
	return nil, common.ErrShareUnavailable
}

// s3Storage lazily builds the S3 client on first s3:// use.
func (a *App) s3Storage(ctx context.Context) (objectStore, error) {
	if a.s3 != nil {
		return a.s3, nil
	}
	s3, err := blob.NewS3Storage(ctx, a.config.S3())
	if err != nil {
		return nil, fmt.Errorf("s3 storage: %w", err)
	}
	a.s3 = s3
	return a.s3, nil
}

func (a *App) warn(ctx context.Context, msg string, args ...any) {
	if a.log != nil {
		a.log.Warn(ctx, msg, args...)
	}
}
