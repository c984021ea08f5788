package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkurbatov/filevault/internal/common"
)

// Share prints a time-limited share link for the record's content. Only the
// s3:// backend can hand out links; everything else is reported as
// unavailable.
func (a *App) Share(ctx context.Context, id string) error {
	rec, ok := a.store.Get(id)
	if !ok {
		fmt.Fprintln(a.out, "No such record:", id)
		return common.ErrNotFound
	}
	if rec.URI == "" {
		fmt.Fprintln(a.out, "Record has no content to share.")
		return common.ErrShareUnavailable
	}

	sharer, err := a.sharerFor(ctx, rec.URI)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	url, err := sharer.Share(ctx, rec.URI)
	if err != nil {
		if errors.Is(err, common.ErrShareUnavailable) {
			fmt.Fprintln(a.out, "Sharing is only available for s3:// content.")
		} else {
			fmt.Fprintln(a.out, "error:", err)
		}
		return err
	}
	fmt.Fprintf(a.out, "Share link (valid %s): %s\n", a.config.S3ShareExpiry, url)
	return nil
}
