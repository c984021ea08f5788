package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dkurbatov/filevault/internal/models"
	"github.com/dkurbatov/filevault/internal/store"
)

// List prints every record in insertion order.
func (a *App) List(ctx context.Context) error {
	records := a.store.Files()
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No files yet. Use 'touch', 'mkdir' or 'import' to add some.")
		return nil
	}
	for _, r := range records {
		a.printRecord(r)
	}
	return nil
}

func (a *App) printRecord(r models.FileRecord) {
	kind := string(r.Type)
	if r.IsDirectory {
		kind = "folder"
	}
	marker := " "
	if r.IsSecure {
		marker = "*"
	}
	fmt.Fprintf(a.out, "%s %-36s %-9s %10s  %s  %s\n",
		marker, r.ID, kind, models.FormatFileSize(r.Size),
		r.ModifiedTime.Format("2006-01-02 15:04"), r.Name)
}

// Find prompts for each filter dimension (empty input skips a dimension)
// and prints the matching records. The date range applies only when both
// ends are given; the end date covers the whole day.
func (a *App) Find(ctx context.Context) error {
	var f store.Filter

	q, err := getSimpleText(a.reader, "Name contains (empty for any)", a.out)
	if err != nil {
		return err
	}
	f.Query = q

	ft, err := getSimpleText(a.reader, "Type: image|video|audio|document|archive|other (empty for any)", a.out)
	if err != nil {
		return err
	}
	f.Type = models.FileType(ft)

	if f.SizeMin, err = a.askSize("Min size in bytes (empty for any)"); err != nil {
		return err
	}
	if f.SizeMax, err = a.askSize("Max size in bytes (empty for any)"); err != nil {
		return err
	}

	from, err := a.askDate("Modified from, YYYY-MM-DD (empty for any)")
	if err != nil {
		return err
	}
	to, err := a.askDate("Modified to, YYYY-MM-DD (empty for any)")
	if err != nil {
		return err
	}
	if from != nil && to != nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		f.ModifiedFrom = from
		f.ModifiedTo = &end
	}

	count := 0
	for r := range a.store.Query(f) {
		a.printRecord(r)
		count++
	}
	fmt.Fprintf(a.out, "%d match(es)\n", count)
	return nil
}

func (a *App) askSize(prompt string) (*int64, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Not a number:", s)
		return nil, err
	}
	return &n, nil
}

func (a *App) askDate(prompt string) (*time.Time, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		fmt.Fprintln(a.out, "Not a date:", s)
		return nil, err
	}
	return &t, nil
}
