package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

type fakeExec struct {
	calls []string
	args  []string
}

func (f *fakeExec) record(name string, args ...string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args...)
	return nil
}

func (f *fakeExec) List(context.Context) error { return f.record("list") }
func (f *fakeExec) Find(context.Context) error { return f.record("find") }
func (f *fakeExec) MkDir(_ context.Context, name string) error {
	return f.record("mkdir", name)
}
func (f *fakeExec) Touch(_ context.Context, name string) error {
	return f.record("touch", name)
}
func (f *fakeExec) Import(_ context.Context, path string) error {
	return f.record("import", path)
}
func (f *fakeExec) Rename(_ context.Context, id string) error {
	return f.record("rename", id)
}
func (f *fakeExec) Remove(_ context.Context, id string) error {
	return f.record("rm", id)
}
func (f *fakeExec) CopyTo(_ context.Context, id, folderID string) error {
	return f.record("cp", id, folderID)
}
func (f *fakeExec) MoveTo(_ context.Context, id, folderID string) error {
	return f.record("mv", id, folderID)
}
func (f *fakeExec) Select(id string) error             { return f.record("select", id) }
func (f *fakeExec) Deselect(id string) error           { return f.record("deselect", id) }
func (f *fakeExec) ShowSelection() error               { return f.record("selection") }
func (f *fakeExec) ClearSelection() error              { return f.record("clear") }
func (f *fakeExec) RemoveSelected(context.Context) error {
	return f.record("rmsel")
}
func (f *fakeExec) SecureSelected(context.Context) error {
	return f.record("securesel")
}
func (f *fakeExec) Secure(context.Context) error { return f.record("secure") }
func (f *fakeExec) Share(_ context.Context, id string) error {
	return f.record("share", id)
}
func (f *fakeExec) SetPin(context.Context) error          { return f.record("setpin") }
func (f *fakeExec) ClearPin(context.Context) error        { return f.record("clearpin") }
func (f *fakeExec) ToggleDarkMode(context.Context) error  { return f.record("darkmode") }
func (f *fakeExec) ToggleAppLock(context.Context) error   { return f.record("applock") }
func (f *fakeExec) ToggleBiometrics(context.Context) error {
	return f.record("biometrics")
}
func (f *fakeExec) Cloud() error { return f.record("cloud") }

func replWith(t *testing.T, lines ...string) *fakeExec {
	t.Helper()
	silencePrintln(t)

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, sc)
	return exec
}

func TestRunREPL_DispatchOrder(t *testing.T) {
	exec := replWith(t,
		"help",
		"mkdir docs",
		"touch holiday.jpg",
		"list",
		"select id-1",
		"securesel",
		"secure",
		"darkmode",
		"cloud",
		"exit",
	)

	assert.Equal(t,
		[]string{"mkdir", "touch", "list", "select", "securesel", "secure", "darkmode", "cloud"},
		exec.calls)
	assert.Equal(t, []string{"docs", "holiday.jpg", "id-1"}, exec.args)
}

func TestRunREPL_UsageGuards(t *testing.T) {
	exec := replWith(t,
		"mkdir",
		"touch",
		"import",
		"rename",
		"rm",
		"cp only-one",
		"mv only-one",
		"select",
		"deselect",
		"share",
		"quit",
	)

	assert.Empty(t, exec.calls, "commands missing arguments must not dispatch")
}

func TestRunREPL_MultiWordNames(t *testing.T) {
	exec := replWith(t, "mkdir My Documents", "exit")

	assert.Equal(t, []string{"mkdir"}, exec.calls)
	assert.Equal(t, []string{"My Documents"}, exec.args)
}

func TestRunREPL_UnknownAndBlankLines(t *testing.T) {
	exec := replWith(t, "", "   ", "frobnicate", "l", "exit")

	assert.Equal(t, []string{"list"}, exec.calls)
}

func TestRunREPL_EOFStopsLoop(t *testing.T) {
	exec := replWith(t, "list")

	assert.Equal(t, []string{"list"}, exec.calls)
}
