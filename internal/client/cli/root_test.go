package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/models"
)

type fakeExec struct {
	ident *models.Identity

	calls []string
	args  []string
}

func (f *fakeExec) record(name string, args ...string) error {
	f.calls = append(f.calls, name)
	f.args = args
	return nil
}

func (f *fakeExec) identity() *models.Identity { return f.ident }
func (f *fakeExec) Login(ctx context.Context) error {
	f.ident = &models.Identity{ID: "u1", Email: "a@b.com", Role: models.RoleUser}
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.ident = nil
	return f.record("logout")
}
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }
func (f *fakeExec) WhoAmI() error                      { return f.record("whoami") }
func (f *fakeExec) List(ctx context.Context, args []string) error {
	return f.record("list", args...)
}
func (f *fakeExec) Search(ctx context.Context, args []string) error {
	return f.record("search", args...)
}
func (f *fakeExec) Semester(ctx context.Context, args []string) error {
	return f.record("sem", args...)
}
func (f *fakeExec) ByStatus(ctx context.Context, args []string) error {
	return f.record("status", args...)
}
func (f *fakeExec) Download(ctx context.Context, args []string) error {
	return f.record("download", args...)
}
func (f *fakeExec) Upload(ctx context.Context) error  { return f.record("upload") }
func (f *fakeExec) Pending(ctx context.Context) error { return f.record("pending") }
func (f *fakeExec) Approve(ctx context.Context, args []string) error {
	return f.record("approve", args...)
}
func (f *fakeExec) Reject(ctx context.Context, args []string) error {
	return f.record("reject", args...)
}
func (f *fakeExec) Rename(ctx context.Context, args []string) error {
	return f.record("rename", args...)
}
func (f *fakeExec) Stats(ctx context.Context) error { return f.record("stats") }
func (f *fakeExec) Users(ctx context.Context, args []string) error {
	return f.record("users", args...)
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runWith(exec *fakeExec, input string) {
	sc := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), exec, func() string { return "" }, sc)
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{ident: &models.Identity{ID: "u1", Role: models.RoleUser}}
	runWith(exec, "help\nlist 2\nsearch dbms notes\nwhoami\nexit\n")

	assert.Equal(t, []string{"list", "search", "whoami"}, exec.calls)
}

func TestRunREPL_GatedCommandWithoutSessionPromptsLogin(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runWith(exec, "list\nexit\n")

	require.Equal(t, []string{"login"}, exec.calls, "the command itself must not run")
	joined := strings.Join(*out, "")
	assert.Contains(t, joined, "Please log in first.")
}

func TestRunREPL_AdminCommandDeniedForUserRole(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{ident: &models.Identity{ID: "u1", Role: models.RoleUser}}
	runWith(exec, "approve 42\nstats\nusers\nexit\n")

	assert.Empty(t, exec.calls)
	assert.Contains(t, strings.Join(*out, ""), "administrator access")
}

func TestRunREPL_AdminCommandsRunForAdmin(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{ident: &models.Identity{ID: "a1", Role: models.RoleAdmin}}
	runWith(exec, "pending\nstats\nusers\napprove 42\nreject 42\nexit\n")

	assert.Equal(t, []string{"pending", "stats", "users", "approve", "reject"}, exec.calls)
	assert.Equal(t, []string{"42"}, exec.args)
}

func TestRunREPL_RoleComparisonIsCaseInsensitive(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{ident: &models.Identity{ID: "a1", Role: models.Role("admin")}}
	runWith(exec, "stats\nexit\n")

	assert.Equal(t, []string{"stats"}, exec.calls)
}

func TestRunREPL_ArgsArePassedThrough(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{ident: &models.Identity{ID: "u1", Role: models.RoleUser}}
	runWith(exec, "download 507f1f77bcf86cd799439011\nexit\n")

	assert.Equal(t, []string{"download"}, exec.calls)
	assert.Equal(t, []string{"507f1f77bcf86cd799439011"}, exec.args)
}

func TestRunREPL_UnknownCommandAndQuit(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{ident: &models.Identity{ID: "u1", Role: models.RoleUser}}
	runWith(exec, "frobnicate\nquit\n")

	assert.Empty(t, exec.calls)
	assert.Contains(t, strings.Join(*out, ""), "Unknown command: frobnicate")
}

func TestRunREPL_PublicCommandsBypassTheGate(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runWith(exec, "register\nexit\n")

	assert.Equal(t, []string{"register"}, exec.calls)
}
