package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// execStub records which commands the REPL dispatched.
type execStub struct {
	loggedIn bool
	calls    []string
}

func (s *execStub) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *execStub) isLoggedIn(context.Context) bool { return s.loggedIn }
func (s *execStub) Register(context.Context) error { return s.record("register") }
func (s *execStub) Login(context.Context) error { return s.record("login") }
func (s *execStub) Logout(context.Context) error { return s.record("logout") }
func (s *execStub) WhoAmI(context.Context) error { return s.record("whoami") }
func (s *execStub) Apply(context.Context) error { return s.record("apply") }
func (s *execStub) MyApplications(context.Context) error { return s.record("applications") }
func (s *execStub) Withdraw(context.Context) error { return s.record("withdraw") }
func (s *execStub) Inbox(context.Context) error { return s.record("inbox") }
func (s *execStub) SetStatus(context.Context) error { return s.record("setstatus") }
func (s *execStub) SaveJob(context.Context) error { return s.record("save") }
func (s *execStub) SavedJobs(context.Context) error { return s.record("saved") }
func (s *execStub) PostJob(context.Context) error { return s.record("postjob") }
func (s *execStub) Jobs(context.Context) error { return s.record("jobs") }
func (s *execStub) AddReview(context.Context) error { return s.record("review") }
func (s *execStub) Reviews(context.Context) error { return s.record("reviews") }
func (s *execStub) Rating(context.Context) error { return s.record("rating") }
func (s *execStub) RequestReset(context.Context) error { return s.record("resetreq") }
func (s *execStub) ResetPassword(context.Context) error { return s.record("resetpw") }
func (s *execStub) Users(context.Context) error { return s.record("users") }
func (s *execStub) SetRole(context.Context) error { return s.record("setrole") }
func (s *execStub) DeleteUser(context.Context) error { return s.record("deluser") }
func (s *execStub) Stats(context.Context) error { return s.record("stats") }
func (s *execStub) TrackView(context.Context) error { return s.record("view") }
func (s *execStub) Analytics(context.Context) error { return s.record("analytics") }
func (s *execStub) ShowProfile(context.Context) error { return s.record("profile") }
func (s *execStub) EditProfile(context.Context) error { return s.record("editprofile") }
func (s *execStub) AddExperience(context.Context) error { return s.record("addexp") }
func (s *execStub) AddEducation(context.Context) error { return s.record("addedu") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })

	var lines []string
	printlnFn = func(s string) { lines = append(lines, s) }
	return &lines
}

func runScript(t *testing.T, stub *execStub, script string) []string {
	t.Helper()
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), stub, func() string { return "" }, scanner)
	return *lines
}

func TestREPLDispatchesCommands(t *testing.T) {
	stub := &execStub{}
	runScript(t, stub, "login\njobs\napply\nexit\n")
	require.Equal(t, []string{"login", "jobs", "apply"}, stub.calls)
}

func TestREPLExitsOnEOF(t *testing.T) {
	stub := &execStub{}
	runScript(t, stub, "whoami\n")
	require.Equal(t, []string{"whoami"}, stub.calls)
}

func TestREPLQuitAlias(t *testing.T) {
	stub := &execStub{}
	out := runScript(t, stub, "quit\nlogin\n")
	require.Empty(t, stub.calls)
	require.Contains(t, out, "Bye!")
}

func TestREPLUnknownCommand(t *testing.T) {
	stub := &execStub{}
	out := runScript(t, stub, "frobnicate\nexit\n")
	require.Contains(t, out, "Unknown command: frobnicate")
}

func TestREPLIgnoresBlankLines(t *testing.T) {
	stub := &execStub{}
	runScript(t, stub, "\n   \nlogout\nexit\n")
	require.Equal(t, []string{"logout"}, stub.calls)
}

func TestREPLHelpVariesWithSession(t *testing.T) {
	loggedOut := runScript(t, &execStub{}, "help\nexit\n")
	require.Contains(t, strings.Join(loggedOut, "\n"), "register, login, resetreq, resetpw")

	loggedIn := runScript(t, &execStub{loggedIn: true}, "help\nexit\n")
	joined := strings.Join(loggedIn, "\n")
	require.Contains(t, joined, "whoami, logout")
	require.Contains(t, joined, "users, setrole, deluser, stats")
}
