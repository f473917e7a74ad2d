package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = func(s string) { fmt.Println(s) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Apply(ctx context.Context) error
	MyApplications(ctx context.Context) error
	Withdraw(ctx context.Context) error
	Inbox(ctx context.Context) error
	SetStatus(ctx context.Context) error
	SaveJob(ctx context.Context) error
	SavedJobs(ctx context.Context) error
	PostJob(ctx context.Context) error
	Jobs(ctx context.Context) error
	AddReview(ctx context.Context) error
	Reviews(ctx context.Context) error
	Rating(ctx context.Context) error
	RequestReset(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Users(ctx context.Context) error
	SetRole(ctx context.Context) error
	DeleteUser(ctx context.Context) error
	Stats(ctx context.Context) error
	TrackView(ctx context.Context) error
	Analytics(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	AddExperience(ctx context.Context) error
	AddEducation(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on a. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are swallowed here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("jobportal %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Account: whoami, logout, profile, editprofile, addexp, addedu")
				printlnFn("Jobs: jobs, postjob, save, saved, view, analytics, apply, applications, withdraw")
				printlnFn("Reviews: review, reviews, rating")
				printlnFn("Employer: inbox, setstatus")
				printlnFn("Admin: users, setrole, deluser, stats")
				printlnFn("Other: exit")
			} else {
				printlnFn("Available commands: register, login, resetreq, resetpw, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "apply":
			_ = a.Apply(ctx)

		case "applications":
			_ = a.MyApplications(ctx)

		case "withdraw":
			_ = a.Withdraw(ctx)

		case "inbox":
			_ = a.Inbox(ctx)

		case "setstatus":
			_ = a.SetStatus(ctx)

		case "save":
			_ = a.SaveJob(ctx)

		case "saved":
			_ = a.SavedJobs(ctx)

		case "postjob":
			_ = a.PostJob(ctx)

		case "jobs":
			_ = a.Jobs(ctx)

		case "review":
			_ = a.AddReview(ctx)

		case "reviews":
			_ = a.Reviews(ctx)

		case "rating":
			_ = a.Rating(ctx)

		case "resetreq":
			_ = a.RequestReset(ctx)

		case "resetpw":
			_ = a.ResetPassword(ctx)

		case "users":
			_ = a.Users(ctx)

		case "setrole":
			_ = a.SetRole(ctx)

		case "deluser":
			_ = a.DeleteUser(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "view":
			_ = a.TrackView(ctx)

		case "analytics":
			_ = a.Analytics(ctx)

		case "profile":
			_ = a.ShowProfile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "addexp":
			_ = a.AddExperience(ctx)

		case "addedu":
			_ = a.AddEducation(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
