package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/models"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	identity() *models.Identity
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Register(ctx context.Context) error
	WhoAmI() error
	List(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Semester(ctx context.Context, args []string) error
	ByStatus(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error
	Upload(ctx context.Context) error
	Pending(ctx context.Context) error
	Approve(ctx context.Context, args []string) error
	Reject(ctx context.Context, args []string) error
	Rename(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Users(ctx context.Context, args []string) error
}

// gatedCommand pairs a handler with the role set that guards it. An empty
// role set admits any authenticated identity.
type gatedCommand struct {
	roles []models.Role
	run   func(ctx context.Context, args []string) error
}

func gatedCommands(a execIface) map[string]gatedCommand {
	admin := []models.Role{models.RoleAdmin}
	return map[string]gatedCommand{
		"whoami":   {nil, func(ctx context.Context, _ []string) error { return a.WhoAmI() }},
		"logout":   {nil, func(ctx context.Context, _ []string) error { return a.Logout(ctx) }},
		"list":     {nil, a.List},
		"l":        {nil, a.List},
		"search":   {nil, a.Search},
		"sem":      {nil, a.Semester},
		"status":   {nil, a.ByStatus},
		"download": {nil, a.Download},
		"upload":   {nil, func(ctx context.Context, _ []string) error { return a.Upload(ctx) }},
		"pending":  {admin, func(ctx context.Context, _ []string) error { return a.Pending(ctx) }},
		"approve":  {admin, a.Approve},
		"reject":   {admin, a.Reject},
		"rename":   {admin, a.Rename},
		"stats":    {admin, func(ctx context.Context, _ []string) error { return a.Stats(ctx) }},
		"users":    {admin, a.Users},
	}
}

func printHelp(ident *models.Identity) {
	switch {
	case ident == nil:
		printlnFn("Available commands: register, login, exit")
	case ident.IsAdmin():
		printlnFn("Available commands: (l)ist, search, sem, status, download, upload, pending, approve, reject, rename, stats, users, whoami, logout, exit")
	default:
		printlnFn("Available commands: (l)ist, search, sem, status, download, upload, whoami, logout, exit")
	}
}

// runREPL starts a simple read–eval–print loop for the StudyHub CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Every command other than help, register, login, and exit passes through the
// role gate before running. A caller with no session is asked to log in; a
// caller whose role does not cover the command is told so and nothing runs.
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account (email verification)
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - list [page]    — page through the catalog
//	  - search <text>  — match file name or subject
//	  - sem <n>        — filter by semester
//	  - status <s>     — filter by pending/approved
//	  - download <id>  — save a material to disk
//	  - upload         — submit a material
//	  - whoami, logout, exit
//
//	Administrators additionally:
//	  - pending        — list materials awaiting review
//	  - approve <id>   — publish a pending material
//	  - reject <id>    — delete a material (asks for confirmation)
//	  - rename <id>    — change the stored file name
//	  - stats          — per-type counts and the review queue
//	  - users [q] [p]  — list accounts, optionally filtered by email
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	commands := gatedCommands(a)

	for {
		printlnFn(fmt.Sprintf("studyhub %s> ", statusFn()))
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
			printHelp(a.identity())

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			g, ok := commands[cmd]
			if !ok {
				printlnFn("Unknown command:", cmd)
				continue
			}
			decision := services.Authorize(a.identity(), g.roles...)
			if !decision.Allowed {
				if decision.Redirect == services.LoginPath {
					printlnFn("Please log in first.")
					_ = a.Login(ctx)
					continue
				}
				printlnFn("This command needs administrator access.")
				continue
			}
			_ = g.run(ctx, args)
		}
	}
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to StudyHub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if a.identity() == nil {
		a.Login(ctx)
	}

	runREPL(ctx, a, a.getStatus, scanner)
}
