package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	UploadAvatar(ctx context.Context) error
	ListMedia(ctx context.Context) error
	UploadMedia(ctx context.Context) error
	DeleteMedia(ctx context.Context) error
	History(ctx context.Context) error
	Usage(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, help, exit"
	helpLoggedIn  = "Available commands: whoami, profile, update, avatar, (l)ist, upload, delete, history, usage, logout, exit"
)

// runREPL reads a line, parses the first token as the command, and dispatches
// to methods on 'a'. Unknown commands are reported back to the user. The loop
// exits on scanner EOF, ctx cancellation, or when the user types "exit" or
// "quit".
//
// Command handlers report their own errors to the user; the loop only prints
// them, so no failure is fatal and every command returns to the prompt.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "joana> %s > \n", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "profile":
			err = a.Profile(ctx)

		case "update":
			err = a.UpdateProfile(ctx)

		case "avatar":
			err = a.UploadAvatar(ctx)

		case "l", "list":
			err = a.ListMedia(ctx)

		case "upload":
			err = a.UploadMedia(ctx)

		case "delete":
			err = a.DeleteMedia(ctx)

		case "history":
			err = a.History(ctx)

		case "usage":
			err = a.Usage(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(w, "Error:", err)
		}
	}
}
