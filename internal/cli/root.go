package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mcorbu/shelterdesk/internal/session"
)

func (a *App) getStatus() string {
	if id := a.sessions.Identifier(); id != session.Unknown {
		return fmt.Sprintf("(%s)", id)
	}
	return ""
}

// Root runs the interactive command loop until EOF or an explicit exit.
// Command handlers report user-level problems themselves; an error escaping
// a handler is logged and the loop continues.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "ShelterDesk (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "shelter %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: animals, adopt <code>, cancel <code>, requests, profile, edit, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, animals, exit")
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "profile":
			err = a.showProfile(ctx)
		case "edit":
			err = a.editProfile(ctx)
		case "animals":
			err = a.listAnimals(ctx)
		case "addanimal":
			err = a.addAnimal(ctx)
		case "adopt":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: adopt <code>")
				continue
			}
			err = a.adopt(ctx, args[0])
		case "cancel":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: cancel <code>")
				continue
			}
			err = a.cancelRequest(ctx, args[0])
		case "requests":
			err = a.listRequests(ctx)
		case "reconcile":
			err = a.reconcile(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if err != nil {
			a.log.Error(ctx, "command failed", "command", cmd, "error", err)
			fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		}
	}
}
