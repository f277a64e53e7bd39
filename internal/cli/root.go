package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Categories(ctx context.Context) error
	Products(ctx context.Context, category, keyword string) error
	Item(ctx context.Context, id int) error
	Add(ctx context.Context, id, quantity int) error
	Remove(ctx context.Context, id string) error
	ShowCart(ctx context.Context) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
	Profile(ctx context.Context) error
	SetImage(ctx context.Context, path string) error
	SetLocation(ctx context.Context) error
}

func (a *App) getStatus() string {
	if a.sess == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.sess.Email)
}

// Root starts the interactive loop on stdin/stdout.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "tiendita (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on a. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "tiendita %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: categories, products <category> [keyword], item <id>,")
				fmt.Fprintln(w, "  add <id> [qty], remove <id>, cart, clear, checkout, orders,")
				fmt.Fprintln(w, "  profile, setimage <path>, setlocation, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: login, register, categories, products <category> [keyword], item <id>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "products":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: products <category> [keyword]")
				continue
			}
			keyword := ""
			if len(args) > 1 {
				keyword = args[1]
			}
			_ = a.Products(ctx, args[0], keyword)

		case "item":
			id, ok := parseID(w, args, "item <id>")
			if !ok {
				continue
			}
			_ = a.Item(ctx, id)

		case "add":
			id, ok := parseID(w, args, "add <id> [qty]")
			if !ok {
				continue
			}
			quantity := 1
			if len(args) > 1 {
				q, err := strconv.Atoi(args[1])
				if err != nil || q < 1 {
					fmt.Fprintln(w, "Quantity must be a positive number.")
					continue
				}
				quantity = q
			}
			_ = a.Add(ctx, id, quantity)

		case "remove":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: remove <id>")
				continue
			}
			_ = a.Remove(ctx, args[0])

		case "cart":
			_ = a.ShowCart(ctx)

		case "clear":
			_ = a.ClearCart(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "orders":
			_ = a.Orders(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "setimage":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: setimage <path>")
				continue
			}
			_ = a.SetImage(ctx, args[0])

		case "setlocation":
			_ = a.SetLocation(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

func parseID(w io.Writer, args []string, usage string) (int, bool) {
	if len(args) == 0 {
		fmt.Fprintln(w, "Usage:", usage)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(w, "Product id must be a number.")
		return 0, false
	}
	return id, true
}
