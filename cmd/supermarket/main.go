// Command supermarket runs the point-of-sale terminal. It wires the
// text-file stores, auth and session together and drives a line-oriented
// menu; all business rules live in the workflow layer.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/auth"
	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/config"
	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/service"
	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/storage/textfile"
	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/pkg/logging"
)

// The seller screen caps quantities; the core only requires positivity.
const maxQuantity = 100

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)
	logger := slog.Default()

	ctx := context.Background()

	items := textfile.NewItemStore(cfg.ItemsPath(), logger)
	users := textfile.NewUserStore(cfg.UsersPath(), logger)
	bills := textfile.NewBillLog(cfg.BillsPath())
	tokens := auth.NewSessionTokens(cfg.SessionSecret, cfg.SessionTTL, cfg.SessionPath())

	authenticator := auth.NewPlaintextAuthenticator(users, logger)
	if err := authenticator.Bootstrap(ctx); err != nil {
		logger.Error("Failed to bootstrap user store", "error", err)
		os.Exit(1)
	}

	session := service.NewSession(authenticator, items, users, bills, tokens, logger)

	t := &terminal{
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		session: session,
	}
	t.run(ctx)
}

// terminal is the presentation layer: it formats input and output and
// invokes workflow methods, nothing more.
type terminal struct {
	in      *bufio.Reader
	out     io.Writer
	session *service.Session
}

func (t *terminal) run(ctx context.Context) {
	fmt.Fprintln(t.out, "=== Supermarket Management System ===")
	for {
		wf, err := t.session.Resume(ctx)
		if err != nil {
			wf = t.loginLoop(ctx)
			if wf == nil {
				fmt.Fprintln(t.out, "Goodbye!")
				return
			}
		} else {
			fmt.Fprintf(t.out, "Resumed session for %s.\n", wf.User().Username)
		}

		switch w := wf.(type) {
		case *service.AdminWorkflow:
			t.adminMenu(ctx, w)
		case *service.SellerWorkflow:
			t.sellerMenu(ctx, w)
		}
		t.session.Logout()
	}
}

func (t *terminal) loginLoop(ctx context.Context) service.Workflow {
	for {
		username := t.prompt("\nUsername (blank to exit): ")
		if username == "" {
			return nil
		}
		password := t.prompt("Password: ")
		wf, err := t.session.Login(ctx, username, password)
		if err != nil {
			fmt.Fprintln(t.out, "Login failed:", err)
			continue
		}
		fmt.Fprintf(t.out, "Login successful. Welcome, %s!\n", wf.User().Username)
		return wf
	}
}

func (t *terminal) adminMenu(ctx context.Context, w *service.AdminWorkflow) {
	for {
		fmt.Fprintf(t.out, "\n--- Admin Panel (%s) ---\n", w.User().Username)
		fmt.Fprintln(t.out, "1. List items")
		fmt.Fprintln(t.out, "2. Add item")
		fmt.Fprintln(t.out, "3. Delete item")
		fmt.Fprintln(t.out, "4. List sellers")
		fmt.Fprintln(t.out, "5. Add seller")
		fmt.Fprintln(t.out, "6. Delete seller")
		fmt.Fprintln(t.out, "q. Logout")

		switch t.prompt("Enter your choice: ") {
		case "1":
			t.listItems(ctx, w)
		case "2":
			item, err := w.AddItem(ctx, t.prompt("Item name: "), t.prompt("Item price (PKR): "))
			if err != nil {
				t.reportError(err)
				continue
			}
			fmt.Fprintf(t.out, "Item %q added with ID %s.\n", item.Name, item.ID)
		case "3":
			if err := w.DeleteItem(ctx, t.prompt("Item ID to delete: ")); err != nil {
				t.reportError(err)
				continue
			}
			fmt.Fprintln(t.out, "Item deleted.")
		case "4":
			t.listSellers(ctx, w)
		case "5":
			seller, err := w.AddSeller(ctx, t.prompt("Seller username: "), t.prompt("Seller password: "))
			if err != nil {
				t.reportError(err)
				continue
			}
			fmt.Fprintf(t.out, "Seller %q added.\n", seller.Username)
		case "6":
			if err := w.DeleteSeller(ctx, t.prompt("Seller username to delete: ")); err != nil {
				t.reportError(err)
				continue
			}
			fmt.Fprintln(t.out, "Seller deleted.")
		case "q", "Q":
			return
		default:
			fmt.Fprintln(t.out, "Invalid choice. Please try again.")
		}
	}
}

func (t *terminal) sellerMenu(ctx context.Context, w *service.SellerWorkflow) {
	for {
		fmt.Fprintf(t.out, "\n--- Seller Panel (%s) ---\n", w.User().Username)
		fmt.Fprintln(t.out, "1. Show catalog")
		fmt.Fprintln(t.out, "2. Add item to bill")
		fmt.Fprintln(t.out, "3. Show current bill")
		fmt.Fprintln(t.out, "4. Generate & save bill")
		fmt.Fprintln(t.out, "5. Clear bill")
		fmt.Fprintln(t.out, "q. Logout")

		switch t.prompt("Enter your choice: ") {
		case "1":
			t.listCatalog(ctx, w)
		case "2":
			itemID := t.prompt("Item ID: ")
			quantity, err := strconv.Atoi(t.prompt("Quantity: "))
			if err != nil || quantity < 1 || quantity > maxQuantity {
				fmt.Fprintf(t.out, "Quantity must be a whole number between 1 and %d.\n", maxQuantity)
				continue
			}
			if err := w.AddLine(ctx, itemID, quantity); err != nil {
				t.reportError(err)
				continue
			}
			fmt.Fprintf(t.out, "Added. Running total: PKR %.2f\n", w.Total())
		case "3":
			fmt.Fprint(t.out, w.Preview())
		case "4":
			bill, receipt, err := w.Generate(ctx)
			if err != nil {
				t.reportError(err)
				continue
			}
			fmt.Fprint(t.out, receipt)
			fmt.Fprintf(t.out, "Bill %s saved.\n", bill.ID)
		case "5":
			w.Clear()
			fmt.Fprintln(t.out, "Bill cleared.")
		case "q", "Q":
			return
		default:
			fmt.Fprintln(t.out, "Invalid choice. Please try again.")
		}
	}
}

func (t *terminal) listItems(ctx context.Context, w *service.AdminWorkflow) {
	items, err := w.Items(ctx)
	if err != nil {
		t.reportError(err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(t.out, "No items in the catalog yet.")
		return
	}
	fmt.Fprintf(t.out, "%-36s  %-25s  %s\n", "Item ID", "Name", "Price (PKR)")
	for _, item := range items {
		fmt.Fprintf(t.out, "%-36s  %-25s  %.2f\n", item.ID, item.Name, item.Price)
	}
}

func (t *terminal) listSellers(ctx context.Context, w *service.AdminWorkflow) {
	users, err := w.Sellers(ctx)
	if err != nil {
		t.reportError(err)
		return
	}
	fmt.Fprintf(t.out, "%-20s  %s\n", "Username", "Role")
	for _, user := range users {
		fmt.Fprintf(t.out, "%-20s  %s\n", user.Username, user.Role)
	}
}

func (t *terminal) listCatalog(ctx context.Context, w *service.SellerWorkflow) {
	items, err := w.Items(ctx)
	if err != nil {
		t.reportError(err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(t.out, "The catalog is empty.")
		return
	}
	fmt.Fprintf(t.out, "%-36s  %-25s  %s\n", "Item ID", "Name", "Price (PKR)")
	for _, item := range items {
		fmt.Fprintf(t.out, "%-36s  %-25s  %.2f\n", item.ID, item.Name, item.Price)
	}
}

func (t *terminal) prompt(label string) string {
	fmt.Fprint(t.out, label)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		// EOF on stdin: treat as an empty answer.
		return ""
	}
	return strings.TrimSpace(line)
}

// reportError surfaces a failed operation and leaves the menu usable;
// no error is fatal to the process.
func (t *terminal) reportError(err error) {
	fmt.Fprintln(t.out, "Error:", err)
}
