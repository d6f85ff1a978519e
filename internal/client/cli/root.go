package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if id := a.session.Identity(); id != nil {
		s = id.Email
	} else if a.isLoggedIn() {
		s = "token"
	}
	if n := a.cart.Len(); n > 0 {
		s = strings.TrimSpace(s + fmt.Sprintf(" cart:%d", n))
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  check | seturl <url>")
	fmt.Println("  register | login | logout | me")
	fmt.Println("  categories | products | reload | addcategory | addproduct")
	fmt.Println("  add <id> | inc <id> | dec <id> | cart | clearcart")
	fmt.Println("  checkout | orders")
	fmt.Println("  exit | quit")
}

// Root runs the interactive loop. Command handler errors never terminate
// the loop; they become status lines via report.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to stylecart (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("shop %s> ", a.getStatus())
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

		switch cmd {
		case "help":
			a.printHelp()
		case "check":
			a.report(a.Check(ctx))
		case "seturl":
			if len(args) == 0 {
				fmt.Println("Usage: seturl <url>")
				continue
			}
			a.report(a.SetURL(ctx, strings.Join(args, " ")))
		case "register":
			a.report(a.Register(ctx))
		case "login":
			a.report(a.Login(ctx))
		case "logout":
			a.report(a.Logout(ctx))
		case "me":
			a.report(a.Me(ctx))
		case "categories":
			a.report(a.Categories(ctx))
		case "products":
			a.report(a.Products(ctx))
		case "reload":
			a.report(a.ReloadCatalog(ctx))
		case "addcategory":
			a.report(a.AddCategory(ctx))
		case "addproduct":
			a.report(a.AddProduct(ctx))
		case "add":
			if len(args) == 0 {
				fmt.Println("Usage: add <product id>")
				continue
			}
			a.report(a.AddToCart(ctx, args[0]))
		case "inc":
			if len(args) == 0 {
				fmt.Println("Usage: inc <product id>")
				continue
			}
			a.report(a.IncrementLine(args[0]))
		case "dec":
			if len(args) == 0 {
				fmt.Println("Usage: dec <product id>")
				continue
			}
			a.report(a.DecrementLine(args[0]))
		case "cart":
			a.report(a.ShowCart())
		case "clearcart":
			a.report(a.ClearCart())
		case "checkout":
			a.report(a.Checkout(ctx))
		case "orders":
			a.report(a.Orders(ctx))
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
