package storefront

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const helpText = `commands:
  menu          show the menu
  add <n>       add menu item n to the cart
  remove <n>    remove cart line n
  cart          show the cart
  order         place the order
  orders        load saved orders
  seed          reset the menu
  help          show this help
  quit          exit`

// Run reads commands from in until EOF or quit, writing output to out.
func (s *Storefront) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.LoadCatalog(ctx)
	s.RenderMenu(out)
	fmt.Fprintln(out, helpText)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "menu":
			s.RenderMenu(out)
		case "add":
			n, ok := parseIndex(fields, len(s.state.Catalog))
			if !ok {
				fmt.Fprintln(out, "usage: add <menu number>")
				continue
			}
			s.AddToCart(s.state.Catalog[n].ID)
			s.RenderCart(out)
		case "remove":
			n, ok := parseIndex(fields, len(s.state.Cart))
			if !ok {
				fmt.Fprintln(out, "usage: remove <cart line number>")
				continue
			}
			s.RemoveFromCart(s.state.Cart[n].FoodID)
			s.RenderCart(out)
		case "cart":
			s.RenderCart(out)
		case "order":
			if s.state.Cart.IsEmpty() {
				fmt.Fprintln(out, "No items in cart.")
				continue
			}
			s.SubmitOrder(ctx)
			fmt.Fprintln(out, s.state.Message)
		case "orders":
			s.LoadOrders(ctx)
			s.RenderOrders(out)
		case "seed":
			s.Seed(ctx)
			fmt.Fprintln(out, s.state.Message)
			s.RenderMenu(out)
		case "help":
			fmt.Fprintln(out, helpText)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(out, "unknown command %q, try help\n", fields[0])
		}
	}
}

// parseIndex turns a 1-based argument into a 0-based index below limit.
func parseIndex(fields []string, limit int) (int, bool) {
	if len(fields) != 2 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 || n > limit {
		return 0, false
	}
	return n - 1, true
}

func (s *Storefront) RenderMenu(out io.Writer) {
	fmt.Fprintln(out, "Menu")
	if len(s.state.Catalog) == 0 {
		fmt.Fprintln(out, "  (empty, try seed)")
		return
	}
	for i, item := range s.state.Catalog {
		fmt.Fprintf(out, "  %d. %-10s $%g\n", i+1, item.Name, item.Price)
	}
}

func (s *Storefront) RenderCart(out io.Writer) {
	fmt.Fprintln(out, "Cart")
	if s.state.Cart.IsEmpty() {
		fmt.Fprintln(out, "  No items in cart.")
		return
	}
	for i, line := range s.state.Cart {
		fmt.Fprintf(out, "  %d. %s x %d\n", i+1, line.Name, line.Quantity)
	}
}

func (s *Storefront) RenderOrders(out io.Writer) {
	fmt.Fprintln(out, "Orders")
	if len(s.state.Orders) == 0 {
		fmt.Fprintln(out, "  No saved orders.")
		return
	}
	for i, order := range s.state.Orders {
		fmt.Fprintf(out, "  Order #%d - %s\n", i+1, order.CreatedAt.Local().Format(time.DateTime))
		for _, line := range order.Items {
			name := "unknown item"
			if line.Food != nil {
				name = line.Food.Name
			}
			fmt.Fprintf(out, "    %s | Qty: %d\n", name, line.Quantity)
		}
	}
}
