package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nikolayk812/pos-demo/internal/cart"
	"github.com/nikolayk812/pos-demo/internal/checkout"
	"github.com/nikolayk812/pos-demo/internal/domain"
	"github.com/nikolayk812/pos-demo/internal/payment"
	"github.com/nikolayk812/pos-demo/internal/port"
)

const helpText = `commands:
  search [term]        list catalog items matching name or barcode
  add <id|barcode>     add one unit to the cart
  remove <id>          drop a line from the cart
  qty <id> <n>         set a line quantity
  pay <method>         select the payment method
  cart                 show cart, totals and payment method
  checkout             submit the sale
  clear                reset cart and payment method
  quit                 leave the register`

var errQuit = errors.New("quit")

// register is the terminal shell around the sale engine.
type register struct {
	catalog port.CatalogProvider
	cart    *cart.Store
	payment *payment.Selector
	ctrl    *checkout.Controller
	out     io.Writer
}

func (r *register) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(r.out, "register ready, type 'help' for commands")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			break
		}

		err := r.exec(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner.Scan: %w", err)
	}
	return nil
}

func (r *register) exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "help":
		fmt.Fprintln(r.out, helpText)
		return nil
	case "search":
		return r.search(ctx, strings.Join(args, " "))
	case "add":
		if len(args) != 1 {
			return fmt.Errorf("usage: add <id|barcode>")
		}
		return r.add(ctx, args[0])
	case "remove":
		if len(args) != 1 {
			return fmt.Errorf("usage: remove <id>")
		}
		if !r.cart.RemoveItem(args[0]) {
			fmt.Fprintf(r.out, "item %s is not in the cart\n", args[0])
		}
		return r.show()
	case "qty":
		if len(args) != 2 {
			return fmt.Errorf("usage: qty <id> <n>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("quantity[%s] is not a number", args[1])
		}
		if err := r.cart.SetQuantity(args[0], n); err != nil {
			return err
		}
		return r.show()
	case "pay":
		if len(args) == 0 {
			return fmt.Errorf("usage: pay <method>, accepted: %s", r.acceptedMethods())
		}
		method, err := payment.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		if err := r.payment.Select(method); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "payment method: %s\n", method.Label())
		return nil
	case "cart":
		return r.show()
	case "checkout":
		fmt.Fprintln(r.out, "processing sale...")
		// the outcome is printed by the notifier
		_, _ = r.ctrl.Checkout(ctx)
		return nil
	case "clear":
		r.cart.Clear()
		r.payment.Clear()
		fmt.Fprintln(r.out, "sale reset")
		return nil
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, type 'help'", cmd)
	}
}

func (r *register) search(ctx context.Context, term string) error {
	items, err := r.catalog.Search(ctx, term)
	if err != nil {
		return fmt.Errorf("catalog.Search: %w", err)
	}

	if len(items) == 0 {
		fmt.Fprintln(r.out, "no products found")
		return nil
	}

	for _, item := range items {
		fmt.Fprintf(r.out, "%-4s %-20s %8s  %s\n", item.ID, item.Name, item.UnitPrice.StringFixed(2), item.Barcode)
	}
	return nil
}

func (r *register) add(ctx context.Context, ref string) error {
	item, err := r.catalog.Get(ctx, ref)
	if errors.Is(err, port.ErrItemNotFound) {
		item, err = r.catalog.LookupBarcode(ctx, ref)
	}
	if err != nil {
		return err
	}

	r.cart.AddItem(item)
	return r.show()
}

func (r *register) show() error {
	lines := r.cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(r.out, "cart is empty")
	}

	for _, l := range lines {
		fmt.Fprintf(r.out, "%-4s %-20s %s x %d = %s\n",
			l.ItemID, l.Name, l.UnitPrice.StringFixed(2), l.Quantity, l.LineTotal().StringFixed(2))
	}

	t := r.ctrl.Totals()
	fmt.Fprintf(r.out, "subtotal %s  tax %s  total %s\n", t.Subtotal, t.Tax, t.Total)

	if method, ok := r.payment.Selected(); ok {
		fmt.Fprintf(r.out, "payment method: %s\n", method.Label())
	}
	return nil
}

func (r *register) acceptedMethods() string {
	var names []string
	for _, m := range r.payment.Accepted() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}

// screen prints checkout outcomes for the operator.
type screen struct {
	out io.Writer
}

func (s screen) OnCheckoutSucceeded(_ context.Context, event domain.CheckoutSucceeded) {
	fmt.Fprintf(s.out, "sale completed: %s paid by %s (confirmation %s)\n",
		event.Total, event.PaymentMethod.Label(), event.Confirmation.ID)
}

func (s screen) OnCheckoutFailed(_ context.Context, event domain.CheckoutFailed) {
	fmt.Fprintln(s.out, checkout.Message(event.Reason))
}

func (s screen) OnValidationFailed(_ context.Context, event domain.ValidationFailed) {
	fmt.Fprintln(s.out, checkout.Message(event.Reason))
}
