// Command cli is a terminal storefront: it drives the same selection,
// pricing, validation, and submission engine the web client uses, against a
// running server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain"
	"storefront/internal/infra"
	"storefront/internal/storefront"
)

func main() {
	baseURL := os.Getenv("STOREFRONT_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	c := storefront.New(storefront.Config{
		Catalog: infra.NewCatalogClient(baseURL, 5*time.Second),
		Orders:  infra.NewOrdersClient(baseURL, 5*time.Second),
	})
	defer c.Dispose()

	ctx := context.Background()
	if err := c.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "load catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Catalog loaded. Commands: show, next, prev, dot N, slide N, pick ID,")
	fmt.Println("qty N, size S, zone inside|outside, name X, phone X, address X,")
	fmt.Println("summary, submit, quit")
	show(c)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		cmd, arg := splitCommand(scanner.Text())
		switch cmd {
		case "", "show":
			show(c)
		case "next":
			c.Next()
			show(c)
		case "prev":
			c.Prev()
			show(c)
		case "dot":
			runIndexed(arg, c.SelectDot)
			show(c)
		case "slide":
			runIndexed(arg, c.ClickSlide)
			show(c)
		case "pick":
			if id, err := strconv.ParseInt(arg, 10, 64); err != nil {
				fmt.Println("pick needs a product id")
			} else if err := c.ChooseProduct(id); err != nil {
				fmt.Println(err)
			}
			show(c)
		case "qty":
			q, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("qty needs a number")
				continue
			}
			c.SetQuantity(q)
		case "size":
			c.SetSize(strings.ToUpper(arg))
		case "zone":
			c.SetZone(domain.DeliveryZone(arg))
		case "name":
			c.SetName(arg)
		case "phone":
			c.SetPhone(arg)
		case "address":
			c.SetAddress(arg)
		case "summary":
			printSummary(c)
		case "submit":
			submit(ctx, c)
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

func splitCommand(line string) (cmd, arg string) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	cmd = strings.ToLower(parts[0])
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}

func runIndexed(arg string, fn func(int) error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Println("need a slide number")
		return
	}
	if err := fn(i); err != nil {
		fmt.Println(err)
	}
}

func show(c *storefront.Controller) {
	display, ok := c.DisplayedProduct()
	if !ok {
		fmt.Println("catalog empty")
		return
	}
	idx, _ := c.Selection()
	fmt.Printf("Slide %d/%d: %s — %d (regular %d)\n",
		idx+1, len(c.Catalog()), display.Name, display.OfferPrice, display.RegularPrice)
	if selected, ok := c.SelectedProduct(); ok {
		fmt.Printf("Order selection: %s (id %d)\n", selected.Name, selected.ID)
	} else {
		fmt.Println("Order selection: none")
	}
}

func printSummary(c *storefront.Controller) {
	quote := c.Summary()
	fmt.Printf("Subtotal %d + delivery %d = total %d\n", quote.Subtotal, quote.DeliveryCharge, quote.Total)

	v := c.Validate()
	if v.All() {
		fmt.Println("Form complete — ready to submit.")
		return
	}
	missing := []string{}
	for field, ok := range map[string]bool{
		"product": v.Product, "name": v.Name, "phone": v.Phone,
		"zone": v.Zone, "address": v.Address, "size": v.Size,
	} {
		if !ok {
			missing = append(missing, field)
		}
	}
	fmt.Println("Still needed:", strings.Join(missing, ", "))
}

func submit(ctx context.Context, c *storefront.Controller) {
	draft, err := c.Submit(ctx)
	if err != nil {
		fmt.Println("submit failed:", err)
		return
	}
	fmt.Println("Order placed!")
	fmt.Println(draft.Summary())
}
