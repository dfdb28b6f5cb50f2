package container

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"mitrasafety/storefront/internal/domain"
	"mitrasafety/storefront/internal/service"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const usage = `usage: storefront <command> [flags]

commands:
  products   [-q text] [-category a,b] [-min n] [-max n] [-in-stock]
             [-protection a,b] [-standard a,b] [-hazard a,b]
  product    <id>
  categories
  cart
  add        <product-id> [quantity]
  set        <product-id> <quantity>
  remove     <product-id>
  clear
  checkout   -name .. -phone .. -address .. -province .. -city .. -postal ..
             [-email ..] [-payment transfer|ewallet|cod]`

var printer = message.NewPrinter(language.Indonesian)

func formatPrice(amount int64) string {
	return printer.Sprintf("Rp %d", amount)
}

// Run executes one storefront command.
func (c *Container) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "products":
		return c.runProducts(ctx, rest)
	case "product":
		return c.runProduct(ctx, rest)
	case "categories":
		return c.runCategories(ctx)
	case "cart":
		c.printCart()
		return nil
	case "add":
		return c.runAdd(ctx, rest)
	case "set":
		return c.runSet(rest)
	case "remove":
		if len(rest) != 1 {
			return errors.New("usage: storefront remove <product-id>")
		}
		c.Cart.RemoveItem(rest[0])
		c.printCart()
		return nil
	case "clear":
		c.Cart.ClearCart()
		c.printCart()
		return nil
	case "checkout":
		return c.runCheckout(ctx, rest)
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

func (c *Container) runProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	fs.SetOutput(c.out)
	query := fs.String("q", "", "search text")
	categories := fs.String("category", "", "comma-separated categories")
	minPrice := fs.Int64("min", 0, "minimum price")
	maxPrice := fs.Int64("max", c.Config.Filters.MaxPrice, "maximum price")
	inStock := fs.Bool("in-stock", false, "only products in stock")
	protections := fs.String("protection", "", "comma-separated protection levels (all required)")
	standards := fs.String("standard", "", "comma-separated compliance standards (all required)")
	hazards := fs.String("hazard", "", "comma-separated hazard classes (all required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.Service.LoadStorefront(ctx); err != nil && len(c.Products.Products()) == 0 {
		return err
	}

	c.Products.UpdateFilters(domain.FilterUpdate{
		SearchQuery:         query,
		SelectedCategories:  splitList(*categories),
		PriceRange:          &domain.PriceRange{Min: *minPrice, Max: *maxPrice},
		InStockOnly:         inStock,
		SelectedProtections: splitList(*protections),
		SelectedStandards:   splitList(*standards),
		SelectedHazards:     splitList(*hazards),
	})

	filtered := c.Products.FilteredProducts()
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
	for _, p := range filtered {
		stock := "yes"
		if !p.InStock {
			stock = "no"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, formatPrice(p.Price), stock)
	}
	w.Flush()
	fmt.Fprintf(c.out, "%d of %d products\n", len(filtered), len(c.Products.Products()))
	return nil
}

func (c *Container) runProduct(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: storefront product <id>")
	}

	p, err := c.Service.OpenProduct(ctx, args[0])
	if err != nil {
		return err
	}
	defer c.Products.CloseProductDetail()

	fmt.Fprintf(c.out, "%s\n%s\n\n", p.Name, p.PlainDescription())
	fmt.Fprintf(c.out, "Price:       %s", formatPrice(p.Price))
	if p.OriginalPrice != nil {
		fmt.Fprintf(c.out, " (was %s)", formatPrice(*p.OriginalPrice))
	}
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "Category:    %s\n", p.Category)
	fmt.Fprintf(c.out, "In stock:    %t\n", p.InStock)
	if p.Badge != "" {
		fmt.Fprintf(c.out, "Badge:       %s\n", p.Badge)
	}
	for _, spec := range p.Specifications {
		fmt.Fprintf(c.out, "%-12s %s\n", spec.Label+":", spec.Value)
	}
	fmt.Fprintf(c.out, "Protection:  %s\n", strings.Join(p.ProtectionLevels, ", "))
	fmt.Fprintf(c.out, "Standards:   %s\n", strings.Join(p.ComplianceStandards, ", "))
	fmt.Fprintf(c.out, "Hazards:     %s\n", strings.Join(p.HazardClasses, ", "))
	return nil
}

func (c *Container) runCategories(ctx context.Context) error {
	if err := c.Service.LoadStorefront(ctx); err != nil && len(c.Products.Categories()) == 0 {
		return err
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRODUCTS")
	for _, cat := range c.Products.Categories() {
		fmt.Fprintf(w, "%s\t%s %s\t%d\n", cat.ID, cat.Icon, cat.Name, cat.ProductCount)
	}
	return w.Flush()
}

func (c *Container) runAdd(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("usage: storefront add <product-id> [quantity]")
	}

	quantity := 1
	if len(args) == 2 {
		q, err := strconv.Atoi(args[1])
		if err != nil || q < 1 {
			return fmt.Errorf("quantity must be a positive integer, got %q", args[1])
		}
		quantity = q
	}

	if _, err := c.Service.AddToCart(ctx, args[0], quantity); err != nil {
		return err
	}
	c.printCart()
	return nil
}

func (c *Container) runSet(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: storefront set <product-id> <quantity>")
	}

	q, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("quantity must be an integer, got %q", args[1])
	}

	c.Cart.UpdateQuantity(args[0], q)
	c.printCart()
	return nil
}

func (c *Container) runCheckout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(c.out)
	var req service.CheckoutRequest
	fs.StringVar(&req.Name, "name", "", "customer name")
	fs.StringVar(&req.Phone, "phone", "", "customer phone")
	fs.StringVar(&req.Email, "email", "", "customer email")
	fs.StringVar(&req.Address, "address", "", "shipping address")
	fs.StringVar(&req.Province, "province", "", "shipping province")
	fs.StringVar(&req.City, "city", "", "shipping city")
	fs.StringVar(&req.PostalCode, "postal", "", "shipping postal code")
	fs.StringVar(&req.PaymentMethod, "payment", domain.PaymentMethodTransfer.String(), "transfer, ewallet or cod")
	if err := fs.Parse(args); err != nil {
		return err
	}

	order, err := c.Service.Checkout(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Order %s placed (%s)\n", order.ID, order.Status)
	fmt.Fprintf(c.out, "Subtotal: %s\nShipping: %s\nTotal:    %s\n",
		formatPrice(order.Subtotal), formatPrice(order.Shipping), formatPrice(order.Total))
	return nil
}

func (c *Container) printCart() {
	items := c.Cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(c.out, "Cart is empty")
		return
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tNAME\tQTY\tPRICE\tLINE")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", item.ProductID, item.Name, item.Quantity,
			formatPrice(item.Price), formatPrice(item.Price*int64(item.Quantity)))
	}
	w.Flush()

	totals := c.Cart.Totals()
	shipping := formatPrice(totals.Shipping)
	if totals.Shipping == 0 {
		shipping = "free"
	}
	fmt.Fprintf(c.out, "Items:    %d\nSubtotal: %s\nShipping: %s\nTotal:    %s\n",
		totals.TotalItems, formatPrice(totals.Subtotal), shipping, formatPrice(totals.Total))
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
