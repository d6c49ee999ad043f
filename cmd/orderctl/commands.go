package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Beka01247/coffee-order/internal/ordering"
)

func runMenu(ctx context.Context, engine *ordering.Engine, args []string) error {
	fs := flag.NewFlagSet("menu", flag.ExitOnError)
	all := fs.Bool("all", false, "list both the custom and the vendor menu")
	_ = fs.Parse(args)

	if !*all {
		fmt.Printf("menu: %s (active)\n", engine.Settings().Mode)
		return printCatalog(engine.Catalog())
	}

	custom, vendor, err := engine.PreviewCatalogs(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("menu: %s (active)\n\n", engine.Settings().Mode)
	fmt.Println("== custom ==")
	if err := printCatalog(custom); err != nil {
		return err
	}
	fmt.Println("\n== vendor ==")
	return printCatalog(vendor)
}

func printCatalog(catalog *ordering.Catalog) error {
	fmt.Printf("%d items\n", catalog.Len())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, category := range catalog.Categories() {
		fmt.Fprintf(w, "\n[%s]\n", category)
		for _, item := range catalog.Items(category) {
			fmt.Fprintf(w, "  %s\t%s\n", item.ID(), item.Name())
		}
	}
	return w.Flush()
}

func runToday(engine *ordering.Engine) error {
	orders := engine.TodayOrders()
	fmt.Printf("%s  %d orders  ordering %s\n", engine.Today(), len(orders), openLabel(engine))
	printOrders(orders)

	summary := ordering.Summarize(orders)
	if len(summary) == 0 {
		return nil
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tOPTION\tCOUNT\tMEMBERS")
	for _, line := range summary {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", line.ItemName, optionText(line.Option), line.Count, strings.Join(line.Members, ", "))
	}
	return w.Flush()
}

func printOrders(orders []ordering.Order) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMEMBER\tITEM\tOPTION\tSOURCE")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", o.ID, o.MemberName, o.ItemName, o.OptionText(), o.Source)
	}
	_ = w.Flush()
}

func runOrder(ctx context.Context, engine *ordering.Engine, args []string) error {
	fs := flag.NewFlagSet("order", flag.ExitOnError)
	member := fs.String("member", "", "member ID")
	item := fs.String("item", "", "menu item ID")
	temperature := fs.String("temp", "", "temperature code (vendor items)")
	size := fs.String("size", "", "size code (vendor items)")
	option := fs.String("option", "", "personal option")
	preset := fs.String("preset", "", "saved personal option to add, by name")
	yes := fs.Bool("yes", false, "replace today's order without asking")
	_ = fs.Parse(args)

	if _, err := engine.SelectMember(*member); err != nil {
		return err
	}

	found, ok := engine.Catalog().Lookup(*item)
	if !ok {
		return fmt.Errorf("unknown item %q", *item)
	}
	if _, err := engine.SelectCategory(found.Category()); err != nil {
		return err
	}
	if _, err := engine.SelectItem(*item); err != nil {
		return err
	}

	if found.HasVariants() {
		engine.WaitVariants()
		if *temperature != "" {
			if _, err := engine.SelectTemperature(*temperature); err != nil {
				return err
			}
		}
		if *size != "" {
			if _, err := engine.SelectSize(*size); err != nil {
				return err
			}
		}
	}
	draft := engine.SetPersonalOption(*option)
	if *preset != "" {
		var err error
		if draft, err = engine.ApplyPreset(ctx, *preset); err != nil {
			return err
		}
	}

	out, err := engine.Submit(ctx)
	if err != nil {
		return err
	}

	if out.Kind == ordering.OutcomeCreated {
		fmt.Printf("ordered %s for %s\n", out.Order.ItemName, out.Order.MemberName)
		return nil
	}

	p := *out.Pending
	fmt.Printf("%s already ordered %s %s today\n", p.Existing.MemberName, p.Existing.ItemName, p.Existing.OptionText())
	fmt.Printf("replace with %s %s\n", p.ProposedItemName, p.ProposedOption())
	if !*yes {
		engine.CancelChange()
		return errors.New("order unchanged, pass -yes to replace it")
	}

	order, err := engine.ConfirmChange(ctx, p)
	if err != nil {
		return err
	}
	fmt.Printf("changed order of %s to %s (%s)\n", order.MemberName, order.ItemName, draftLabel(draft))
	return nil
}

func runPresets(ctx context.Context, engine *ordering.Engine) error {
	presets, err := engine.Presets(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tNAME")
	for _, p := range presets {
		fmt.Fprintf(w, "%s\t%s\n", p.Category, p.Name)
	}
	return w.Flush()
}

func runReorder(ctx context.Context, engine *ordering.Engine, args []string) error {
	fs := flag.NewFlagSet("reorder", flag.ExitOnError)
	member := fs.String("member", "", "member ID")
	_ = fs.Parse(args)

	if _, err := engine.SelectMember(*member); err != nil {
		return err
	}

	c, err := engine.RefreshCandidate(ctx)
	if err != nil {
		return err
	}
	if c == nil {
		return ordering.ErrNoCandidate
	}
	if !c.Enabled {
		return ordering.ErrSourceMismatch
	}

	order, err := engine.Reorder(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("reordered %s %s for %s\n", order.ItemName, order.OptionText(), order.MemberName)
	return nil
}

func runCancel(ctx context.Context, engine *ordering.Engine, args []string) error {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	id := fs.String("id", "", "order ID")
	_ = fs.Parse(args)

	if *id == "" {
		return errors.New("-id is required")
	}
	if err := engine.CancelOrder(ctx, *id); err != nil {
		return err
	}
	fmt.Println("order cancelled")
	return nil
}

func runSync(ctx context.Context, engine *ordering.Engine, g globals, args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	_ = fs.Parse(args)

	if g.department != "" {
		if err := engine.Open(ctx, g.department); err != nil {
			return err
		}
	}

	last := -1
	engine.OnEvent(func(ev ordering.Event) {
		if ev.Kind != ordering.EventSync {
			return
		}
		p := engine.Sync().Progress()
		if p.OverallProgress == last {
			return
		}
		last = p.OverallProgress
		fmt.Printf("%3d%%  %s  %d/%d\n", p.OverallProgress, p.StepName, p.ProcessedCount, p.TotalCount)
	})

	if err := engine.StartSync(ctx); err != nil {
		return err
	}
	if !engine.Sync().Initiator() {
		fmt.Println("a sync is already running, following it")
	}

	p, err := engine.Sync().Wait(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("sync finished: %s\n", p.Status)
	return nil
}

func runWatch(ctx context.Context, engine *ordering.Engine) error {
	updates := make(chan struct{}, 1)
	engine.OnEvent(func(ev ordering.Event) {
		switch ev.Kind {
		case ordering.EventOrders, ordering.EventAvailability:
			select {
			case updates <- struct{}{}:
			default:
			}
		}
	})

	_ = runToday(engine)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-updates:
			fmt.Print("\033[H\033[2J")
			_ = runToday(engine)
		}
	}
}

func openLabel(engine *ordering.Engine) string {
	if err := engine.AvailabilityError(); err != nil {
		return "unknown (" + ordering.UserMessage(err) + ")"
	}
	if engine.OrderingOpen() {
		return "open"
	}
	return "closed"
}

func optionText(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func draftLabel(d ordering.Draft) string {
	if desc := d.VariantDescription(); desc != "" {
		return desc
	}
	return "no variants"
}
