package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"anketa/internal/config"
	"anketa/internal/progress"
	"anketa/internal/ui/picker"
)

// errNoVariants means no variant has a readable questions file.
var errNoVariants = errors.New("no questionnaires available: every questions file is missing")

// availableVariants pairs each offered variant with its progress. Variants
// whose questions file cannot be read are not offered, matching the menu
// the user sees.
func availableVariants(cfg config.Config) []progress.Summary {
	offered := make([]progress.Summary, 0, len(cfg.Variants))
	for _, summary := range progress.Collect(cfg, nil) {
		if summary.Available() {
			offered = append(offered, summary)
		}
	}
	return offered
}

// fancyMenu runs the full-screen variant picker.
func fancyMenu(ctx context.Context, cfg config.Config, stdin io.Reader, stdout io.Writer) (config.Variant, bool, error) {
	offered := availableVariants(cfg)
	if len(offered) == 0 {
		return config.Variant{}, false, errNoVariants
	}
	items := make([]picker.Item, 0, len(offered))
	for _, summary := range offered {
		items = append(items, picker.Item{
			ID:       summary.Variant.ID,
			Label:    summary.Variant.Label,
			Total:    summary.Total,
			Answered: summary.Distinct,
			Next:     summary.Resume + 1,
		})
	}
	item, chosen, err := picker.Run(ctx, stdin, stdout, items)
	if err != nil || !chosen {
		return config.Variant{}, false, err
	}
	variant, ok := cfg.VariantByID(item.ID)
	if !ok {
		return config.Variant{}, false, fmt.Errorf("selected unknown questionnaire %q", item.ID)
	}
	fmt.Fprintf(stdout, "\nYou selected: %s\n", variant.Label)
	return variant, true, nil
}

// plainMenu lists the variants as a numbered menu and reads the choice
// line by line.
func plainMenu(cfg config.Config, reader *bufio.Reader, stdout io.Writer) (config.Variant, bool, error) {
	offered := availableVariants(cfg)
	if len(offered) == 0 {
		return config.Variant{}, false, errNoVariants
	}

	for {
		fmt.Fprintln(stdout, "\nAvailable questionnaires:")
		fmt.Fprintln(stdout, strings.Repeat("-", 30))
		for i, summary := range offered {
			fmt.Fprintf(stdout, "%2d. %s%s\n", i+1, summary.Variant.Label, progressHint(summary))
		}
		fmt.Fprintln(stdout, strings.Repeat("-", 30))
		fmt.Fprint(stdout, "\nPlease enter the number of your choice: ")

		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return config.Variant{}, false, err
		}
		choice := strings.TrimSpace(line)
		switch {
		case strings.EqualFold(choice, "q"), strings.EqualFold(choice, "quit"):
			return config.Variant{}, false, nil
		case choice == "" && err == io.EOF:
			return config.Variant{}, false, nil
		}

		number, convErr := strconv.Atoi(choice)
		if convErr != nil {
			fmt.Fprintln(stdout, "\nPlease enter a valid number.")
		} else if number < 1 || number > len(offered) {
			fmt.Fprintln(stdout, "\nInvalid choice. Please select a valid number.")
		} else {
			variant := offered[number-1].Variant
			fmt.Fprintf(stdout, "\nYou selected: %s\n", variant.Label)
			return variant, true, nil
		}
		if err == io.EOF {
			return config.Variant{}, false, nil
		}
	}
}

// progressHint annotates a menu line with how far along the variant is.
func progressHint(s progress.Summary) string {
	switch {
	case s.Complete():
		return "  (complete)"
	case s.Records > 0:
		return fmt.Sprintf("  (answered %d of %d)", s.Distinct, s.Total)
	default:
		return ""
	}
}
