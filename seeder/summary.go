package seeder

import (
	"fmt"
	"time"

	"github.com/yeremiapane/spot-seeder/config"
	"github.com/yeremiapane/spot-seeder/sqlout"
)

// WriteHeader emits the artifact's leading comment block echoing the run
// configuration.
func WriteHeader(sink sqlout.Sink, cfg *config.Config) error {
	lines := []string{
		"Generated Dummy Data for Food Delivery Platform",
		"Generated at: " + time.Now().Format("2006-01-02 15:04:05"),
		"Configuration:",
		fmt.Sprintf("  Users: %d (owner ratio %.2f)", cfg.NumUsers, cfg.OwnerRatio),
		fmt.Sprintf("  Stores: %d", cfg.NumStores),
		fmt.Sprintf("  Categories: %d", cfg.NumCategories),
		fmt.Sprintf("  Menus per store: %d-%d", cfg.MenusPerStore.Min, cfg.MenusPerStore.Max),
		fmt.Sprintf("  Options per menu: %d-%d", cfg.OptionsPerMenu.Min, cfg.OptionsPerMenu.Max),
		fmt.Sprintf("  Origins per menu: %d-%d", cfg.OriginsPerMenu.Min, cfg.OriginsPerMenu.Max),
		fmt.Sprintf("  Orders: %d", cfg.NumOrders),
		fmt.Sprintf("  Reviews per store: %d-%d", cfg.ReviewsPerStore.Min, cfg.ReviewsPerStore.Max),
		"",
	}
	return writeComments(sink, lines)
}

// WriteFooter emits the trailing comment block with the generated record
// counts.
func WriteFooter(sink sqlout.Sink, ctx *Context) error {
	lines := []string{
		"Data generation completed!",
		"Generated records:",
		fmt.Sprintf("  Users: %d (OWNER: %d)", len(ctx.Users), len(ctx.Owners)),
		fmt.Sprintf("  Categories: %d", len(ctx.Categories)),
		fmt.Sprintf("  Stores: %d", len(ctx.Stores)),
		fmt.Sprintf("  Menus: %d", ctx.MenuCount()),
		fmt.Sprintf("  Menu Options: %d", ctx.OptionCount()),
		fmt.Sprintf("  Orders: %d", len(ctx.Orders)),
		fmt.Sprintf("  Reviews: %d", ctx.ReviewCount),
	}
	return writeComments(sink, lines)
}

func writeComments(sink sqlout.Sink, lines []string) error {
	for _, line := range lines {
		if err := sink.Comment(line); err != nil {
			return err
		}
	}
	return nil
}
