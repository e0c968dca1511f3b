package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/trendwatch/internal/trend"
)

var (
	flagStars          int
	flagAnnotateLocale string
	flagAnnotateLit    bool
)

var annotateCmd = &cobra.Command{
	Use:   "annotate <description>",
	Short: "Print the commentary for a repository description",
	Example: `  trendwatch annotate "An experimental LLM agent framework" --stars 2500
  trendwatch annotate "A build tool" --locale zh`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		locale, err := trend.LookupLocale(flagAnnotateLocale)
		if err != nil {
			return err
		}
		if flagStars < 0 {
			return fmt.Errorf("--stars must not be negative")
		}
		a := trend.NewAnnotator(locale, trend.Options{LiteralUI: flagAnnotateLit})
		fmt.Fprintln(cmd.OutOrStdout(), a.Text(args[0], flagStars))
		return nil
	},
}

func init() {
	annotateCmd.Flags().IntVar(&flagStars, "stars", 0, "Star count of the repository")
	annotateCmd.Flags().StringVar(&flagAnnotateLocale, "locale", "", "Annotation language ("+strings.Join(trend.LocaleNames(), ", ")+")")
	annotateCmd.Flags().BoolVar(&flagAnnotateLit, "literal-match", false, "Match \"ui\" anywhere in the description")
}
