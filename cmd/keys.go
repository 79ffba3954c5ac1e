package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/zjrosen/vimkit/internal/keys"
	"github.com/zjrosen/vimkit/internal/ui/shared/markdown"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the keyboard reference",
	Long:  `Render the key bindings of every widget as formatted markdown.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		style, _ := cmd.Flags().GetString("style")
		width, _ := cmd.Flags().GetInt("width")
		if style == "" {
			switch f, ok := cmd.OutOrStdout().(*os.File); {
			case !ok || !term.IsTerminal(f.Fd()):
				style = markdown.StylePlain
			case termenv.HasDarkBackground():
				style = markdown.StyleDark
			default:
				style = markdown.StyleLight
			}
		}
		r, err := markdown.New(width, style)
		if err != nil {
			return err
		}
		out, err := r.Render(keys.Reference())
		if err != nil {
			return fmt.Errorf("rendering key reference: %w", err)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	keysCmd.Flags().String("style", "", "dark, light or notty (default: follows the terminal background, notty when piped)")
	keysCmd.Flags().Int("width", 80, "wrap width")
	rootCmd.AddCommand(keysCmd)
}
