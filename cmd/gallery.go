package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zjrosen/vimkit/internal/imagemeta"
	"github.com/zjrosen/vimkit/internal/paths"
	"github.com/zjrosen/vimkit/internal/ui/gallery"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery [folder]",
	Short: "Browse the images of a folder",
	Long: `Show the images of folder (default: the current directory) in a grid.
Space marks images, enter opens the metadata viewer and the grid follows
changes to the folder unless --no-watch is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newGallery(cmd, args)
		if err != nil {
			return err
		}
		return run(newShell("gallery", m, m, describeGallery))
	},
}

func init() {
	galleryCmd.Flags().Int("columns", 0, "fixed grid width (default: from config, 0 fits the terminal)")
	galleryCmd.Flags().Bool("no-watch", false, "do not rescan when the folder changes")
	rootCmd.AddCommand(galleryCmd)
}

func newGallery(cmd *cobra.Command, args []string) (*gallery.Model, error) {
	dir := "."
	if len(args) == 1 {
		dir = paths.ExpandHome(args[0])
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving folder: %w", err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("not a folder: %s", dir)
	}

	columns := cfg.Gallery.Columns
	if cmd.Flags().Changed("columns") {
		columns, _ = cmd.Flags().GetInt("columns")
	}
	noWatch, _ := cmd.Flags().GetBool("no-watch")

	return gallery.New(gallery.Config{
		Dir:        abs,
		Extensions: cfg.Gallery.Extensions,
		Columns:    columns,
		Watch:      cfg.Gallery.Watch && !noWatch,
		Debounce:   cfg.Gallery.Debounce,
		Resolver:   imagemeta.NewResolver(0),
	}), nil
}

func describeGallery(e gallery.Event) string {
	if e.Path == "" {
		return fmt.Sprintf("%s %d marked", e.Kind, len(e.Marked))
	}
	return fmt.Sprintf("%s %s", e.Kind, filepath.Base(e.Path))
}
