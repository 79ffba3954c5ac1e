package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zjrosen/vimkit/internal/keys"
	"github.com/zjrosen/vimkit/internal/paths"
	"github.com/zjrosen/vimkit/internal/ui/vimlist"
	"github.com/zjrosen/vimkit/internal/ui/vimmedia"
	"github.com/zjrosen/vimkit/internal/ui/vimtable"
	"github.com/zjrosen/vimkit/internal/ui/vimtree"
)

var listCmd = &cobra.Command{
	Use:   "list [file|-]",
	Short: "Edit lines in a vim-style list",
	Long:  `Open one list item per non-blank line of file, or of stdin when file is "-".`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newList(cmd, args)
		if err != nil {
			return err
		}
		return run(newShell("list", m, m, describeList).withKeys(keys.List()))
	},
}

var tableCmd = &cobra.Command{
	Use:   "table [file|-]",
	Short: "Edit a TSV or CSV file in a vim-style table",
	Long:  `Open a table whose first row is the header. Files ending in .csv are comma separated; everything else is read as TSV unless --format says otherwise.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newTable(cmd, args)
		if err != nil {
			return err
		}
		return run(newShell("table", m, m, describeTable).withKeys(keys.Table()))
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree [file|-]",
	Short: "Browse a YAML document in a vim-style tree",
	Long:  `Open a YAML document as a tree. Mapping keys become nodes and nested mappings and sequences become children.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newTree(cmd, args)
		if err != nil {
			return err
		}
		return run(newShell("tree", m, m, describeTree).withKeys(keys.Tree()))
	},
}

var mediaCmd = &cobra.Command{
	Use:   "media [file|folder]",
	Short: "Edit captions of text and image items",
	Long: `Open a multimedia list. A YAML file lists entries with text and image keys;
a folder adds one item per image it contains.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMedia(cmd, args)
		if err != nil {
			return err
		}
		return run(newShell("media", m, m, describeMedia).withKeys(keys.List()))
	},
}

func init() {
	tableCmd.Flags().String("format", "", "input format: csv or tsv (default: from the file extension)")
	rootCmd.AddCommand(listCmd, tableCmd, treeCmd, mediaCmd)
}

func newList(cmd *cobra.Command, args []string) (*vimlist.Model, error) {
	items := []string{"Buy milk", "Write report", "Call Alice", "Water plants"}
	if len(args) == 1 {
		data, err := readInput(args[0], cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("loading items: %w", err)
		}
		items = parseLines(data)
	}
	return vimlist.New(vimlist.Config{
		Options:      widgetOptions(),
		Items:        items,
		ZebraStripes: cfg.ZebraStripes,
	}), nil
}

func newTable(cmd *cobra.Command, args []string) (*vimtable.Model, error) {
	columns := []string{"Name", "Role", "City"}
	rows := [][]string{
		{"Ada", "Engineer", "London"},
		{"Grace", "Admiral", "Arlington"},
		{"Linus", "Maintainer", "Portland"},
	}
	if len(args) == 1 {
		format, _ := cmd.Flags().GetString("format")
		comma, err := delimiterFor(args[0], format)
		if err != nil {
			return nil, err
		}
		data, err := readInput(args[0], cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("loading table: %w", err)
		}
		if columns, rows, err = parseTable(data, comma); err != nil {
			return nil, fmt.Errorf("loading table: %w", err)
		}
	}
	return vimtable.New(vimtable.Config{
		Options:      widgetOptions(),
		Columns:      columns,
		Rows:         rows,
		ZebraStripes: cfg.ZebraStripes,
	}), nil
}

func newTree(cmd *cobra.Command, args []string) (*vimtree.Model, error) {
	roots := []*vimtree.Node{
		vimtree.NewNode("src",
			vimtree.NewNode("main.go"),
			vimtree.NewNode("widgets", vimtree.NewNode("list.go"), vimtree.NewNode("tree.go")),
		),
		vimtree.NewNode("README.md"),
	}
	if len(args) == 1 {
		data, err := readInput(args[0], cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("loading tree: %w", err)
		}
		if roots, err = vimtree.FromYAML(data); err != nil {
			return nil, fmt.Errorf("loading tree: %w", err)
		}
	}
	return vimtree.New(vimtree.Config{
		Options:      widgetOptions(),
		Roots:        roots,
		ZebraStripes: cfg.ZebraStripes,
	}), nil
}

func newMedia(_ *cobra.Command, args []string) (*vimmedia.Model, error) {
	items := []vimmedia.Item{{Text: "Notes from the trip"}, {Text: "Packing list"}}
	if len(args) == 1 {
		path := paths.ExpandHome(args[0])
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("loading media: %w", err)
		}
		if info.IsDir() {
			items, err = mediaFromFolder(path, cfg.Gallery.Extensions)
		} else {
			var data []byte
			if data, err = os.ReadFile(path); err == nil {
				items, err = parseMedia(data, filepath.Dir(path))
			}
		}
		if err != nil {
			return nil, fmt.Errorf("loading media: %w", err)
		}
	}
	return vimmedia.New(vimmedia.Config{
		Options:      widgetOptions(),
		Items:        items,
		ZebraStripes: cfg.ZebraStripes,
	}), nil
}

func describeList(e vimlist.Event) string {
	return fmt.Sprintf("%s #%d %q", e.Kind, e.Index+1, e.Value)
}

func describeTable(e vimtable.Event) string {
	if e.Col >= 0 && e.Value != "" {
		return fmt.Sprintf("%s row %d col %d %q", e.Kind, e.Row+1, e.Col+1, e.Value)
	}
	return fmt.Sprintf("%s row %d", e.Kind, e.Row+1)
}

func describeTree(e vimtree.Event) string {
	if e.Node == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s %q", e.Kind, e.Node.Text)
}

func describeMedia(e vimmedia.Event) string {
	if e.Item.HasImage() {
		return fmt.Sprintf("%s #%d %q [%s]", e.Kind, e.Index+1, e.Item.Text, filepath.Base(e.Item.Image))
	}
	return fmt.Sprintf("%s #%d %q", e.Kind, e.Index+1, e.Item.Text)
}
