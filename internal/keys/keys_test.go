package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestCommon_NavigationKeys(t *testing.T) {
	k := Common()

	require.Equal(t, []string{"j", "down"}, k.Down.Keys())
	require.Equal(t, []string{"k", "up"}, k.Up.Keys())
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")}, k.Last))
}

func TestList_HidesHorizontalMotion(t *testing.T) {
	k := List()

	require.False(t, k.Left.Enabled())
	require.False(t, k.Right.Enabled())
	require.False(t, k.VisualLine.Enabled())
}

func TestTable_ExtraBindings(t *testing.T) {
	k := Table()

	require.True(t, k.Left.Enabled())
	require.True(t, k.VisualLine.Enabled())
	var descs []string
	for _, b := range k.Extra {
		descs = append(descs, b.Help().Desc)
	}
	require.Equal(t, []string{"edit header", "add column right", "add column at end", "delete column"}, descs)
}

func TestTree_HelpText(t *testing.T) {
	k := Tree()

	require.Equal(t, "collapse or parent", k.Left.Help().Desc)
	require.Equal(t, "add child", k.InsertBelow.Help().Desc)
	require.Len(t, k.FullHelp(), 5)
}

func TestFullHelp_GroupsWithoutExtras(t *testing.T) {
	require.Len(t, List().FullHelp(), 4)
	require.Len(t, Gallery().FullHelp(), 3)
}

func TestMarkdown_SkipsDisabled(t *testing.T) {
	md := Markdown("List", List())

	require.Contains(t, md, "## List")
	require.Contains(t, md, "| `dd/x` | delete |")
	require.NotContains(t, md, "move left")
}

func TestReference_CoversEveryWidget(t *testing.T) {
	ref := Reference()

	for _, title := range []string{"List and multimedia list", "Table", "Tree", "Gallery"} {
		require.Contains(t, ref, "## "+title)
	}
	require.Contains(t, ref, "| `I` | edit header |")
	require.Contains(t, ref, "| `space` | toggle mark |")
}
