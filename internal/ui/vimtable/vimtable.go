// Package vimtable provides an editable grid of string cells with vim-style
// modal keyboard navigation, visual block selection and column operations.
package vimtable

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/event"
	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/pubsub"
	"github.com/zjrosen/vimkit/internal/register"
	"github.com/zjrosen/vimkit/internal/ui/shared/widget"
)

// Cell addresses one table cell.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string { return fmt.Sprintf("%d:%d", c.Row, c.Col) }

var (
	// ErrLastRow refuses deleting the only row.
	ErrLastRow = engine.Refuse("Cannot delete the last remaining row")
	// ErrLastColumn refuses deleting the only column.
	ErrLastColumn = engine.Refuse("Cannot delete the last remaining column")
	// ErrAllRows refuses a visual-line delete spanning every row.
	ErrAllRows = engine.Refuse("Cannot delete every row")
)

// Config configures a table.
type Config struct {
	widget.Options

	Columns      []string
	Rows         [][]string
	ZebraStripes bool

	OnEdit   func(Event)
	OnSelect func(Event)
	OnAdd    func(Event)
	OnDelete func(Event)
}

// Model is the table widget. Every row always holds exactly one cell per column.
type Model struct {
	columns []string
	rows    [][]string
	cursor  Cell
	zebra   bool

	host   *widget.Host[Cell]
	events *event.Hub[Event]
	scroll widget.Scroll
}

// New creates a table from cfg. Rows are padded or truncated to the column count.
func New(cfg Config) *Model {
	m := &Model{
		zebra:  cfg.ZebraStripes,
		events: event.NewHub[Event](),
	}
	m.load(cfg.Columns, cfg.Rows)
	m.host = widget.NewHost[Cell]("table", &adapter{m: m}, cfg.Options)
	installCommands(m)

	hook := func(kind event.Kind, fn func(Event)) {
		if fn == nil {
			return
		}
		m.events.Subscribe(func(e Event) {
			if e.Kind == kind {
				fn(e)
			}
		})
	}
	hook(event.CellEdited, cfg.OnEdit)
	hook(event.ItemSelected, cfg.OnSelect)
	hook(event.ItemAdded, cfg.OnAdd)
	hook(event.ItemDeleted, cfg.OnDelete)
	return m
}

func (m *Model) load(columns []string, rows [][]string) {
	m.columns = slices.Clone(columns)
	m.rows = make([][]string, len(rows))
	for i, r := range rows {
		m.rows[i] = register.Normalize(r, len(m.columns))
	}
}

// Subscribe registers a listener for every table event.
func (m *Model) Subscribe(fn func(Event)) (unsubscribe func()) {
	return m.events.Subscribe(fn)
}

// Bridge forwards events to a pubsub broker as well.
func (m *Model) Bridge(p pubsub.Publisher[Event]) {
	m.events.Bridge(p)
}

func (m *Model) emit(e Event) { m.events.Emit(e) }

func (m *Model) emitCell(row, col int, old, value string) {
	m.emit(Event{Kind: event.CellEdited, Row: row, Col: col, Old: old, Value: value})
}

func (m *Model) emitRow(kind event.Kind, row int, cells []string) {
	m.emit(Event{Kind: kind, Row: row, Cells: slices.Clone(cells)})
}

func (m *Model) focused(c Cell) {
	v, _ := m.Cell(c.Row, c.Col)
	m.emit(Event{Kind: event.ItemSelected, Row: c.Row, Col: c.Col, Value: v})
}

// Engine exposes the modal engine.
func (m *Model) Engine() *engine.Engine[Cell] { return m.host.Engine() }

// Mode returns the current interaction mode.
func (m *Model) Mode() engine.Mode { return m.host.Engine().Mode() }

func (m *Model) Focus() { m.host.Focus() }
func (m *Model) Blur()  { m.host.Blur() }

// SetSize sets the outer dimensions including the header and modeline.
func (m *Model) SetSize(width, height int) {
	m.host.SetSize(width, height)
	m.follow()
}

// SetData replaces the columns and rows.
func (m *Model) SetData(columns []string, rows [][]string) {
	m.load(columns, rows)
	m.changed()
	log.Debug(log.CatTable, "data set", "columns", len(m.columns), "rows", len(m.rows))
}

// AddRow appends a row, normalized to the column count.
func (m *Model) AddRow(cells ...string) {
	m.rows = append(m.rows, register.Normalize(cells, len(m.columns)))
	m.changed()
}

// UpdateRow replaces row i. Out-of-range rows are ignored.
func (m *Model) UpdateRow(i int, cells []string) {
	if i < 0 || i >= len(m.rows) {
		return
	}
	m.rows[i] = register.Normalize(cells, len(m.columns))
	m.changed()
}

// UpdateColumn sets column col from values, one per row. Missing values
// leave their cells untouched.
func (m *Model) UpdateColumn(col int, values []string) {
	if col < 0 || col >= len(m.columns) {
		return
	}
	for i := range m.rows {
		if i < len(values) {
			m.rows[i][col] = values[i]
		}
	}
	m.changed()
}

// UpdateCell sets one cell. Out-of-range cells are ignored.
func (m *Model) UpdateCell(row, col int, value string) {
	if !m.valid(Cell{row, col}) {
		return
	}
	m.rows[row][col] = value
	m.changed()
}

// Cell returns the value at row, col.
func (m *Model) Cell(row, col int) (string, bool) {
	if !m.valid(Cell{row, col}) {
		return "", false
	}
	return m.rows[row][col], true
}

// Clear removes every row and keeps the columns.
func (m *Model) Clear() {
	m.rows = nil
	m.cursor = Cell{}
	m.changed()
}

// Rows returns a deep copy of the rows.
func (m *Model) Rows() [][]string {
	out := make([][]string, len(m.rows))
	for i, r := range m.rows {
		out[i] = slices.Clone(r)
	}
	return out
}

// Columns returns a copy of the column headers.
func (m *Model) Columns() []string {
	return slices.Clone(m.columns)
}

// Current returns the focused cell.
func (m *Model) Current() (Cell, bool) {
	if len(m.rows) == 0 || len(m.columns) == 0 {
		return Cell{}, false
	}
	return m.cursor, true
}

func (m *Model) valid(c Cell) bool {
	return c.Row >= 0 && c.Row < len(m.rows) && c.Col >= 0 && c.Col < len(m.columns)
}

func (m *Model) changed() {
	m.rebuild()
	m.host.Engine().InvalidateSearch()
}

// rebuild restores the width invariant and re-clamps the cursor.
func (m *Model) rebuild() {
	for i, r := range m.rows {
		if len(r) != len(m.columns) {
			m.rows[i] = register.Normalize(r, len(m.columns))
		}
	}
	if !m.valid(m.cursor) {
		m.cursor = Cell{}
	}
	m.follow()
}

func (m *Model) follow() {
	m.scroll.Follow(m.cursor.Row, len(m.rows), m.rowsHeight())
}

// rowsHeight is the number of data rows that fit under the header.
func (m *Model) rowsHeight() int {
	h := m.host.BodyHeight()
	if h == 0 {
		return 0
	}
	return max(1, h-1)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg:
		start, end := m.scroll.Window(len(m.rows), m.rowsHeight())
		if row, ok := m.host.ClickedRow(msg, start, end); ok && m.host.Focused() && row != m.cursor.Row {
			m.cursor.Row = row
			m.focused(m.cursor)
		}
		return m, nil
	}
	_, cmd := m.host.Update(msg)
	m.follow()
	return m, cmd
}
