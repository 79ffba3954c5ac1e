package engine

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/register"
	"github.com/zjrosen/vimkit/internal/shared"
	"github.com/zjrosen/vimkit/internal/tracing"
)

// Config holds the collaborators of an Engine. Zero values fall back to a
// process-local clipboard, the real clock, a no-op tracer and the default
// chord timeouts.
type Config struct {
	// Name identifies the widget in logs and spans.
	Name      string
	Clipboard shared.Clipboard
	Clock     shared.Clock
	Tracer    trace.Tracer
	Timeouts  Timeouts
}

// Outcome reports what a key press or sweep did.
type Outcome struct {
	// Handled is false when the key should bubble up to the host.
	Handled bool
	Notices []Notice
}

// editState is the text-capture staging area of insert mode. The model is
// only touched by commit, when Enter confirms the buffer.
type editState struct {
	prompt   string
	original string
	buffer   string
	commit   func(value string)
}

type searchState[P comparable] struct {
	buffer  string
	query   string
	matches []P
	index   int
}

// Engine is the modal interaction state machine for one widget instance.
// It is not safe for concurrent use; drive it from the Bubble Tea update loop.
type Engine[P comparable] struct {
	name      string
	adapter   Adapter[P]
	registry  *Registry[P]
	chords    map[string]*Chord[P]
	clock     shared.Clock
	clipboard shared.Clipboard
	tracer    trace.Tracer

	mode     Mode
	anchor   P
	pending  *pendingChord[P]
	edit     *editState
	search   searchState[P]
	register *register.Payload
	notices  []Notice
}

// New creates an engine bound to adapter with the default key bindings and chords.
func New[P comparable](adapter Adapter[P], cfg Config) *Engine[P] {
	if cfg.Clipboard == nil {
		cfg.Clipboard = &shared.MemoryClipboard{}
	}
	if cfg.Clock == nil {
		cfg.Clock = shared.RealClock{}
	}
	if cfg.Tracer == nil {
		cfg.Tracer = noop.NewTracerProvider().Tracer("vimkit/engine")
	}
	if cfg.Name == "" {
		cfg.Name = "widget"
	}

	e := &Engine[P]{
		name:      cfg.Name,
		adapter:   adapter,
		registry:  NewRegistry[P](),
		chords:    make(map[string]*Chord[P]),
		clock:     cfg.Clock,
		clipboard: cfg.Clipboard,
		tracer:    cfg.Tracer,
	}
	installDefaults(e, cfg.Timeouts.withDefaults())
	return e
}

// Registry exposes the command registry so widgets can add or override bindings.
func (e *Engine[P]) Registry() *Registry[P] { return e.registry }

// Adapter returns the bound model adapter.
func (e *Engine[P]) Adapter() Adapter[P] { return e.adapter }

// Now returns the engine clock's current time.
func (e *Engine[P]) Now() time.Time { return e.clock.Now() }

// Mode returns the current mode.
func (e *Engine[P]) Mode() Mode { return e.mode }

// Selection returns the visual anchor and cursor while a visual mode is active.
func (e *Engine[P]) Selection() (anchor, cursor P, ok bool) {
	if !e.mode.IsVisual() {
		return anchor, cursor, false
	}
	cursor, ok = e.adapter.Cursor()
	return e.anchor, cursor, ok
}

// EditBuffer returns the prompt and staged text while in insert mode.
func (e *Engine[P]) EditBuffer() (prompt, buffer string, ok bool) {
	if e.mode != ModeInsert || e.edit == nil {
		return "", "", false
	}
	return e.edit.prompt, e.edit.buffer, true
}

// SearchBuffer returns the query being typed while in search mode.
func (e *Engine[P]) SearchBuffer() (string, bool) {
	if e.mode != ModeSearch {
		return "", false
	}
	return e.search.buffer, true
}

// Matches returns the last search query and its ordered matches.
func (e *Engine[P]) Matches() (string, []P) {
	return e.search.query, e.search.matches
}

// InvalidateSearch drops remembered matches. Call after external mutations.
func (e *Engine[P]) InvalidateSearch() {
	e.search.matches = nil
	e.search.index = 0
}

// Reset returns to normal mode and clears every transient state except the register.
func (e *Engine[P]) Reset() {
	e.pending = nil
	e.edit = nil
	e.search = searchState[P]{}
	e.setMode(ModeNormal)
}

// Notify queues a notice for the current outcome.
func (e *Engine[P]) Notify(level NoticeLevel, msg string) {
	e.notices = append(e.notices, Notice{Level: level, Message: msg})
}

// Report turns a command error into a warning notice. Refusals are expected
// outcomes; anything else is also logged as an error.
func (e *Engine[P]) Report(err error) {
	if err == nil {
		return
	}
	if IsRefusal(err) {
		log.Warn(log.CatEngine, "command refused", "widget", e.name, "reason", err.Error())
	} else {
		log.ErrorErr(log.CatEngine, "command failed", err, "widget", e.name)
	}
	e.Notify(NoticeWarn, err.Error())
}

// HandleKey interprets one key press.
func (e *Engine[P]) HandleKey(msg tea.KeyMsg) Outcome {
	e.sweep(e.clock.Now())

	key := KeyString(msg)
	var handled bool
	switch e.mode {
	case ModeInsert:
		handled = e.handleEditKey(msg, key)
	case ModeSearch:
		handled = e.handleSearchKey(msg, key)
	default:
		handled = e.dispatch(key)
	}
	return e.outcome(handled)
}

// Execute runs cmd as if its key had been pressed.
func (e *Engine[P]) Execute(cmd Command[P]) Outcome {
	res := e.execute(cmd)
	return e.outcome(res != PassThrough)
}

func (e *Engine[P]) outcome(handled bool) Outcome {
	out := Outcome{Handled: handled, Notices: e.notices}
	e.notices = nil
	return out
}

func (e *Engine[P]) dispatch(key string) bool {
	if key == "" {
		return false
	}
	if e.pending != nil {
		if e.resolveChord(key) {
			return true
		}
	}
	if e.mode == ModeNormal {
		if c, ok := e.chords[key]; ok {
			e.startChord(c)
			return true
		}
	}
	cmd, ok := e.registry.Get(e.mode, key)
	if !ok {
		return false
	}
	return e.execute(cmd) != PassThrough
}

func (e *Engine[P]) execute(cmd Command[P]) Result {
	before, hadBefore := e.adapter.Cursor()
	mode := e.mode

	_, span := e.tracer.Start(context.Background(), tracing.SpanPrefixEngine+cmd.ID(),
		trace.WithAttributes(
			attribute.String(tracing.AttrWidget, e.name),
			attribute.String(tracing.AttrMode, mode.String()),
		))
	noticed, reg := len(e.notices), e.register
	res := cmd.Execute(e)
	for _, n := range e.notices[noticed:] {
		span.AddEvent(tracing.EventNoticeRaised, trace.WithAttributes(
			attribute.String(tracing.AttrLevel, n.Level.String()),
			attribute.String(tracing.AttrMessage, n.Message),
		))
	}
	if e.register != reg && e.register != nil {
		span.AddEvent(tracing.EventRegisterSet, trace.WithAttributes(
			attribute.String(tracing.AttrKind, e.register.Kind.String()),
		))
	}
	span.SetAttributes(attribute.String(tracing.AttrResult, res.String()))
	span.End()

	log.Debug(log.CatEngine, "command", "widget", e.name, "id", cmd.ID(), "mode", mode, "result", res)

	if res == Executed && cmd.ChangesContent() {
		e.InvalidateSearch()
	}

	if after, ok := e.adapter.Cursor(); ok && (!hadBefore || after != before) {
		e.adapter.Focused(after)
	}
	return res
}

func (e *Engine[P]) setMode(m Mode) {
	if e.mode == m {
		return
	}
	log.Debug(log.CatEngine, "mode change", "widget", e.name, "from", e.mode, "to", m)
	if !m.IsVisual() {
		var zero P
		e.anchor = zero
	}
	e.mode = m
}

// EnterVisual starts a selection anchored at the cursor.
func (e *Engine[P]) EnterVisual(m Mode) bool {
	p, ok := e.adapter.Cursor()
	if !ok || !m.IsVisual() {
		return false
	}
	if !e.mode.IsVisual() {
		e.anchor = p
	}
	e.setMode(m)
	return true
}

// ExitVisual returns to normal mode and forgets the anchor.
func (e *Engine[P]) ExitVisual() {
	e.setMode(ModeNormal)
}

// BeginEdit switches to insert mode with a buffer seeded by initial.
// commit receives the buffer when Enter confirms it; Escape discards it.
func (e *Engine[P]) BeginEdit(prompt, initial string, commit func(value string)) {
	e.pending = nil
	e.edit = &editState{prompt: prompt, original: initial, buffer: initial, commit: commit}
	e.setMode(ModeInsert)
}

func (e *Engine[P]) handleEditKey(msg tea.KeyMsg, key string) bool {
	switch key {
	case KeyCtrlC:
		return false
	case KeyEscape:
		log.Debug(log.CatEngine, "edit cancelled", "widget", e.name)
		e.edit = nil
		e.setMode(ModeNormal)
	case KeyEnter:
		ed := e.edit
		e.edit = nil
		e.setMode(ModeNormal)
		if ed != nil {
			e.execute(&commitEditCommand[P]{state: ed})
		}
	case KeyBackspace:
		if e.edit != nil {
			e.edit.buffer = DropLastGrapheme(e.edit.buffer)
		}
	default:
		if text, ok := TypedText(msg); ok && e.edit != nil {
			e.edit.buffer += text
		}
	}
	return true
}

func (e *Engine[P]) handleSearchKey(msg tea.KeyMsg, key string) bool {
	switch key {
	case KeyCtrlC:
		return false
	case KeyEscape:
		e.search.buffer = ""
		e.setMode(ModeNormal)
	case KeyEnter:
		query := e.search.buffer
		e.search.buffer = ""
		e.setMode(ModeNormal)
		e.execute(&runSearchCommand[P]{query: query})
	case KeyBackspace:
		if e.search.buffer == "" {
			e.setMode(ModeNormal)
			return true
		}
		e.search.buffer = DropLastGrapheme(e.search.buffer)
	default:
		if text, ok := TypedText(msg); ok {
			e.search.buffer += text
		}
	}
	return true
}

// Register returns the current register content.
func (e *Engine[P]) Register() (register.Payload, bool) {
	if e.register == nil {
		return register.Payload{}, false
	}
	return *e.register, true
}

// SetRegister stores p in the register and pushes its text to the system
// clipboard. Clipboard failures are logged; the register is still set.
func (e *Engine[P]) SetRegister(p register.Payload) {
	if p.IsEmpty() {
		return
	}
	e.register = &p
	log.Debug(log.CatClipboard, "register set", "widget", e.name, "kind", p.Kind)
	if err := e.clipboard.Copy(p.Text()); err != nil {
		log.ErrorErr(log.CatClipboard, "system clipboard copy failed", err, "widget", e.name)
	}
}

// PastePayload returns the register, falling back to parsing the system
// clipboard when the register is empty. The parsed clipboard content is
// loaded into the register. Reports an info notice when neither has content.
func (e *Engine[P]) PastePayload() (register.Payload, bool) {
	if e.register != nil {
		return *e.register, true
	}
	text, err := e.clipboard.Paste()
	if err != nil {
		log.ErrorErr(log.CatClipboard, "system clipboard read failed", err, "widget", e.name)
	}
	p := register.Parse(text)
	if p.IsEmpty() {
		e.Notify(NoticeInfo, "Nothing to paste")
		return register.Payload{}, false
	}
	log.Debug(log.CatClipboard, "register loaded from clipboard", "widget", e.name, "kind", p.Kind)
	e.register = &p
	return p, true
}
