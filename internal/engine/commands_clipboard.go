package engine

// ============================================================================
// YankCurrentCommand - yy, and y on timeout
// ============================================================================

// YankCurrentCommand copies the focused value into the register.
type YankCurrentCommand[P comparable] struct{ MotionBase }

func (c *YankCurrentCommand[P]) Execute(e *Engine[P]) Result {
	p, ok := e.adapter.Cursor()
	if !ok {
		return Skipped
	}
	payload := e.adapter.Yank(p)
	if payload.IsEmpty() {
		return Skipped
	}
	e.SetRegister(payload)
	return Executed
}

func (c *YankCurrentCommand[P]) Keys() []string { return nil }
func (c *YankCurrentCommand[P]) ID() string     { return "yank.current" }

// ============================================================================
// visualYankCommand - y in visual modes
// ============================================================================

type visualYankCommand[P comparable] struct {
	MotionBase
	from Mode
}

func (c *visualYankCommand[P]) Execute(e *Engine[P]) Result {
	anchor, cursor, ok := e.Selection()
	e.ExitVisual()
	if !ok {
		return Skipped
	}
	payload := e.adapter.YankSpan(anchor, cursor, c.from)
	if payload.IsEmpty() {
		return Skipped
	}
	e.SetRegister(payload)
	return Executed
}

func (c *visualYankCommand[P]) Keys() []string { return []string{"y"} }
func (c *visualYankCommand[P]) Mode() Mode     { return c.from }
func (c *visualYankCommand[P]) ID() string     { return "yank.selection" }

// ============================================================================
// pasteCommand - p / P
// ============================================================================

type pasteCommand[P comparable] struct {
	MutationBase
	where Placement
}

// Execute pastes the register (or the parsed system clipboard). The register
// is not consumed, so repeated pastes produce repeated copies.
func (c *pasteCommand[P]) Execute(e *Engine[P]) Result {
	payload, ok := e.PastePayload()
	if !ok {
		return Skipped
	}
	if !e.adapter.Paste(c.where, payload) {
		return Skipped
	}
	return Executed
}

func (c *pasteCommand[P]) Keys() []string {
	if c.where == Above {
		return []string{"P"}
	}
	return []string{"p"}
}

func (c *pasteCommand[P]) ID() string { return "paste." + c.where.String() }
