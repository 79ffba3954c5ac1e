package engine

// ============================================================================
// MoveCommand - one step in a direction
// ============================================================================

// MoveCommand moves the cursor one step, clamped at the edges.
type MoveCommand[P comparable] struct {
	MotionBase
	Dir      Direction
	Bindings []string
}

func (c *MoveCommand[P]) Execute(e *Engine[P]) Result {
	if e.adapter.Len() == 0 {
		return Skipped
	}
	if !e.adapter.Move(c.Dir) {
		return Skipped
	}
	return Executed
}

func (c *MoveCommand[P]) Keys() []string { return c.Bindings }
func (c *MoveCommand[P]) ID() string     { return "move." + c.Dir.String() }

// ============================================================================
// goFirstCommand / goLastCommand - gg and G
// ============================================================================

type goFirstCommand[P comparable] struct{ MotionBase }

func (c *goFirstCommand[P]) Execute(e *Engine[P]) Result {
	p, ok := e.adapter.First()
	if !ok {
		return Skipped
	}
	e.adapter.SetCursor(p)
	return Executed
}

func (c *goFirstCommand[P]) Keys() []string { return []string{KeyHome} }
func (c *goFirstCommand[P]) ID() string     { return "move.first" }

type goLastCommand[P comparable] struct{ MotionBase }

func (c *goLastCommand[P]) Execute(e *Engine[P]) Result {
	p, ok := e.adapter.Last()
	if !ok {
		return Skipped
	}
	e.adapter.SetCursor(p)
	return Executed
}

func (c *goLastCommand[P]) Keys() []string { return []string{"G", KeyEnd} }
func (c *goLastCommand[P]) ID() string     { return "move.last" }

// ============================================================================
// refreshCommand - r
// ============================================================================

type refreshCommand[P comparable] struct{ MotionBase }

func (c *refreshCommand[P]) Execute(e *Engine[P]) Result {
	e.adapter.Rebuild()
	return Executed
}

func (c *refreshCommand[P]) Keys() []string { return []string{"r"} }
func (c *refreshCommand[P]) ID() string     { return "view.refresh" }
