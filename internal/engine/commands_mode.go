package engine

// ============================================================================
// Visual mode entry and exit
// ============================================================================

type enterVisualCommand[P comparable] struct {
	MotionBase
	target Mode
	key    string
	from   Mode
}

// Execute enters target mode, or leaves it when pressed inside it (v in
// visual, V in visual line). From the other visual mode it switches kind
// and keeps the anchor.
func (c *enterVisualCommand[P]) Execute(e *Engine[P]) Result {
	if e.mode == c.target {
		e.ExitVisual()
		return Executed
	}
	if !e.EnterVisual(c.target) {
		return Skipped
	}
	return Executed
}

func (c *enterVisualCommand[P]) Keys() []string { return []string{c.key} }
func (c *enterVisualCommand[P]) Mode() Mode     { return c.from }
func (c *enterVisualCommand[P]) ID() string {
	if c.target == ModeVisualLine {
		return "mode.visual_line"
	}
	return "mode.visual"
}

type exitVisualCommand[P comparable] struct {
	MotionBase
	from Mode
}

func (c *exitVisualCommand[P]) Execute(e *Engine[P]) Result {
	e.ExitVisual()
	return Executed
}

func (c *exitVisualCommand[P]) Keys() []string { return []string{KeyEscape} }
func (c *exitVisualCommand[P]) Mode() Mode     { return c.from }
func (c *exitVisualCommand[P]) ID() string     { return "mode.normal" }

// ============================================================================
// Search mode entry
// ============================================================================

type enterSearchCommand[P comparable] struct{ MotionBase }

func (c *enterSearchCommand[P]) Execute(e *Engine[P]) Result {
	e.search.buffer = ""
	e.setMode(ModeSearch)
	return Executed
}

func (c *enterSearchCommand[P]) Keys() []string { return []string{"/"} }
func (c *enterSearchCommand[P]) ID() string     { return "mode.search" }
