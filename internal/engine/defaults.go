package engine

// installDefaults registers the bindings every widget starts with.
// Widgets override or unbind individual keys through Registry and Chord.
func installDefaults[P comparable](e *Engine[P], t Timeouts) {
	r := e.registry

	moves := []*MoveCommand[P]{
		{Dir: DirDown, Bindings: []string{"j", KeyDown}},
		{Dir: DirUp, Bindings: []string{"k", KeyUp}},
		{Dir: DirLeft, Bindings: []string{"h", KeyLeft}},
		{Dir: DirRight, Bindings: []string{"l", KeyRight}},
	}
	first := &goFirstCommand[P]{}
	last := &goLastCommand[P]{}
	for _, mode := range []Mode{ModeNormal, ModeVisual, ModeVisualLine} {
		for _, m := range moves {
			r.RegisterIn(mode, m)
		}
		r.RegisterIn(mode, first)
		r.RegisterIn(mode, last)
	}

	r.Register(&editCurrentCommand[P]{})
	r.Register(&InsertPromptCommand[P]{Where: Below, Prompt: "New item: ", Bindings: []string{"o"}})
	r.Register(&InsertPromptCommand[P]{Where: Above, Prompt: "New item: ", Bindings: []string{"O"}})
	r.Register(&deleteCurrentCommand[P]{})
	r.Register(&pasteCommand[P]{where: Below})
	r.Register(&pasteCommand[P]{where: Above})
	r.Register(&enterSearchCommand[P]{})
	r.Register(&cycleMatchCommand[P]{step: 1})
	r.Register(&cycleMatchCommand[P]{step: -1})
	r.Register(&refreshCommand[P]{})

	r.Register(&enterVisualCommand[P]{target: ModeVisual, key: "v", from: ModeNormal})
	r.Register(&enterVisualCommand[P]{target: ModeVisualLine, key: "V", from: ModeNormal})
	for _, mode := range []Mode{ModeVisual, ModeVisualLine} {
		r.Register(&enterVisualCommand[P]{target: ModeVisual, key: "v", from: mode})
		r.Register(&enterVisualCommand[P]{target: ModeVisualLine, key: "V", from: mode})
		r.Register(&exitVisualCommand[P]{from: mode})
		r.Register(&visualYankCommand[P]{from: mode})
		r.Register(&visualDeleteCommand[P]{from: mode})
	}

	del := &deleteCurrentCommand[P]{}
	yank := &YankCurrentCommand[P]{}
	e.RegisterChord(&Chord[P]{
		Leader:    "d",
		Timeout:   t.Delete,
		Followers: map[string]Command[P]{"d": del},
		Mismatch:  MismatchConsume,
	})
	e.RegisterChord(&Chord[P]{
		Leader:    "y",
		Timeout:   t.Copy,
		Followers: map[string]Command[P]{"y": yank},
		Expire:    yank,
		Mismatch:  MismatchConsume,
	})
	e.RegisterChord(&Chord[P]{
		Leader:    "g",
		Timeout:   t.Go,
		Followers: map[string]Command[P]{"g": first},
		Mismatch:  MismatchReprocess,
	})
}

// NewInsertPrompt builds an o/O style command with a custom prompt label.
func NewInsertPrompt[P comparable](where Placement, prompt string, keys ...string) *InsertPromptCommand[P] {
	return &InsertPromptCommand[P]{Where: where, Prompt: prompt, Bindings: keys}
}

// NewMove builds a single-step motion bound to keys.
func NewMove[P comparable](dir Direction, keys ...string) *MoveCommand[P] {
	return &MoveCommand[P]{Dir: dir, Bindings: keys}
}
