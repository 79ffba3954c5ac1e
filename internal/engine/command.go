package engine

import "sort"

// Result indicates the outcome of command execution.
type Result int

const (
	// Executed means the command ran and consumed the key.
	Executed Result = iota
	// PassThrough means the command declined the key so the host can handle it.
	PassThrough
	// Skipped means preconditions were not met (e.g. empty model); the key is still consumed.
	Skipped
)

func (r Result) String() string {
	switch r {
	case Executed:
		return "executed"
	case PassThrough:
		return "pass-through"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Command is one bindable operation of a widget.
type Command[P comparable] interface {
	// Execute applies the command through the engine and its adapter.
	Execute(e *Engine[P]) Result

	// Keys returns the trigger keys, e.g. []string{"j", "<down>"}.
	Keys() []string

	// Mode returns the mode the command is registered in by default.
	Mode() Mode

	// ID returns a hierarchical identifier such as "move.down" or "yank.current".
	ID() string

	// ChangesContent reports whether a successful run mutates the model.
	// Search results are dropped after such commands since positions may be stale.
	ChangesContent() bool
}

// MotionBase provides defaults for commands that only move the cursor or switch modes.
type MotionBase struct{}

func (MotionBase) Mode() Mode           { return ModeNormal }
func (MotionBase) ChangesContent() bool { return false }

// MutationBase provides defaults for commands that change the model.
type MutationBase struct{}

func (MutationBase) Mode() Mode           { return ModeNormal }
func (MutationBase) ChangesContent() bool { return true }

// Registry provides mode-aware, key-based command dispatch.
type Registry[P comparable] struct {
	// commands maps Mode -> trigger key -> command
	commands map[Mode]map[string]Command[P]
}

// NewRegistry creates an empty command registry.
func NewRegistry[P comparable]() *Registry[P] {
	return &Registry[P]{
		commands: make(map[Mode]map[string]Command[P]),
	}
}

// Register adds a command under its Mode() for each of its Keys().
// A later registration for the same mode and key replaces the earlier one.
func (r *Registry[P]) Register(cmd Command[P]) {
	r.RegisterIn(cmd.Mode(), cmd)
}

// RegisterIn adds a command under an explicit mode, registering all its Keys().
func (r *Registry[P]) RegisterIn(mode Mode, cmd Command[P]) {
	if r.commands[mode] == nil {
		r.commands[mode] = make(map[string]Command[P])
	}
	for _, key := range cmd.Keys() {
		r.commands[mode][key] = cmd
	}
}

// Unbind removes keys from a mode.
func (r *Registry[P]) Unbind(mode Mode, keys ...string) {
	for _, key := range keys {
		delete(r.commands[mode], key)
	}
}

// Get retrieves a command for a specific mode and key.
func (r *Registry[P]) Get(mode Mode, key string) (Command[P], bool) {
	if modeMap, ok := r.commands[mode]; ok {
		if cmd, ok := modeMap[key]; ok {
			return cmd, true
		}
	}
	return nil, false
}

// Keys returns the bound keys of a mode in sorted order.
func (r *Registry[P]) Keys(mode Mode) []string {
	keys := make([]string, 0, len(r.commands[mode]))
	for k := range r.commands[mode] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
