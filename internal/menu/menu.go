// Package menu defines the reload command set exposed on the action's
// context menu and keyboard bindings.
package menu

// Context-menu and command identifiers. The host-facing behavior behind each
// id lives in the action controller.
const (
	NormalReload            = "normal_reload"
	HardReload              = "hard_reload"
	EmptyCacheAndHardReload = "empty_cache_and_hard_reload"
)

// Command describes one entry of the action's context menu.
type Command struct {
	ID    string
	Label string
}

var commands = []Command{
	{ID: NormalReload, Label: "Normal Reload"},
	{ID: HardReload, Label: "Hard Reload"},
	{ID: EmptyCacheAndHardReload, Label: "Empty Cache and Hard Reload"},
}

// Commands returns the context-menu entries in display order.
func Commands() []Command {
	out := make([]Command, len(commands))
	copy(out, commands)
	return out
}

// Lookup resolves a command id.
func Lookup(id string) (Command, bool) {
	for _, cmd := range commands {
		if cmd.ID == id {
			return cmd, true
		}
	}
	return Command{}, false
}
