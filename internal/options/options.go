// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"register description file (.asl)"`
	Config string `flag:"c" usage:"YAML config file"`
	Batch  string `flag:"batch" usage:"load all register files matching pattern (e.g. regs/*.asl)"`
}

// Flags contains behavior options.
type Flags struct {
	Debug    bool `flag:"debug" usage:"enable debug logging"`
	Quiet    bool `flag:"q" usage:"quiet mode"`
	Dump     bool `flag:"dump" usage:"print the normalized register catalog and exit"`
	List     bool `flag:"list" usage:"print all register names and exit"`
	Suggest  bool `flag:"suggest" usage:"suggest similar register names if nothing matches"`
	NoPrompt bool `flag:"noprompt" usage:"never print the input prompt"`
	Prompt   bool `flag:"prompt" usage:"print the input prompt even if input is not a terminal"`
}

// Program options of the register viewer.
type Program struct {
	Parameters
	Flags
}

// ShowPrompt returns whether the session should print prompts, given
// whether the input is an interactive terminal.
func (p Program) ShowPrompt(interactive bool) bool {
	switch {
	case p.NoPrompt:
		return false
	case p.Prompt:
		return true
	default:
		return interactive
	}
}
