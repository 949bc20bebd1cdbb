package cli

import (
	"github.com/glint-tools/cli/internal/commands"
	"github.com/glint-tools/cli/internal/dispatchers"
)

// BuildRegistry constructs the static command registry. Registration order
// is the order help lists commands in.
func BuildRegistry() *dispatchers.Registry {
	reg := dispatchers.NewRegistry()

	reg.Register("categories", &commands.Categories{})
	reg.Register("explain", &commands.Explain{})
	reg.Register("gen.check", &commands.GenCheck{})
	reg.Register("gen.config", &commands.GenConfig{})
	reg.Register("list", &commands.List{})
	reg.Register("run", &commands.Run{})
	reg.Register("suggest", &commands.Suggest{})
	reg.Register("version", &commands.ShowVersion{})

	// help lists every command, itself included, so its name list is
	// filled in once the table is complete.
	help := &commands.Help{Switches: Switches}
	reg.Register("help", help)
	help.Names = reg.Names()

	return reg
}
