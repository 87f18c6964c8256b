package main

import (
	"os"

	"mtoohey.com/texui/internal/cmd"
	"mtoohey.com/texui/internal/keys"
	"mtoohey.com/texui/internal/sketch"
	"mtoohey.com/texui/internal/snake"

	"github.com/alecthomas/kong"
)

type cli struct {
	cmd.Globals

	Sketch sketch.Cmd `cmd:"" help:"Draw a shape onto a buffer and print it."`
	Snake  snake.Cmd  `cmd:"" help:"Play snake."`
	Keys   keys.Cmd   `cmd:"" help:"Print the names of keys as they are pressed."`
}

func main() {
	var c cli
	parser := kong.Must(&c, append([]kong.Option{
		kong.Name("texui"),
		kong.Description("Draw on a grid of characters in the terminal."),
		kong.UsageOnError(),
	}, cmd.TypeMappers...)...)

	cfgArgs, err := cmd.LoadGlobalsConfig()
	parser.FatalIfErrorf(err)

	ctx, err := parser.Parse(append(cfgArgs, os.Args[1:]...))
	parser.FatalIfErrorf(err)

	parser.FatalIfErrorf(ctx.Run(c.Globals))
}
