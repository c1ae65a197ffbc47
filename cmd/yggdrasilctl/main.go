package main

import (
	"errors"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"github.com/13werwolf13/Yggdrasil-ng/internal/ui"
)

var version = "dev"

type CLI struct {
	Endpoint string           `short:"e" placeholder:"URI" help:"Admin socket address (default: tcp://localhost:9001)"`
	JSON     bool             `short:"j" help:"Output as raw JSON"`
	Timeout  time.Duration    `short:"t" help:"Give up if the router does not answer within this duration"`
	Debug    bool             `help:"Write a wire trace to the debug log"`
	Version  kong.VersionFlag `short:"v" help:"Print version"`

	Send               SendCmd                      `cmd:"" default:"withargs" help:"Send a command to the admin API"`
	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

func main() {
	cli := CLI{}
	parser := kong.Must(&cli,
		kong.Name("yggdrasilctl"),
		kong.Description("Query and control a running mesh router over its admin socket.\n\n"+
			"Commands: list, getSelf, getPeers, getTree, addPeer, removePeer"),
		kong.UsageOnError(),
		kong.Vars{"version": "yggdrasilctl " + version},
	)

	kongplete.Complete(parser,
		kongplete.WithPredictor("command", newCommandPredictor()),
	)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(&cli); err != nil {
		ui.PrintError(err)
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(exitError)
	}
}
