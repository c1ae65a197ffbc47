package main

import (
	"fmt"

	"github.com/13werwolf13/Yggdrasil-ng/internal/admin"
	"github.com/13werwolf13/Yggdrasil-ng/internal/config"
	"github.com/13werwolf13/Yggdrasil-ng/internal/logging"
	"github.com/13werwolf13/Yggdrasil-ng/internal/ui"
)

type SendCmd struct {
	Command string   `arg:"" predictor:"command" help:"Admin API command (see list)"`
	Args    []string `arg:"" optional:"" name:"key=value" help:"Request arguments as key=value pairs"`
}

func (c *SendCmd) Run(cli *CLI) error {
	settings, err := loadSettings(cli)
	if err != nil {
		return err
	}

	cl := newAdminClient(settings)

	// A log directory that cannot be created disables tracing, not the command.
	if settings.Debug {
		paths, err := config.GetPaths()
		if err == nil {
			err = paths.EnsureDirectories()
		}
		if err != nil {
			ui.PrintWarning(fmt.Sprintf("Debug trace disabled: %v", err))
		} else {
			w := logging.NewRotatingWriter(logging.DefaultConfig(settings.LogFile))
			defer w.Close()
			cl.SetLogger(logging.NewTraceLogger(w))
		}
	}

	resp, err := cl.Call(admin.NewRequest(c.Command, buildArguments(c.Args)))
	if err != nil {
		return mapClientError(err)
	}

	// Raw mode prints the response verbatim, error status included.
	if cli.JSON {
		return ui.RenderRawJSON(resp.Raw)
	}

	if err := resp.Err(); err != nil {
		return errProtocol(err.Error())
	}

	return ui.RenderResponse(c.Command, resp.Payload)
}
