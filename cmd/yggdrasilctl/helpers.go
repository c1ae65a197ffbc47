package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/13werwolf13/Yggdrasil-ng/internal/client"
	"github.com/13werwolf13/Yggdrasil-ng/internal/config"
)

// loadSettings merges flags, environment, and the optional config file into
// effective settings. The debug log falls back to ~/.yggdrasilctl/logs.
func loadSettings(cli *CLI) (*config.Settings, error) {
	paths, err := config.GetPaths()
	if err != nil {
		return nil, fmt.Errorf("get paths: %w", err)
	}

	cfg, err := config.Load(paths.Config)
	if err != nil {
		return nil, err
	}

	settings, err := config.Resolve(cfg, paths.Home, cli.Endpoint, cli.Timeout, cli.Debug)
	if err != nil {
		return nil, err
	}

	if settings.LogFile == "" {
		settings.LogFile = paths.DebugLog
	}
	return settings, nil
}

func newAdminClient(settings *config.Settings) *client.Client {
	return client.NewWithTimeout(settings.Endpoint, settings.Timeout)
}

// buildArguments turns key=value tokens into request arguments. Tokens
// without '=' are dropped; the first '=' splits key from value.
func buildArguments(tokens []string) map[string]string {
	args := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		if k, v, ok := strings.Cut(tok, "="); ok {
			args[k] = v
		}
	}
	return args
}

// mapClientError converts transport errors to exit-coded errors.
func mapClientError(err error) error {
	var connErr *client.ConnectError
	if errors.As(err, &connErr) {
		return errConnectFailed(err)
	}

	var timeoutErr *client.TimeoutError
	if errors.As(err, &timeoutErr) {
		return errTimeout(err)
	}

	if errors.Is(err, client.ErrEmptyResponse) {
		return errEmptyResponse(err)
	}

	return err
}
