package main

import (
	"strings"

	"github.com/posener/complete"

	"github.com/13werwolf13/Yggdrasil-ng/internal/admin"
)

// commandPredictor completes admin API command names.
type commandPredictor struct{}

// newCommandPredictor returns a predictor for the <command> argument.
func newCommandPredictor() complete.Predictor {
	return &commandPredictor{}
}

// Predict implements complete.Predictor interface.
func (p *commandPredictor) Predict(args complete.Args) []string {
	var results []string
	for _, cmd := range admin.KnownCommands() {
		if strings.HasPrefix(cmd, args.Last) {
			results = append(results, cmd)
		}
	}
	return results
}
