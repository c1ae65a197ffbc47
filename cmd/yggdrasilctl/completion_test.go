package main

import (
	"reflect"
	"testing"

	"github.com/posener/complete"
)

func TestCommandPredictor(t *testing.T) {
	predictor := newCommandPredictor()

	tests := []struct {
		name     string
		last     string
		expected int
	}{
		{"empty input suggests everything", "", 6},
		{"get prefix", "get", 3},
		{"narrow prefix", "getP", 1},
		{"full command", "getPeers", 1},
		{"no match", "frobnicate", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := predictor.Predict(complete.Args{Last: tt.last})

			if len(results) != tt.expected {
				t.Errorf("expected %d results, got %d: %v", tt.expected, len(results), results)
			}
		})
	}
}

func TestCommandPredictor_PrefixFilter(t *testing.T) {
	predictor := newCommandPredictor()

	got := predictor.Predict(complete.Args{Last: "get"})
	want := []string{"getSelf", "getPeers", "getTree"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Predict(get) = %v, want %v", got, want)
	}
}
