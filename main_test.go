package main

import (
	"testing"
)

func TestNewApp_Commands(t *testing.T) {
	app := newApp()

	for _, name := range []string{"render", "scenes"} {
		t.Run(name, func(t *testing.T) {
			command := app.Command(name)
			if command == nil {
				t.Fatalf("Expected command %q", name)
			}
			if command.Action == nil {
				t.Errorf("Expected command %q to have an action", name)
			}
		})
	}

	if app.Command("compile") != nil {
		t.Error("Unexpected command compile")
	}
}
