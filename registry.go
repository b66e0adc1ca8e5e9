package main

import (
	"github.com/Kostassoid/lethe/config"
	"github.com/Kostassoid/lethe/sanitization"
)

// resolveRegistry returns the built-in scheme registry, overlaid with any
// operator-defined schemes from schemesFile (a JSONC file per config.Load).
// An empty path is not an error: it just means "built-ins only".
func resolveRegistry(schemesFile string) (*sanitization.Registry, error) {
	registry := sanitization.BuiltinRegistry()
	if schemesFile == "" {
		return registry, nil
	}

	extra, err := config.Load(schemesFile)
	if err != nil {
		return nil, err
	}
	return registry.Merge(extra), nil
}
