package config

import (
	_ "embed"
	"fmt"
)

//go:embed scenes/default.json
var defaultScene []byte

// Default returns the built-in scene: two large spheres (one a mirror), a
// small sphere, a box, a floor and a mirror wall, lit by two point lights.
func Default() *Config {
	cfg, err := Parse(defaultScene)
	if err != nil {
		panic(fmt.Sprintf("built-in scene: %v", err))
	}
	return cfg
}
