// Package scene provides the scenes that can be rendered without a scene file.
package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/loaders"
	"github.com/df07/go-scene-raytracer/pkg/log"
)

// ErrUnknownScene is returned by Lookup for a name that is not registered
var ErrUnknownScene = errors.New("scene: unknown built-in scene")

type builtin struct {
	description string
	build       func() *loaders.Scene
}

var builtins = map[string]builtin{
	"default":  {"Checkered ground with diffuse, mirror and glass spheres, a cube and one bulb", NewDefaultScene},
	"ambient":  {"A single sphere lit only by ambient light", NewAmbientTestScene},
	"textures": {"Procedural image textures on spheres and a box", NewTextureTestScene},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the one-line description of a built-in scene
func Describe(name string) string {
	return builtins[name].description
}

// Lookup builds the named scene
func Lookup(name string) (*loaders.Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.build(), nil
}

var (
	logger = log.New("scene")
	up     = core.NewVec3(0, 1, 0)
)
