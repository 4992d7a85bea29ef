package core

import "bioscene/internal/render"

// Size describes the pixel dimensions of a scene surface.
type Size struct {
	W int
	H int
}

// Scene defines the contract every animated scene implements. Step advances
// state by one display frame; Draw repaints the whole surface.
type Scene interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Draw(c render.Canvas)
}

// Factory constructs a Scene using an optional configuration map.
type Factory func(cfg map[string]string) Scene

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Scenes exposes the registry of available scene factories.
func Scenes() map[string]Factory {
	return scenes
}
