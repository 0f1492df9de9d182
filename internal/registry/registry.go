// Package registry provides a global registry of built-in pictures.
// Pictures register themselves in init() functions, allowing the CLI and the
// TUI to discover and render them without hardcoded dependencies.
package registry

import (
	"fmt"
	"image"
	"sort"
	"sync"
)

// Factory renders a picture at the requested pixel size.
type Factory func(width, height int) image.Image

// PictureInfo contains metadata about a registered picture.
type PictureInfo struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a picture factory to the registry.
// Typically called from an init() function.
// Panics if a picture with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: picture %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered pictures, sorted by ID.
func List() []PictureInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PictureInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PictureInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create renders a registered picture by its ID.
// Returns an error if the ID is not registered or the size is empty.
func Create(id string, width, height int) (image.Image, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown picture %q", id)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("registry: cannot render %q at %dx%d", id, width, height)
	}

	return f(width, height), nil
}

// Title returns the display name of a registered picture, or the ID itself.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}

// Exists checks if a picture with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
