package cue

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Env carries what sink factories may need.
type Env struct {
	Logger *log.Logger
	Out    io.Writer // terminal or SSH session for the bell sink
	Volume float64
}

// Factory builds a sink. Returning an error makes Build skip the sink.
type Factory func(env Env) (Sink, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

func init() {
	Register("beep", func(env Env) (Sink, error) { return NewSynthSink(env.Volume) })
	Register("bell", func(env Env) (Sink, error) { return NewBellSink(env.Out), nil })
	Register("log", func(env Env) (Sink, error) { return NewLogSink(env.Logger), nil })
}

// Register adds a sink factory under name.
// Panics if a sink with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("cue: sink %q already registered", name))
	}
	factories[name] = f
}

// Names returns the registered sink names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]string, 0, len(factories))
	for name := range factories {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Exists checks if a sink with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

// Create instantiates a single sink by name.
func Create(name string, env Env) (Sink, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("cue: unknown sink %q", name)
	}
	s, err := f(env)
	if err != nil {
		return nil, fmt.Errorf("cue: sink %q: %w", name, err)
	}
	return s, nil
}

// Build parses a comma-separated list of sink names and returns the
// combined sink. Unknown names are an error; sinks whose factory fails
// (for example, no audio device) are skipped with a warning. The result
// may be an empty Multi, which plays nothing.
func Build(list string, env Env) (Multi, error) {
	var sinks Multi
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" || name == "none" {
			continue
		}
		if !Exists(name) {
			return nil, fmt.Errorf("cue: unknown sink %q (available: %s)", name, strings.Join(Names(), ", "))
		}
		s, err := Create(name, env)
		if err != nil {
			if env.Logger != nil {
				env.Logger.Warn("cue sink disabled", "sink", name, "err", err)
			}
			continue
		}
		sinks = append(sinks, s)
	}
	return sinks, nil
}
