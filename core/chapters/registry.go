// Package chapters registers the textbook exercises that the library models.
// Each problem builds its cost object from the figures in the exercise text.
package chapters

import (
	"fmt"
	"sort"
	"sync"

	"accounting-formulas/core/cost"
	"accounting-formulas/internal/errors"
)

// Problem is one end-of-chapter exercise
type Problem struct {
	// Chapter is the textbook chapter number
	Chapter int

	// ID is the exercise number as printed, e.g. "2-26"
	ID string

	// Title is the short heading of the exercise
	Title string

	// Statement is the exercise text
	Statement string

	// Questions are the lettered parts of the exercise
	Questions []string

	// Build constructs the cost object described by the statement
	Build func() (*cost.CostObject, error)
}

// Registry holds problems grouped by chapter
type Registry struct {
	mu       sync.RWMutex
	problems map[int][]*Problem
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		problems: make(map[int][]*Problem),
	}
}

// Register adds a problem. Problem IDs are unique within a chapter.
func (r *Registry) Register(p *Problem) error {
	if p.Build == nil {
		return errors.Input(fmt.Sprintf("problem %s has no builder", p.ID))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.problems[p.Chapter] {
		if existing.ID == p.ID {
			return errors.Newf(errors.TypeInput, "problem %s already registered in chapter %d", p.ID, p.Chapter)
		}
	}
	r.problems[p.Chapter] = append(r.problems[p.Chapter], p)
	sort.Slice(r.problems[p.Chapter], func(i, j int) bool {
		return r.problems[p.Chapter][i].ID < r.problems[p.Chapter][j].ID
	})
	return nil
}

// Chapter returns the problems registered for chapter n
func (r *Registry) Chapter(n int) ([]*Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	problems, ok := r.problems[n]
	if !ok {
		return nil, errors.NotFound("chapter", fmt.Sprint(n))
	}
	return append([]*Problem(nil), problems...), nil
}

// Chapters returns the registered chapter numbers in ascending order
func (r *Registry) Chapters() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chapters := make([]int, 0, len(r.problems))
	for n := range r.problems {
		chapters = append(chapters, n)
	}
	sort.Ints(chapters)
	return chapters
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the registry holding every built-in problem
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, p := range builtin() {
			if err := defaultRegistry.Register(p); err != nil {
				panic(err)
			}
		}
	})
	return defaultRegistry
}

func builtin() []*Problem {
	return []*Problem{
		klearCamera(),
	}
}
