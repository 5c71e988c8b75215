// Package mirror keeps a client-side copy of the goal tree and reconciles
// user toggles against the store optimistically: the computed update lands
// in memory first, persistence follows, and a failed write throws away all
// optimistic state by reloading the tree.
package mirror

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"purpoise-api/internal/clock"
	"purpoise-api/internal/engine"
	"purpoise-api/internal/models"
)

// ErrTaskNotFound is returned when a toggle names a task the mirror
// does not currently hold.
var ErrTaskNotFound = errors.New("task not found in mirror")

// Store is the persistence boundary the mirror reconciles against.
type Store interface {
	LoadTree() ([]models.Goal, error)
	UpdateTask(id string, update engine.ToggleUpdate) error
}

// DefaultAnimationWindow bounds how long a toggled task is flagged as
// animating. Purely presentational; any bounded value works.
const DefaultAnimationWindow = 600 * time.Millisecond

// Mirror holds the in-memory goal tree for one client session.
type Mirror struct {
	mu         sync.Mutex
	store      Store
	clk        clock.Clock
	goals      []models.Goal
	animating  map[string]*time.Timer
	animateFor time.Duration
}

// New creates a mirror over the given store. Call Load before Toggle.
func New(store Store, clk clock.Clock) *Mirror {
	return &Mirror{
		store:      store,
		clk:        clk,
		animating:  make(map[string]*time.Timer),
		animateFor: DefaultAnimationWindow,
	}
}

// SetAnimationWindow overrides the animating duration (tests use a short one).
func (m *Mirror) SetAnimationWindow(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.animateFor = d
}

// Load replaces the mirrored tree with the store's current state.
func (m *Mirror) Load() error {
	goals, err := m.store.LoadTree()
	if err != nil {
		return fmt.Errorf("load goal tree: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	// copy so in-place optimistic mutation never reaches slices the
	// store may still hold
	m.goals = copyTree(goals)
	return nil
}

// Goals returns a deep copy of the mirrored tree.
func (m *Mirror) Goals() []models.Goal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyTree(m.goals)
}

// IsAnimating reports whether the task is inside its animation window.
func (m *Mirror) IsAnimating(taskID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.animating[taskID]
	return ok
}

// Toggle flips a task's completed state: the engine-computed update is
// applied to every in-memory copy immediately, then persisted with exactly
// those fields. On persistence failure all optimistic state is discarded by
// reloading the full tree, and the failed task's animating flag is cleared.
func (m *Mirror) Toggle(taskID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	task := m.find(taskID)
	if task == nil {
		return ErrTaskNotFound
	}

	update := engine.ComputeToggleUpdate(*task, !task.Completed, m.clk.Now())

	// optimistic apply before the write returns
	m.applyAll(taskID, update)
	m.startAnimation(taskID)

	if err := m.store.UpdateTask(taskID, update); err != nil {
		m.stopAnimation(taskID)
		if goals, loadErr := m.store.LoadTree(); loadErr == nil {
			m.goals = copyTree(goals)
		}
		return fmt.Errorf("persist toggle: %w", err)
	}
	return nil
}

// find returns a pointer into the mirrored tree; callers hold the lock.
func (m *Mirror) find(taskID string) *models.Task {
	for gi := range m.goals {
		for si := range m.goals[gi].Stages {
			tasks := m.goals[gi].Stages[si].Tasks
			for ti := range tasks {
				if tasks[ti].ID == taskID {
					return &tasks[ti]
				}
			}
		}
	}
	return nil
}

// applyAll applies the update to every in-memory occurrence of the task.
func (m *Mirror) applyAll(taskID string, update engine.ToggleUpdate) {
	for gi := range m.goals {
		for si := range m.goals[gi].Stages {
			tasks := m.goals[gi].Stages[si].Tasks
			for ti := range tasks {
				if tasks[ti].ID != taskID {
					continue
				}
				tasks[ti].Completed = update.Completed
				tasks[ti].UpdatedAt = update.UpdatedAt
				if update.Streak != nil {
					tasks[ti].Streak = *update.Streak
				}
				if update.LastCompletedDate != nil {
					tasks[ti].LastCompletedDate = *update.LastCompletedDate
				}
			}
		}
	}
}

func (m *Mirror) startAnimation(taskID string) {
	if t, ok := m.animating[taskID]; ok {
		t.Stop()
	}
	m.animating[taskID] = time.AfterFunc(m.animateFor, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.animating, taskID)
	})
}

func (m *Mirror) stopAnimation(taskID string) {
	if t, ok := m.animating[taskID]; ok {
		t.Stop()
		delete(m.animating, taskID)
	}
}

func copyTree(goals []models.Goal) []models.Goal {
	out := make([]models.Goal, len(goals))
	for gi, g := range goals {
		stages := make([]models.Stage, len(g.Stages))
		for si, s := range g.Stages {
			tasks := make([]models.Task, len(s.Tasks))
			copy(tasks, s.Tasks)
			s.Tasks = tasks
			stages[si] = s
		}
		g.Stages = stages
		out[gi] = g
	}
	return out
}
