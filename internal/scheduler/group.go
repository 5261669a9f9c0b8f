package scheduler

import "sync"

// Group owns several tasks and stops them together.
type Group struct {
	mu      sync.Mutex
	tasks   []*Task
	stopped bool
}

// Add registers a task with the group. Adding to a stopped group stops the
// task immediately.
func (g *Group) Add(t *Task) {
	g.mu.Lock()
	if g.stopped {
		g.mu.Unlock()
		t.Stop()
		return
	}
	g.tasks = append(g.tasks, t)
	g.mu.Unlock()
}

// Stop stops every task in reverse registration order.
func (g *Group) Stop() {
	g.mu.Lock()
	tasks := g.tasks
	g.tasks = nil
	g.stopped = true
	g.mu.Unlock()

	for i := len(tasks) - 1; i >= 0; i-- {
		tasks[i].Stop()
	}
}

// Len returns the number of running tasks.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.tasks)
}
