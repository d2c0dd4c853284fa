package pipeline

import (
	"slices"
	"sync"

	"github.com/kurochkinivan/sheet_ingest/internal/domain"
)

// Queue holds the FileTasks of a session in the order they were added. Only the
// Orchestrator mutates it; readers get copies.
type Queue struct {
	mu    sync.RWMutex
	tasks []*domain.FileTask
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Enqueue(task *domain.FileTask) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.tasks = append(q.tasks, task)
}

func (q *Queue) Get(id string) (*domain.FileTask, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	i := q.index(id)
	if i < 0 {
		return nil, domain.ErrFileNotFound
	}

	return q.tasks[i].Clone(), nil
}

// Update applies patch to the task under the queue lock.
func (q *Queue) Update(id string, patch func(t *domain.FileTask)) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.index(id)
	if i < 0 {
		return domain.ErrFileNotFound
	}

	patch(q.tasks[i])

	return nil
}

// NextPending claims the first Pending task by moving it to Processing and returns
// it with its position in the queue. A claimed task can no longer be removed or
// reassigned.
func (q *Queue) NextPending() (*domain.FileTask, int, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, t := range q.tasks {
		if t.Status == domain.StatusPending {
			t.Status = domain.StatusProcessing
			t.ProgressPercent = 0
			t.ErrorMessage = ""
			t.Summary = nil
			return t.Clone(), i, true
		}
	}

	return nil, -1, false
}

// Remove drops a Pending or terminal task.
func (q *Queue) Remove(id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.index(id)
	if i < 0 {
		return domain.ErrFileNotFound
	}

	if q.tasks[i].Status == domain.StatusProcessing {
		return domain.ErrFileBusy
	}

	q.tasks = slices.Delete(q.tasks, i, i+1)

	return nil
}

func (q *Queue) Snapshot() []*domain.FileTask {
	q.mu.RLock()
	defer q.mu.RUnlock()

	out := make([]*domain.FileTask, 0, len(q.tasks))
	for _, t := range q.tasks {
		out = append(out, t.Clone())
	}

	return out
}

func (q *Queue) index(id string) int {
	return slices.IndexFunc(q.tasks, func(t *domain.FileTask) bool {
		return t.ID == id
	})
}
