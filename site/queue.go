// Package site — BFS queue with deduplication.
// Maintains a visited set so a page linked from several others is
// compiled once.
package site

// Queue is a BFS queue of source file paths with deduplication.
type Queue struct {
	items   []string
	visited map[string]bool
	idx     int // current read position
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		visited: make(map[string]bool),
	}
}

// Add enqueues a path if it hasn't been seen before.
func (q *Queue) Add(path string) {
	if q.visited[path] {
		return
	}
	q.visited[path] = true
	q.items = append(q.items, path)
}

// HasNext returns true if there are unprocessed paths.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed path and advances the pointer.
func (q *Queue) Next() string {
	path := q.items[q.idx]
	q.idx++
	return path
}

// Visited returns the total number of unique paths seen.
func (q *Queue) Visited() int {
	return len(q.visited)
}

// All returns all discovered paths (in BFS order).
func (q *Queue) All() []string {
	return q.items
}
