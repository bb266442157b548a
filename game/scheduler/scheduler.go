// Package scheduler runs delayed callbacks on the caller's goroutine.
//
// The frame loop calls RunDue once per frame; callbacks never run
// concurrently with each other or with the loop.
package scheduler

import (
	"sort"
	"time"
)

type timer struct {
	at  time.Time
	seq uint64
	fn  func()
}

// Queue is a list of pending callbacks ordered by deadline.
type Queue struct {
	now     func() time.Time
	pending []timer
	seq     uint64
}

// New returns a Queue reading time from now. A nil now uses time.Now.
func New(now func() time.Time) *Queue {
	if now == nil {
		now = time.Now
	}
	return &Queue{now: now}
}

// After schedules fn to run once d has elapsed.
func (q *Queue) After(d time.Duration, fn func()) {
	q.seq++
	q.pending = append(q.pending, timer{at: q.now().Add(d), seq: q.seq, fn: fn})
}

// RunDue runs every callback whose deadline has passed, earliest first,
// and returns how many ran. Callbacks scheduled while running wait for
// the next call even if already due.
func (q *Queue) RunDue() int {
	now := q.now()
	var due, later []timer
	for _, t := range q.pending {
		if !t.at.After(now) {
			due = append(due, t)
		} else {
			later = append(later, t)
		}
	}
	if len(due) == 0 {
		return 0
	}
	q.pending = later
	sort.Slice(due, func(i, j int) bool {
		if !due[i].at.Equal(due[j].at) {
			return due[i].at.Before(due[j].at)
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// Len returns the number of callbacks waiting.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Clear drops all pending callbacks.
func (q *Queue) Clear() {
	q.pending = nil
}
