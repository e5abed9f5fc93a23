package dedup

import (
	"strings"
	"sync"
	"time"

	"go-internship-agent/internal/models"
)

const DefaultMaxSize = 1000

// History remembers which posting links were already sent. It keeps at
// most MaxSize links and evicts the oldest first.
type History struct {
	mu          sync.Mutex
	maxSize     int
	links       []string
	index       map[string]struct{}
	lastUpdated time.Time
}

func NewHistory(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &History{
		maxSize: maxSize,
		index:   make(map[string]struct{}),
	}
}

// restore rebuilds a history from stored links, oldest first.
func restore(maxSize int, links []string, lastUpdated time.Time) *History {
	h := NewHistory(maxSize)
	for _, l := range links {
		h.add(l)
	}
	h.lastUpdated = lastUpdated
	return h
}

// IsNew reports whether link has not been sent yet.
func (h *History) IsNew(link string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, seen := h.index[strings.TrimSpace(link)]
	return !seen
}

// MarkSent records links as sent. Links already present keep their
// position; empty links are ignored.
func (h *History) MarkSent(links ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, l := range links {
		h.add(l)
	}
	h.lastUpdated = time.Now()
}

func (h *History) add(link string) {
	link = strings.TrimSpace(link)
	if link == "" {
		return
	}
	if _, ok := h.index[link]; ok {
		return
	}
	h.links = append(h.links, link)
	h.index[link] = struct{}{}
	for len(h.links) > h.maxSize {
		delete(h.index, h.links[0])
		h.links = h.links[1:]
	}
}

// FilterNew returns the jobs whose links were never sent, in input order.
func (h *History) FilterNew(jobs []models.Job) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if h.IsNew(j.URL) {
			out = append(out, j)
		}
	}
	return out
}

// Links returns a copy of the stored links, oldest first.
func (h *History) Links() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.links...)
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.links)
}

func (h *History) MaxSize() int { return h.maxSize }

func (h *History) LastUpdated() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastUpdated
}
