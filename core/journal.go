package core

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

// JobHistory records which names a job has already transferred.
type JobHistory struct {
	// Map name -> transfer time
	Records map[string]time.Time `json:"records"`
	mu      sync.RWMutex
}

// Journal persists per-job transfer history as JSON so scheduled jobs skip
// files they already moved.
type Journal struct {
	Jobs map[string]*JobHistory `json:"jobs"`
	Path string
	mu   sync.RWMutex
}

func NewJournal(path string) *Journal {
	return &Journal{
		Jobs: make(map[string]*JobHistory),
		Path: path,
	}
}

func (j *Journal) Load() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	data, err := os.ReadFile(j.Path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &j.Jobs)
}

func (j *Journal) Save() error {
	j.mu.RLock()
	defer j.mu.RUnlock()

	data, err := json.MarshalIndent(j.Jobs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(j.Path, data, 0644)
}

func (j *Journal) Job(name string) *JobHistory {
	j.mu.Lock()
	defer j.mu.Unlock()

	if _, ok := j.Jobs[name]; !ok {
		j.Jobs[name] = &JobHistory{
			Records: make(map[string]time.Time),
		}
	}
	return j.Jobs[name]
}

func (h *JobHistory) Add(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Records[name] = time.Now()
}

func (h *JobHistory) Has(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.Records[name]
	return ok
}

func (h *JobHistory) When(name string) (time.Time, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	t, ok := h.Records[name]
	return t, ok
}

func (h *JobHistory) Remove(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.Records, name)
}

// olderThan snapshots the records transferred before cutoff.
func (h *JobHistory) olderThan(cutoff time.Time) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var names []string
	for name, when := range h.Records {
		if when.Before(cutoff) {
			names = append(names, name)
		}
	}
	return names
}
