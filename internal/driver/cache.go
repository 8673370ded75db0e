package driver

import (
	"os"
	"sync"
	"time"
)

// stepEntry holds a step document with the modification time it was read at.
type stepEntry struct {
	data    []byte
	modTime time.Time
}

// stepCache keeps step-definition documents shared by several test cases or
// suites. An entry is reused while the file's modification time is unchanged.
type stepCache struct {
	mu      sync.Mutex
	entries map[string]stepEntry
	reads   int
}

func newStepCache() *stepCache {
	return &stepCache{entries: make(map[string]stepEntry)}
}

// read returns the contents of path, from cache when still current.
func (c *stepCache) read(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if entry, ok := c.entries[path]; ok && entry.modTime.Equal(info.ModTime()) {
		c.mu.Unlock()
		return entry.data, nil
	}
	c.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[path] = stepEntry{data: data, modTime: info.ModTime()}
	c.reads++
	c.mu.Unlock()

	return data, nil
}
