package parser

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

const sharedCacheSize = 128

// sharedFiles holds parsed files process-wide, keyed by registered file
// name. The most recent registration at a key wins. Entries evicted for
// capacity release their parse trees.
var sharedFiles = newFileCache(sharedCacheSize)

type fileCache struct {
	entries *lru.Cache[string, *File]
}

func newFileCache(size int) *fileCache {
	entries, err := lru.NewWithEvict[string, *File](size, func(_ string, file *File) {
		file.close()
	})
	if err != nil {
		panic(fmt.Sprintf("parser: file cache: %v", err))
	}
	return &fileCache{entries: entries}
}

func (c *fileCache) get(name string) (*File, bool) {
	return c.entries.Get(name)
}

func (c *fileCache) add(name string, file *File) {
	// Replacing an existing key does not run the eviction callback, so the
	// displaced tree is released here.
	if previous, ok := c.entries.Peek(name); ok && previous != file {
		previous.close()
	}
	c.entries.Add(name, file)
}
