package utils

import (
	"sync"
	"time"
)

var (
	onceCache  = make(map[string]time.Time)
	cacheMutex = &sync.RWMutex{}
)

func init() {
	go startCacheJanitor()
}

// MarkOnce records key and returns true the first time it is seen within the
// interval. Used to throttle the "please verify" reminder so an unverified
// member spamming a channel gets at most one DM per interval.
func MarkOnce(key string, interval time.Duration) bool {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	if last, found := onceCache[key]; found && time.Since(last) < interval {
		return false
	}
	onceCache[key] = time.Now()
	return true
}

// startCacheJanitor runs a background process to clean up stale entries.
func startCacheJanitor() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cacheMutex.Lock()
		for key, last := range onceCache {
			if time.Since(last) > time.Hour {
				delete(onceCache, key)
			}
		}
		cacheMutex.Unlock()
	}
}
