package main

import (
	"expvar"
	"time"
)

var cachedResults = expvar.NewInt("cached_results")

// reportCacheEvery publishes the number of cached query results and logs it
// at debug level on every tick.
func (app *application) reportCacheEvery(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			n := app.cache.Len()
			cachedResults.Set(int64(n))
			app.logger.Debugw("query cache", "entries", n)
		}
	}()
}
