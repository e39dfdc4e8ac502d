package common

import (
	"runtime"
	"sync"
	"time"
)

const (
	INFINITY = -1
	DEFAULT  = 0
)

type entry[V any] struct {
	Value    V
	ExpireAt time.Time
}

type cleaner struct {
	Interval time.Duration
	stop     chan bool
}

type cache[V any] struct {
	defaultExpiryDuration time.Duration
	kvstore               map[string]entry[V]
	locker                sync.RWMutex
	cleaner               *cleaner
}

// TTLCache is a string-keyed cache whose entries expire after a fixed
// duration, purged in the background by an optional cleaner goroutine.
type TTLCache[V any] struct {
	*cache[V]
}

func NewTTLCache[V any](defaultExpiryDuration time.Duration, cleanUpInterval time.Duration) *TTLCache[V] {
	if defaultExpiryDuration == 0 {
		defaultExpiryDuration = INFINITY
	}

	c := &cache[V]{
		defaultExpiryDuration: defaultExpiryDuration,
		kvstore:               make(map[string]entry[V]),
	}

	ttlCache := &TTLCache[V]{c}

	if cleanUpInterval > 0 {
		clean(cleanUpInterval, c)
		runtime.SetFinalizer(ttlCache, stopCleaning[V])
	}
	return ttlCache
}

func clean[V any](cleanUpInterval time.Duration, c *cache[V]) {
	cl := &cleaner{
		Interval: cleanUpInterval,
		stop:     make(chan bool),
	}

	c.cleaner = cl
	go func() {
		ticker := time.NewTicker(cl.Interval)
		for {
			select {
			case <-ticker.C:
				c.purge()
			case <-cl.stop:
				ticker.Stop()
			}
		}
	}()
}

func stopCleaning[V any](cache *TTLCache[V]) {
	cache.cleaner.stop <- true
}

func (c *cache[V]) purge() {
	now := time.Now()
	c.locker.Lock()
	defer c.locker.Unlock()
	for key, data := range c.kvstore {
		if data.ExpireAt.Before(now) {
			delete(c.kvstore, key)
		}
	}
}

func (c *cache[V]) Set(key string, value V) {
	c.locker.Lock()
	defer c.locker.Unlock()

	expireAt := time.Now().Add(c.defaultExpiryDuration)
	c.kvstore[key] = entry[V]{
		Value:    value,
		ExpireAt: expireAt,
	}
}

func (c *cache[V]) Get(key string) (V, bool) {
	c.locker.RLock()
	defer c.locker.RUnlock()

	data, found := c.kvstore[key]
	if !found {
		var zero V
		return zero, false
	}
	if data.ExpireAt.Before(time.Now()) {
		var zero V
		return zero, false
	}
	return data.Value, true
}

func (c *cache[V]) Delete(key string) {
	c.locker.Lock()
	defer c.locker.Unlock()

	delete(c.kvstore, key)
}
