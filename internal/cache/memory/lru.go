package memory

import (
	"container/list"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_basket/pkg/metrics"
)

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

// lruTTL — LRU с опциональным TTL (ttl <= 0 — без истечения).
// Потокобезопасен; значения хранятся как есть, поэтому V должен быть неизменяемым
// (или вызывающая сторона копирует его сама).
type lruTTL[V any] struct {
	name     string // метка cache в метриках
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func newLRUTTL[V any](name string, capacity int, ttl time.Duration) *lruTTL[V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &lruTTL[V]{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// get — значение по ключу; продлевает TTL при попадании.
func (c *lruTTL[V]) get(key string, now time.Time) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lookup(key, now)
}

// set — сохранить/обновить значение.
func (c *lruTTL[V]) set(key string, value V, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store(key, value, now)
}

// update — атомарный read-modify-write: fn получает текущее значение
// (found=false при промахе/истечении), результат сохраняется и возвращается.
func (c *lruTTL[V]) update(key string, now time.Time, fn func(cur V, found bool) V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur, found := c.lookup(key, now)
	next := fn(cur, found)
	c.store(key, next, now)
	return next
}

func (c *lruTTL[V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// ------вспомогательные функции (вызываются под c.mu)------

func (c *lruTTL[V]) lookup(key string, now time.Time) (V, bool) {
	var zero V

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues(c.name, "miss").Inc()
		return zero, false
	}
	ent, ok := elem.Value.(*entry[V])
	if !ok {
		c.removeElement(elem)
		return zero, false
	}
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues(c.name, "expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.WithLabelValues(c.name).Set(float64(c.ll.Len()))
		return zero, false
	}
	c.ll.MoveToFront(elem)
	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues(c.name, "hit").Inc()
	return ent.value, true
}

func (c *lruTTL[V]) store(key string, value V, now time.Time) {
	if elem, ok := c.index[key]; ok {
		if ent, ok := elem.Value.(*entry[V]); ok {
			ent.value = value
			ent.expiresAt = c.expiryFrom(now)
			c.ll.MoveToFront(elem)
			return
		}
		c.removeElement(elem)
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry[V]{
		key:       key,
		value:     value,
		expiresAt: c.expiryFrom(now),
	})
	c.index[key] = elem
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(c.ll.Len()))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
}

// evictLRU — удаляет наименее используемый элемент.
func (c *lruTTL[V]) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues(c.name, "evicted").Inc()
		metrics.CacheSize.WithLabelValues(c.name).Set(float64(c.ll.Len()))
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *lruTTL[V]) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry[V]); ok {
		delete(c.index, ent.key)
	}
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL.
func (c *lruTTL[V]) isExpired(ent *entry[V], now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — вычисляет момент истечения для текущего времени.
func (c *lruTTL[V]) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет элементы с истекшим TTL из хвоста до первого актуального.
func (c *lruTTL[V]) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent, ok := back.Value.(*entry[V])
		if !ok || now.After(ent.expiresAt) {
			c.removeElement(back)
			if ok {
				metrics.CacheOps.WithLabelValues(c.name, "expired").Inc()
			}
			metrics.CacheSize.WithLabelValues(c.name).Set(float64(c.ll.Len()))
			continue
		}
		return
	}
}
