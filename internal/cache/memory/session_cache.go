package memory

import (
	"context"
	"time"

	"github.com/Gunvolt24/wb_basket/internal/basket"
	"github.com/Gunvolt24/wb_basket/internal/domain"
	"github.com/Gunvolt24/wb_basket/internal/ports"
)

var (
	_ ports.ConfigSlot     = (*SessionCache)(nil)
	_ ports.OrderPoolStore = (*SessionCache)(nil)
)

// session — состояние одной сессии заказа. Все поля неизменяемые:
// обновление публикует новое значение целиком.
type session struct {
	configs     basket.ConfigStore
	pool        domain.OrderPool
	poolVersion uint64
}

// SessionCache — сессионное in-memory хранилище параметров позиций и пула строк.
// Сессия живёт, пока к ней обращаются чаще, чем раз в TTL; при переполнении
// вытесняется самая давняя.
type SessionCache struct {
	lru *lruTTL[session]
	now func() time.Time
}

// NewSessionCache — конструктор.
func NewSessionCache(capacity int, ttl time.Duration) *SessionCache {
	return &SessionCache{
		lru: newLRUTTL[session]("session", capacity, ttl),
		now: time.Now,
	}
}

func (c *SessionCache) Configs(_ context.Context, sessionID string) basket.ConfigStore {
	s, _ := c.lru.get(sessionID, c.now())
	return s.configs
}

func (c *SessionCache) PublishConfigs(
	_ context.Context,
	sessionID string,
	fn func(basket.ConfigStore) basket.ConfigStore,
) basket.ConfigStore {
	next := c.lru.update(sessionID, c.now(), func(cur session, _ bool) session {
		cur.configs = fn(cur.configs)
		return cur
	})
	return next.configs
}

func (c *SessionCache) Pool(_ context.Context, sessionID string) (domain.OrderPool, uint64) {
	s, _ := c.lru.get(sessionID, c.now())
	return s.pool, s.poolVersion
}

func (c *SessionCache) ApplyLine(_ context.Context, ev *domain.LineEvent) uint64 {
	next := c.lru.update(ev.SessionID, c.now(), func(cur session, _ bool) session {
		pool := make(domain.OrderPool, len(cur.pool)+1)
		for k, v := range cur.pool {
			pool[k] = v
		}
		if ev.Count > 0 {
			pool[ev.Key] = domain.OrderLine{Item: ev.Item, Count: ev.Count}
		} else {
			delete(pool, ev.Key)
		}
		cur.pool = pool
		cur.poolVersion++
		return cur
	})
	return next.poolVersion
}

// Len — число живых сессий (с учётом ещё не вычищенных истёкших).
func (c *SessionCache) Len() int { return c.lru.len() }
