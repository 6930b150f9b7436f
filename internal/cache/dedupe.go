package cache

import "time"

// Deduper remembers recently seen keys. A key is forgotten after ttl or when
// capacity pushes it out, whichever comes first.
type Deduper struct {
	seen *LRU[string, struct{}]
}

func NewDeduper(capacity int, ttl time.Duration) *Deduper {
	return &Deduper{seen: NewLRU[string, struct{}](capacity, ttl)}
}

// FirstSeen records key and reports whether it was not already remembered.
func (d *Deduper) FirstSeen(key string) bool {
	return d.seen.Add(key, struct{}{})
}

// Forget drops key so a later delivery is processed again.
func (d *Deduper) Forget(key string) {
	d.seen.Delete(key)
}

func (d *Deduper) Len() int { return d.seen.Len() }

func (d *Deduper) CleanExpired() int { return d.seen.CleanExpired() }
