// SPDX-License-Identifier: Apache-2.0

package service

import (
	"hash/fnv"
	"sync"
	"time"
)

// throttleShards fixes the number of independently locked buckets the
// attempt map is split across, keeping contention low under parallel
// login traffic.
const throttleShards = 32

type loginAttempt struct {
	failures int
	last     time.Time
}

type throttleShard struct {
	mu       sync.Mutex
	attempts map[string]loginAttempt
}

type loginThrottle struct {
	shards    [throttleShards]*throttleShard
	threshold int
	cooldown  time.Duration

	now func() time.Time
}

// NewLoginThrottle builds an in-memory [ThrottleService]. A username is
// blocked once it accumulates more than allowedFailures failed attempts
// and its last failure is younger than cooldown. allowedFailures <= 0
// disables throttling entirely.
func NewLoginThrottle(allowedFailures int, cooldown time.Duration) ThrottleService {
	t := &loginThrottle{
		threshold: allowedFailures,
		cooldown:  cooldown,
		now:       time.Now,
	}
	for i := range t.shards {
		t.shards[i] = &throttleShard{attempts: make(map[string]loginAttempt)}
	}
	return t
}

func (t *loginThrottle) shardFor(username string) *throttleShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return t.shards[h.Sum32()%throttleShards]
}

func (t *loginThrottle) RecordFailure(username string) {
	s := t.shardFor(username)
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.attempts[username]
	a.failures++
	a.last = t.now()
	s.attempts[username] = a
}

func (t *loginThrottle) RecordSuccess(username string) {
	s := t.shardFor(username)
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.attempts, username)
}

func (t *loginThrottle) IsBlocked(username string) bool {
	if t.threshold <= 0 {
		return false
	}

	s := t.shardFor(username)
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[username]
	if !ok || a.failures <= t.threshold {
		return false
	}
	return t.now().Sub(a.last) < t.cooldown
}

// Sweep is called periodically by the janitor worker. Counters with a
// fully elapsed cooldown carry no blocking power anymore and only hold
// memory, so they are dropped.
func (t *loginThrottle) Sweep() int {
	removed := 0
	cutoff := t.now().Add(-t.cooldown)

	for _, s := range t.shards {
		s.mu.Lock()
		for username, a := range s.attempts {
			if a.last.Before(cutoff) {
				delete(s.attempts, username)
				removed++
			}
		}
		s.mu.Unlock()
	}

	return removed
}
