// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SESSION STATS
// =============================================================================

// Stats tracks counters for one session. It is only touched by the
// goroutine driving the session.
type Stats struct {
	ID        string
	StartTime time.Time

	Turns    int
	Failures int
	Tokens   int
}

// NewStats starts a new session record with a fresh ID.
func NewStats() *Stats {
	return &Stats{
		ID:        uuid.NewString(),
		StartTime: time.Now(),
	}
}

// RecordTurn counts one message sent to the model.
func (s *Stats) RecordTurn() {
	s.Turns++
}

// RecordFailure counts one failed request.
func (s *Stats) RecordFailure() {
	s.Failures++
}

// RecordTokens adds the tokens reported for one reply.
func (s *Stats) RecordTokens(n int) {
	s.Tokens += n
}

// Duration returns how long the session has been running.
func (s *Stats) Duration() time.Duration {
	return time.Since(s.StartTime)
}

// Summary returns a one-line description for the goodbye message.
func (s *Stats) Summary() string {
	d := s.Duration().Round(time.Second)
	switch {
	case s.Turns == 0:
		return fmt.Sprintf("no messages sent in %s", d)
	case s.Turns == 1:
		return fmt.Sprintf("1 message sent in %s (%d failed)", d, s.Failures)
	default:
		return fmt.Sprintf("%d messages sent in %s (%d failed)", s.Turns, d, s.Failures)
	}
}
