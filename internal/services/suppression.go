// Package services – automation suppression.
//
// A staff-authored, non-automated reply on a conversation halts any further
// automatic messages on that conversation. The rule is behavioral, not a
// stored flag: this registry tracks it per conversation for the lifetime of
// the process. The only writer is SendMessage; readers are whatever
// component would otherwise dispatch an automated message.
package services

import "sync"

// SuppressionRegistry maps conversation id → "automation suppressed".
// Safe for concurrent use.
type SuppressionRegistry struct {
	mu     sync.Mutex
	byConv map[int]bool
}

// NewSuppressionRegistry returns an empty registry: no conversation starts
// suppressed.
func NewSuppressionRegistry() *SuppressionRegistry {
	return &SuppressionRegistry{byConv: make(map[int]bool)}
}

// Suppress marks a conversation as handled by staff. There is no way to
// unsuppress; the flag lives until process restart.
func (r *SuppressionRegistry) Suppress(conversationID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byConv[conversationID] = true
}

// Suppressed reports whether automated messages are currently withheld for
// the conversation.
func (r *SuppressionRegistry) Suppressed(conversationID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byConv[conversationID]
}
