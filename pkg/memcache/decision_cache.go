// pkg/memcache/decision_cache.go
package memcache

import (
	"sync"
	"time"

	"tripdesk/internal/models/response_models"
)

// DecisionCache remembers the last workflow decision per inquiry so a
// follow-up read does not re-run the whole matching pipeline within the TTL.
type DecisionCache interface {
	Set(inquiryID string, decision response_models.WorkflowDecision, ttl time.Duration)

	// Get returns the cached decision if present and not expired.
	Get(inquiryID string) (response_models.WorkflowDecision, bool)

	// Invalidate drops the entry, e.g. after the inquiry payload is edited.
	Invalidate(inquiryID string)
}

type decisionEntry struct {
	decision  response_models.WorkflowDecision
	expiresAt time.Time
}

type decisionCache struct {
	mu   sync.RWMutex
	data map[string]decisionEntry
}

func NewDecisionCache() DecisionCache {
	return &decisionCache{
		data: make(map[string]decisionEntry),
	}
}

func (c *decisionCache) Set(inquiryID string, decision response_models.WorkflowDecision, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[inquiryID] = decisionEntry{
		decision:  decision,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *decisionCache) Get(inquiryID string) (response_models.WorkflowDecision, bool) {
	c.mu.RLock()
	e, ok := c.data[inquiryID]
	c.mu.RUnlock()

	if !ok {
		return response_models.WorkflowDecision{}, false
	}
	if time.Now().After(e.expiresAt) {
		c.Invalidate(inquiryID) // cleanup expired
		return response_models.WorkflowDecision{}, false
	}
	return e.decision, true
}

func (c *decisionCache) Invalidate(inquiryID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, inquiryID)
}
