package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tripdesk/internal/models/response_models"
)

func TestDecisionCache_SetGet(t *testing.T) {
	cache := NewDecisionCache()

	decision := response_models.WorkflowDecision{
		Action:    response_models.ActionSendItineraries,
		BestScore: 92,
	}
	cache.Set("inq-1", decision, time.Minute)

	got, ok := cache.Get("inq-1")
	assert.True(t, ok)
	assert.Equal(t, decision, got)

	_, ok = cache.Get("inq-2")
	assert.False(t, ok)
}

func TestDecisionCache_Expiry(t *testing.T) {
	cache := NewDecisionCache()

	cache.Set("inq-1", response_models.WorkflowDecision{Action: response_models.ActionAskCustomer}, -time.Second)

	_, ok := cache.Get("inq-1")
	assert.False(t, ok)
}

func TestDecisionCache_Invalidate(t *testing.T) {
	cache := NewDecisionCache()

	cache.Set("inq-1", response_models.WorkflowDecision{Action: response_models.ActionForwardToSupplier}, time.Minute)
	cache.Invalidate("inq-1")

	_, ok := cache.Get("inq-1")
	assert.False(t, ok)
}
