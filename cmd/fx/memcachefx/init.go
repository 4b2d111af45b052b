package memcachefx

import (
	"go.uber.org/fx"
	"tripdesk/pkg/memcache"
)

var Module = fx.Provide(
	provideDecisionCache)

func provideDecisionCache() memcache.DecisionCache {
	return memcache.NewDecisionCache()
}
