package memcache_fx

import (
	"go.uber.org/fx"

	mem "healthtrack/pkg/memcache"
)

var Module = fx.Provide(provideRevokedTokens)

func provideRevokedTokens() mem.RevokedTokenStore {
	return mem.NewRevokedTokens()
}
