// internal/service/publish/registry.go

package publish

import (
	"go.uber.org/zap"

	"clipforge/internal/config"
	"clipforge/internal/domain/platform"
	"clipforge/internal/httpx"
	"clipforge/internal/service/repurpose"
)

// BuildRegistry wires every supported platform's repurpose transform and
// publisher into a registry. Publishers with missing credentials stay
// registered: their calls fail per-platform, which the publish operation
// records as data.
func BuildRegistry(cfg config.PlatformsConfig, httpClient *httpx.Client, logger *zap.Logger) *platform.Registry {
	registry := platform.NewRegistry()

	registry.Register(platform.Instagram, platform.Capability{
		Repurpose: platform.RepurposeFunc(repurpose.Instagram),
		Publish:   NewInstagram(cfg.Instagram, httpClient, logger),
	})
	registry.Register(platform.TikTok, platform.Capability{
		Repurpose: platform.RepurposeFunc(repurpose.TikTok),
		Publish:   NewTikTok(cfg.TikTok, httpClient, logger),
	})
	registry.Register(platform.Facebook, platform.Capability{
		Repurpose: platform.RepurposeFunc(repurpose.Facebook),
		Publish:   NewFacebook(cfg.Facebook, httpClient, logger),
	})
	registry.Register(platform.LinkedIn, platform.Capability{
		Repurpose: platform.RepurposeFunc(repurpose.LinkedIn),
		Publish:   NewLinkedIn(cfg.LinkedIn, httpClient, logger),
	})
	registry.Register(platform.X, platform.Capability{
		Repurpose: platform.RepurposeFunc(repurpose.X),
		Publish:   NewX(cfg.X, logger),
	})

	return registry
}
