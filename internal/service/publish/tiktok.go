// internal/service/publish/tiktok.go

package publish

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"clipforge/internal/config"
	"clipforge/internal/domain/content"
	"clipforge/internal/domain/platform"
	"clipforge/internal/httpx"
)

const tiktokPublishURL = "https://open.tiktokapis.com/v2/post/publish/video/init/"

// TikTok publishes videos through the content posting API, pulling media
// from a caller-supplied URL. Like Instagram, a missing MediaURL is a
// per-platform failure, not a pipeline error.
type TikTok struct {
	http   *httpx.Client
	logger *zap.Logger

	configured bool
}

// NewTikTok creates the TikTok publisher on an oauth2 bearer transport.
func NewTikTok(cfg config.TikTokConfig, timeoutClient *httpx.Client, logger *zap.Logger) *TikTok {
	t := &TikTok{
		logger:     logger,
		configured: cfg.AccessToken != "",
	}

	if t.configured {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken})
		t.http = httpx.NewWithClient(oauth2.NewClient(context.Background(), src))
	} else {
		t.http = timeoutClient
	}

	return t
}

type tiktokPublishRequest struct {
	PostInfo   tiktokPostInfo   `json:"post_info"`
	SourceInfo tiktokSourceInfo `json:"source_info"`
}

type tiktokPostInfo struct {
	Title         string `json:"title"`
	PrivacyLevel  string `json:"privacy_level"`
	DisableDuet   bool   `json:"disable_duet"`
	DisableStitch bool   `json:"disable_stitch"`
}

type tiktokSourceInfo struct {
	Source   string `json:"source"`
	VideoURL string `json:"video_url"`
}

type tiktokPublishResponse struct {
	Data struct {
		PublishID string `json:"publish_id"`
	} `json:"data"`
}

// Publish starts a pull-from-URL video post.
func (t *TikTok) Publish(ctx context.Context, p platform.Payload) (platform.PostRef, error) {
	if !t.configured {
		return platform.PostRef{}, content.NewUpstreamError("tiktok", fmt.Errorf("tiktok credentials are not configured"))
	}
	if p.MediaURL == "" {
		return platform.PostRef{}, content.NewUpstreamError("tiktok", fmt.Errorf("tiktok requires a video: supply videoUrl on the artifact"))
	}

	var resp tiktokPublishResponse
	err := t.http.Do(ctx, httpx.Request{
		Method: http.MethodPost,
		URL:    tiktokPublishURL,
		Body: tiktokPublishRequest{
			PostInfo: tiktokPostInfo{
				Title:        p.Caption,
				PrivacyLevel: "PUBLIC_TO_EVERYONE",
			},
			SourceInfo: tiktokSourceInfo{
				Source:   "PULL_FROM_URL",
				VideoURL: p.MediaURL,
			},
		},
		Out: &resp,
	})
	if err != nil {
		return platform.PostRef{}, content.NewUpstreamError("tiktok", err)
	}

	t.logger.Info("tiktok publish started", zap.String("publishId", resp.Data.PublishID))

	return platform.PostRef{ID: resp.Data.PublishID}, nil
}
