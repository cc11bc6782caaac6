// internal/service/publish/instagram.go

package publish

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"clipforge/internal/config"
	"clipforge/internal/domain/content"
	"clipforge/internal/domain/platform"
	"clipforge/internal/httpx"
)

// Instagram publishes reels through the Graph API container flow: create a
// media container from a hosted video URL, then publish it. The pipeline
// never produces a rendered video, so the payload's MediaURL must come from
// the caller; without it publishing fails per-platform.
type Instagram struct {
	accessToken string
	accountID   string
	http        *httpx.Client
	logger      *zap.Logger
}

// NewInstagram creates the Instagram reels publisher.
func NewInstagram(cfg config.InstagramConfig, httpClient *httpx.Client, logger *zap.Logger) *Instagram {
	return &Instagram{
		accessToken: cfg.AccessToken,
		accountID:   cfg.AccountID,
		http:        httpClient,
		logger:      logger,
	}
}

// Publish uploads and publishes the reel.
func (i *Instagram) Publish(ctx context.Context, p platform.Payload) (platform.PostRef, error) {
	if i.accessToken == "" || i.accountID == "" {
		return platform.PostRef{}, content.NewUpstreamError("instagram", fmt.Errorf("instagram credentials are not configured"))
	}
	if p.MediaURL == "" {
		return platform.PostRef{}, content.NewUpstreamError("instagram", fmt.Errorf("instagram requires a video: supply videoUrl on the artifact"))
	}

	form := url.Values{}
	form.Set("media_type", "REELS")
	form.Set("video_url", p.MediaURL)
	form.Set("caption", p.Caption)
	form.Set("access_token", i.accessToken)

	var container graphPostResponse
	err := i.http.Do(ctx, httpx.Request{
		Method:  http.MethodPost,
		URL:     fmt.Sprintf("%s/%s/media", graphBaseURL, i.accountID),
		Header:  http.Header{"Content-Type": {"application/x-www-form-urlencoded"}},
		RawBody: []byte(form.Encode()),
		Out:     &container,
	})
	if err != nil {
		return platform.PostRef{}, content.NewUpstreamError("instagram", err)
	}

	publishForm := url.Values{}
	publishForm.Set("creation_id", container.ID)
	publishForm.Set("access_token", i.accessToken)

	var resp graphPostResponse
	err = i.http.Do(ctx, httpx.Request{
		Method:  http.MethodPost,
		URL:     fmt.Sprintf("%s/%s/media_publish", graphBaseURL, i.accountID),
		Header:  http.Header{"Content-Type": {"application/x-www-form-urlencoded"}},
		RawBody: []byte(publishForm.Encode()),
		Out:     &resp,
	})
	if err != nil {
		return platform.PostRef{}, content.NewUpstreamError("instagram", err)
	}

	i.logger.Info("instagram reel published", zap.String("mediaId", resp.ID))

	return platform.PostRef{ID: resp.ID}, nil
}
