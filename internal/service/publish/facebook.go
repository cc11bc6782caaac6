// internal/service/publish/facebook.go

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

const graphBaseURL = "https://graph.facebook.com/v19.0"

// Facebook posts page feed updates through the Graph API.
type Facebook struct {
	accessToken string
	pageID      string
	http        *httpx.Client
	logger      *zap.Logger
}

// NewFacebook creates the Facebook page publisher.
func NewFacebook(cfg config.FacebookConfig, httpClient *httpx.Client, logger *zap.Logger) *Facebook {
	return &Facebook{
		accessToken: cfg.AccessToken,
		pageID:      cfg.PageID,
		http:        httpClient,
		logger:      logger,
	}
}

type graphPostResponse struct {
	ID string `json:"id"`
}

// Publish creates a feed post with the payload's message.
func (f *Facebook) Publish(ctx context.Context, p platform.Payload) (platform.PostRef, error) {
	if f.accessToken == "" || f.pageID == "" {
		return platform.PostRef{}, content.NewUpstreamError("facebook", fmt.Errorf("facebook credentials are not configured"))
	}

	form := url.Values{}
	form.Set("message", p.Message)
	form.Set("access_token", f.accessToken)

	var resp graphPostResponse
	err := f.http.Do(ctx, httpx.Request{
		Method:  http.MethodPost,
		URL:     fmt.Sprintf("%s/%s/feed", graphBaseURL, f.pageID),
		Header:  http.Header{"Content-Type": {"application/x-www-form-urlencoded"}},
		RawBody: []byte(form.Encode()),
		Out:     &resp,
	})
	if err != nil {
		return platform.PostRef{}, content.NewUpstreamError("facebook", err)
	}

	f.logger.Info("facebook post created", zap.String("postId", resp.ID))

	return platform.PostRef{
		ID:  resp.ID,
		URL: "https://www.facebook.com/" + resp.ID,
	}, nil
}
