// internal/service/publish/linkedin.go

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

const linkedinPostsURL = "https://api.linkedin.com/v2/ugcPosts"

// LinkedIn publishes text posts through the UGC posts API using a static
// bearer token.
type LinkedIn struct {
	authorURN string
	http      *httpx.Client
	logger    *zap.Logger

	configured bool
}

// NewLinkedIn creates the LinkedIn publisher. The access token rides an
// oauth2 static token transport so auth stays out of per-request code.
func NewLinkedIn(cfg config.LinkedInConfig, timeoutClient *httpx.Client, logger *zap.Logger) *LinkedIn {
	li := &LinkedIn{
		authorURN:  cfg.AuthorURN,
		logger:     logger,
		configured: cfg.AccessToken != "" && cfg.AuthorURN != "",
	}

	if li.configured {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken})
		li.http = httpx.NewWithClient(oauth2.NewClient(context.Background(), src))
	} else {
		li.http = timeoutClient
	}

	return li
}

type linkedinPostRequest struct {
	Author          string               `json:"author"`
	LifecycleState  string               `json:"lifecycleState"`
	SpecificContent linkedinShareContent `json:"specificContent"`
	Visibility      map[string]string    `json:"visibility"`
}

type linkedinShareContent struct {
	ShareContent linkedinShare `json:"com.linkedin.ugc.ShareContent"`
}

type linkedinShare struct {
	ShareCommentary    linkedinText `json:"shareCommentary"`
	ShareMediaCategory string       `json:"shareMediaCategory"`
}

type linkedinText struct {
	Text string `json:"text"`
}

// Publish creates the UGC post with the payload's text.
func (l *LinkedIn) Publish(ctx context.Context, p platform.Payload) (platform.PostRef, error) {
	if !l.configured {
		return platform.PostRef{}, content.NewUpstreamError("linkedin", fmt.Errorf("linkedin credentials are not configured"))
	}

	var resp graphPostResponse
	err := l.http.Do(ctx, httpx.Request{
		Method: http.MethodPost,
		URL:    linkedinPostsURL,
		Header: http.Header{"X-Restli-Protocol-Version": {"2.0.0"}},
		Body: linkedinPostRequest{
			Author:         l.authorURN,
			LifecycleState: "PUBLISHED",
			SpecificContent: linkedinShareContent{
				ShareContent: linkedinShare{
					ShareCommentary:    linkedinText{Text: p.Text},
					ShareMediaCategory: "NONE",
				},
			},
			Visibility: map[string]string{
				"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
			},
		},
		Out: &resp,
	})
	if err != nil {
		return platform.PostRef{}, content.NewUpstreamError("linkedin", err)
	}

	l.logger.Info("linkedin post created", zap.String("postId", resp.ID))

	return platform.PostRef{ID: resp.ID}, nil
}
