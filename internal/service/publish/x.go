// internal/service/publish/x.go

package publish

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dghubble/oauth1"
	twitter "github.com/g8rswimmer/go-twitter/v2"
	"go.uber.org/zap"

	"clipforge/internal/config"
	"clipforge/internal/domain/content"
	"clipforge/internal/domain/platform"
)

// X publishes tweets through the v2 API with OAuth1 user-context signing.
type X struct {
	client *twitter.Client
	logger *zap.Logger
}

// oauth1Authorizer satisfies the client's Authorizer interface; the oauth1
// transport underneath already signs every request.
type oauth1Authorizer struct{}

func (oauth1Authorizer) Add(*http.Request) {}

// NewX creates the X publisher. Returns a nil client when credentials are
// absent; Publish then fails per-platform.
func NewX(cfg config.XConfig, logger *zap.Logger) *X {
	x := &X{logger: logger}

	if cfg.ConsumerKey == "" || cfg.AccessToken == "" {
		return x
	}

	oauthCfg := oauth1.NewConfig(cfg.ConsumerKey, cfg.ConsumerSecret)
	token := oauth1.NewToken(cfg.AccessToken, cfg.AccessSecret)

	x.client = &twitter.Client{
		Authorizer: oauth1Authorizer{},
		Client:     oauthCfg.Client(oauth1.NoContext, token),
		Host:       "https://api.twitter.com",
	}
	return x
}

// Publish creates a tweet with the payload's text.
func (x *X) Publish(ctx context.Context, p platform.Payload) (platform.PostRef, error) {
	if x.client == nil {
		return platform.PostRef{}, content.NewUpstreamError("x", fmt.Errorf("x credentials are not configured"))
	}

	resp, err := x.client.CreateTweet(ctx, twitter.CreateTweetRequest{Text: p.Text})
	if err != nil {
		return platform.PostRef{}, content.NewUpstreamError("x", err)
	}
	if resp == nil || resp.Tweet == nil {
		return platform.PostRef{}, content.NewUpstreamError("x", fmt.Errorf("empty create tweet response"))
	}

	x.logger.Info("tweet created", zap.String("tweetId", resp.Tweet.ID))

	return platform.PostRef{
		ID:  resp.Tweet.ID,
		URL: "https://x.com/i/status/" + resp.Tweet.ID,
	}, nil
}
