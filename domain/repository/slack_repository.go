package repository

import (
	"log/slog"
	"strings"
	"time"

	"github.com/Songmu/retry"
	ttlcache "github.com/jellydator/ttlcache/v3"
	"github.com/slack-go/slack"
)

type SlackRepositoryer interface {
	GetChannelByName(name string) (*slack.Channel, error)
	PostMessage(channelID string, opts ...slack.MsgOption)
}

type SlackRepository struct {
	client        *slack.Client
	channelsCache *ttlcache.Cache[string, []slack.Channel]
}

func NewSlackRepository(client *slack.Client) *SlackRepository {
	r := &SlackRepository{
		client:        client,
		channelsCache: ttlcache.New(ttlcache.WithTTL[string, []slack.Channel](time.Hour)),
	}
	go r.channelsCache.Start()
	return r
}

func (h *SlackRepository) getChannels() ([]slack.Channel, error) {
	cacheKey := "channels"
	if channels := h.channelsCache.Get(cacheKey); channels != nil {
		return channels.Value(), nil
	}
	nextCursor := ""
	channels := make([]slack.Channel, 0)
	for {
		cs, next, err := h.client.GetConversations(&slack.GetConversationsParameters{
			Limit:           1000,
			Cursor:          nextCursor,
			ExcludeArchived: true,
		})
		if err != nil {
			return nil, err
		}
		channels = append(channels, cs...)
		if next == "" {
			break
		}
		nextCursor = next
	}

	h.channelsCache.Set(cacheKey, channels, ttlcache.DefaultTTL)
	return channels, nil
}

func (h *SlackRepository) GetChannelByName(name string) (*slack.Channel, error) {
	channels, err := h.getChannels()
	if err != nil {
		return nil, err
	}
	for _, c := range channels {
		if c.Name == strings.TrimPrefix(name, "#") {
			return &c, nil
		}
	}
	return nil, nil
}

// PostMessage blocks until the message is delivered or retries are
// exhausted. The CLI process exits right after its command returns, so a
// detached post would be lost.
func (h *SlackRepository) PostMessage(channelID string, opts ...slack.MsgOption) {
	err := retry.Retry(10, 3*time.Second, func() error {
		_, _, err := h.client.PostMessage(channelID, opts...)
		if err != nil {
			slog.Warn("PostMessage", slog.Any("channelID", channelID), slog.Any("err", err))
		}
		return err
	})
	if err != nil {
		slog.Error("Failed to PostMessage", slog.Any("err", err))
	}
}
