package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tombraider-hub/domain/apperror"
	"tombraider-hub/domain/dto"
	"tombraider-hub/domain/repository"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	// MaxPageSize is the largest maxResults playlistItems.list accepts.
	MaxPageSize = 50
	// MaxIDsPerRequest is the most ids videos.list accepts in one call.
	MaxIDsPerRequest = 50
)

var quotaReasons = map[string]bool{
	"quotaExceeded":         true,
	"dailyLimitExceeded":    true,
	"rateLimitExceeded":     true,
	"userRateLimitExceeded": true,
}

// Client is a read-only YouTube Data API client authenticated with an API key
type Client struct {
	service *youtube.Service
	timeout time.Duration
}

// Config represents YouTube API configuration
type Config struct {
	APIKey         string        `json:"api_key"`
	RequestTimeout time.Duration `json:"request_timeout"`
	// Endpoint overrides the API base URL (tests, proxies).
	Endpoint string `json:"endpoint"`
}

var _ repository.IYouTube = (*Client)(nil)

// NewYouTubeClient creates a new YouTube API client
func NewYouTubeClient(ctx context.Context, config *Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, apperror.New(apperror.CodeConfiguration, "YouTube API key is not configured")
	}
	opts := []option.ClientOption{option.WithAPIKey(config.APIKey)}
	if config.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(config.Endpoint))
	}
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
	}
	timeout := config.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{service: service, timeout: timeout}, nil
}

// ListPlaylistItems fetches one page of a playlist
func (c *Client) ListPlaylistItems(ctx context.Context, playlistID, pageToken string) (*dto.PlaylistItemPage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	call := c.service.PlaylistItems.List([]string{"snippet", "contentDetails", "status"}).
		PlaylistId(playlistID).
		MaxResults(MaxPageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		return nil, classify(err, "failed to list playlist items")
	}

	page := &dto.PlaylistItemPage{
		Items:         make([]dto.PlaylistItem, 0, len(response.Items)),
		NextPageToken: response.NextPageToken,
	}
	for _, item := range response.Items {
		page.Items = append(page.Items, convertPlaylistItem(item))
	}
	return page, nil
}

// GetVideoDetails fetches duration, statistics and status for up to
// MaxIDsPerRequest videos
func (c *Client) GetVideoDetails(ctx context.Context, ids []string) ([]dto.VideoDetails, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > MaxIDsPerRequest {
		return nil, apperror.New(apperror.CodeValidation, fmt.Sprintf("at most %d ids per request, got %d", MaxIDsPerRequest, len(ids)))
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.service.Videos.List([]string{"contentDetails", "statistics", "status"}).
		Id(ids...).
		MaxResults(MaxIDsPerRequest).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify(err, "failed to get video details")
	}

	details := make([]dto.VideoDetails, 0, len(response.Items))
	for _, video := range response.Items {
		details = append(details, convertVideoDetails(video))
	}
	return details, nil
}

// GetChannelDetails fetches the public profile of a channel
func (c *Client) GetChannelDetails(ctx context.Context, channelID string) (*dto.ChannelDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.service.Channels.List([]string{"snippet", "statistics"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify(err, "failed to get channel")
	}
	if len(response.Items) == 0 {
		return nil, apperror.New(apperror.CodeNotFound, fmt.Sprintf("channel not found: %s", channelID))
	}

	channel := response.Items[0]
	details := &dto.ChannelDetails{ID: channel.Id}
	if channel.Snippet != nil {
		details.Title = channel.Snippet.Title
		details.Description = channel.Snippet.Description
		details.CustomURL = channel.Snippet.CustomUrl
		details.Thumbnail = bestThumbnail(channel.Snippet.Thumbnails)
	}
	if channel.Statistics != nil {
		details.SubscriberCount = channel.Statistics.SubscriberCount
		details.VideoCount = channel.Statistics.VideoCount
		details.ViewCount = channel.Statistics.ViewCount
	}
	return details, nil
}

func convertPlaylistItem(item *youtube.PlaylistItem) dto.PlaylistItem {
	var out dto.PlaylistItem
	if item.ContentDetails != nil {
		out.VideoID = item.ContentDetails.VideoId
		out.PublishedAt = item.ContentDetails.VideoPublishedAt
	}
	if item.Snippet != nil {
		if out.VideoID == "" && item.Snippet.ResourceId != nil {
			out.VideoID = item.Snippet.ResourceId.VideoId
		}
		out.Title = item.Snippet.Title
		out.Description = item.Snippet.Description
		out.Thumbnail = bestThumbnail(item.Snippet.Thumbnails)
		// Private and deleted videos carry no videoPublishedAt
		if out.PublishedAt == "" {
			out.PublishedAt = item.Snippet.PublishedAt
		}
	}
	if item.Status != nil {
		out.PrivacyStatus = item.Status.PrivacyStatus
	}
	return out
}

func convertVideoDetails(video *youtube.Video) dto.VideoDetails {
	details := dto.VideoDetails{ID: video.Id}
	if video.ContentDetails != nil {
		details.Duration = video.ContentDetails.Duration
	}
	if video.Statistics != nil {
		details.ViewCount = strconv.FormatUint(video.Statistics.ViewCount, 10)
		details.LikeCount = strconv.FormatUint(video.Statistics.LikeCount, 10)
	}
	if video.Status != nil {
		details.PrivacyStatus = video.Status.PrivacyStatus
		details.UploadStatus = video.Status.UploadStatus
	}
	return details
}

func bestThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*youtube.Thumbnail{t.Maxres, t.Standard, t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}

// classify maps API failures onto the error taxonomy so that callers can
// tell "try later" (quota) from "never resolves" (not found).
func classify(err error, message string) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == http.StatusTooManyRequests {
			return apperror.Wrap(err, apperror.CodeQuotaExceeded, message)
		}
		for _, item := range gerr.Errors {
			if quotaReasons[item.Reason] {
				return apperror.Wrap(err, apperror.CodeQuotaExceeded, message)
			}
		}
		if gerr.Code == http.StatusNotFound {
			return apperror.Wrap(err, apperror.CodeNotFound, message)
		}
	}
	return apperror.Wrap(err, apperror.CodeUpstream, message)
}
