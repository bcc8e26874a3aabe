package dto

import (
	"time"

	"tombraider-hub/domain/model"
)

// PlaylistItem is one raw entry from the playlist listing endpoint
type PlaylistItem struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Thumbnail is the best available thumbnail URL, empty when none
	Thumbnail   string `json:"thumbnail"`
	PublishedAt string `json:"published_at"`
	// PrivacyStatus as reported by the playlist item itself; used when video
	// details are unavailable.
	PrivacyStatus string `json:"privacy_status,omitempty"`
}

// PlaylistItemPage is one page of a playlist listing
type PlaylistItemPage struct {
	Items         []PlaylistItem `json:"items"`
	NextPageToken string         `json:"next_page_token,omitempty"`
}

// VideoDetails holds the per-video fields fetched in batches
type VideoDetails struct {
	ID            string `json:"id"`
	Duration      string `json:"duration"`
	ViewCount     string `json:"view_count"`
	LikeCount     string `json:"like_count"`
	PrivacyStatus string `json:"privacy_status"`
	UploadStatus  string `json:"upload_status"`
}

// ChannelDetails is the raw channel resource
type ChannelDetails struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	CustomURL       string `json:"custom_url"`
	Thumbnail       string `json:"thumbnail"`
	SubscriberCount uint64 `json:"subscriber_count"`
	VideoCount      uint64 `json:"video_count"`
	ViewCount       uint64 `json:"view_count"`
}

// VideoListResponse is the body of GET /api/videos
type VideoListResponse struct {
	Videos []model.Video `json:"videos"`
	Cached bool          `json:"cached"`
	Count  int           `json:"count"`
}

// ChannelResponse is the body of GET /api/channel
type ChannelResponse struct {
	Channel *model.ChannelInfo `json:"channel"`
	Cached  bool               `json:"cached"`
}

// CategoryGroup lists the categories of one game
type CategoryGroup struct {
	Game       string               `json:"game"`
	Categories []model.PlaylistInfo `json:"categories"`
}

// CacheStats is a point-in-time view of the cache
type CacheStats struct {
	Total   int           `json:"total"`
	Valid   int           `json:"valid"`
	Expired int           `json:"expired"`
	TTL     time.Duration `json:"-"`
}

// CacheStatsResponse is the body of GET /api/cache/stats
type CacheStatsResponse struct {
	CacheStats
	TTLSeconds int64  `json:"ttl"`
	Version    string `json:"version"`
}
