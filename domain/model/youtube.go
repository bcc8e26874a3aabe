package model

// Video is a playlist entry enriched with details, ready for the front-end.
// It is derived on every upstream fetch and never persisted.
type Video struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
	// PublishedAt is the raw RFC3339 timestamp; it sorts lexically.
	PublishedAt        string `json:"publishedAt"`
	PublishedAgo       string `json:"publishedAgo"`
	Duration           string `json:"duration"`
	DurationFormatted  string `json:"durationFormatted"`
	ViewCount          string `json:"viewCount"`
	ViewCountFormatted string `json:"viewCountFormatted"`
	LikeCount          string `json:"likeCount"`
	LikeCountFormatted string `json:"likeCountFormatted"`
	URL                string `json:"url"`
	EmbedURL           string `json:"embedUrl"`
	IsShort            bool   `json:"isShort"`
}

// ChannelInfo represents the fan channel's public profile
type ChannelInfo struct {
	ID                       string  `json:"id"`
	Title                    string  `json:"title"`
	Description              string  `json:"description"`
	CustomURL                string  `json:"customUrl"`
	Thumbnail                *string `json:"thumbnail"`
	SubscriberCount          string  `json:"subscriberCount"`
	SubscriberCountFormatted string  `json:"subscriberCountFormatted"`
	VideoCount               string  `json:"videoCount"`
	ViewCount                string  `json:"viewCount"`
	ViewCountFormatted       string  `json:"viewCountFormatted"`
	URL                      string  `json:"url"`
}

// PlaylistInfo describes one browsable video category
type PlaylistInfo struct {
	Key         string `json:"key"`
	PlaylistID  string `json:"playlistId"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Game        string `json:"game"`
}
