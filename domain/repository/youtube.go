package repository

import (
	"context"

	"tombraider-hub/domain/dto"
)

// IYouTube is the upstream video-listing provider
type IYouTube interface {
	// ListPlaylistItems returns one page of a playlist; pageToken is empty for the first page.
	ListPlaylistItems(ctx context.Context, playlistID, pageToken string) (*dto.PlaylistItemPage, error)
	// GetVideoDetails returns details for up to MaxIDsPerRequest ids.
	GetVideoDetails(ctx context.Context, ids []string) ([]dto.VideoDetails, error)
	GetChannelDetails(ctx context.Context, channelID string) (*dto.ChannelDetails, error)
}
