package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"tombraider-hub/domain/apperror"
	"tombraider-hub/domain/dto"
	"tombraider-hub/domain/model"
	"tombraider-hub/domain/repository"
	"tombraider-hub/infrastructure/format"
	"tombraider-hub/infrastructure/logger"
)

const (
	// DetailsBatchSize is the upstream limit on ids per details request.
	DetailsBatchSize = 50
	// maxPlaylistPages bounds pagination against a misbehaving upstream.
	maxPlaylistPages = 200

	statusPublic    = "public"
	statusProcessed = "processed"

	watchURL = "https://www.youtube.com/watch?v="
	embedURL = "https://www.youtube.com/embed/"
)

// PlaylistFetcher collects a whole playlist, enriches it with video details
// and drops entries that are not publicly watchable.
type PlaylistFetcher struct {
	youtube repository.IYouTube
	now     func() time.Time
}

func NewPlaylistFetcher(youtube repository.IYouTube) *PlaylistFetcher {
	return &PlaylistFetcher{youtube: youtube, now: time.Now}
}

// FetchPlaylistItems returns every public, processed video of a playlist in
// playlist order, each video id at most once.
func (f *PlaylistFetcher) FetchPlaylistItems(ctx context.Context, playlistID string) ([]model.Video, error) {
	videos, _, err := f.fetch(ctx, playlistID)
	return videos, err
}

// fetch also reports whether every details batch succeeded. Incomplete
// results carry placeholder durations and counts.
func (f *PlaylistFetcher) fetch(ctx context.Context, playlistID string) ([]model.Video, bool, error) {
	items, err := f.listAll(ctx, playlistID)
	if err != nil {
		return nil, false, err
	}
	items = dedupe(items)

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.VideoID
	}
	details, complete := f.fetchDetails(ctx, playlistID, ids)

	now := f.now()
	videos := make([]model.Video, 0, len(items))
	for _, item := range items {
		d, ok := details[item.VideoID]
		if !visible(item, d, ok) {
			continue
		}
		videos = append(videos, toVideo(item, d, now))
	}
	return videos, complete, nil
}

func (f *PlaylistFetcher) listAll(ctx context.Context, playlistID string) ([]dto.PlaylistItem, error) {
	var items []dto.PlaylistItem
	pageToken := ""
	for page := 0; page < maxPlaylistPages; page++ {
		resp, err := f.youtube.ListPlaylistItems(ctx, playlistID, pageToken)
		if err != nil {
			return nil, listingError(err, playlistID)
		}
		if resp == nil {
			break
		}
		items = append(items, resp.Items...)
		if resp.NextPageToken == "" || resp.NextPageToken == pageToken {
			break
		}
		pageToken = resp.NextPageToken
	}
	return items, nil
}

func listingError(err error, playlistID string) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return fmt.Errorf("failed to list playlist %s: %w", playlistID, err)
	}
	return apperror.Wrap(err, apperror.CodeUpstream, fmt.Sprintf("failed to list playlist %s", playlistID))
}

// dedupe keeps the first occurrence of every video id. Overlapping pages
// happen when the playlist changes while it is being paged through.
func dedupe(items []dto.PlaylistItem) []dto.PlaylistItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]dto.PlaylistItem, 0, len(items))
	for _, item := range items {
		if item.VideoID == "" {
			continue
		}
		if _, dup := seen[item.VideoID]; dup {
			continue
		}
		seen[item.VideoID] = struct{}{}
		out = append(out, item)
	}
	return out
}

// fetchDetails requests details in batches. A failed batch is logged and
// contributes nothing; the rest of the playlist is still served.
func (f *PlaylistFetcher) fetchDetails(ctx context.Context, playlistID string, ids []string) (map[string]dto.VideoDetails, bool) {
	details := make(map[string]dto.VideoDetails, len(ids))
	complete := true
	for start := 0; start < len(ids); start += DetailsBatchSize {
		end := start + DetailsBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch, err := f.youtube.GetVideoDetails(ctx, ids[start:end])
		if err != nil {
			logger.GetLogger().WithFields(log.Fields{
				"playlistId": playlistID,
				"batchStart": start,
				"batchSize":  end - start,
				"error":      err,
			}).Warn("Video details batch failed, continuing without details")
			complete = false
			continue
		}
		for _, d := range batch {
			details[d.ID] = d
		}
	}
	return details, complete
}

// visible applies the publication filter. Without details only the playlist
// item's own privacy status is known.
func visible(item dto.PlaylistItem, d dto.VideoDetails, hasDetails bool) bool {
	if hasDetails {
		return d.PrivacyStatus == statusPublic && d.UploadStatus == statusProcessed
	}
	return item.PrivacyStatus == statusPublic
}

func toVideo(item dto.PlaylistItem, d dto.VideoDetails, now time.Time) model.Video {
	seconds := format.ParseDuration(d.Duration)
	v := model.Video{
		ID:                 item.VideoID,
		Title:              item.Title,
		Description:        item.Description,
		PublishedAt:        item.PublishedAt,
		PublishedAgo:       format.RelativeTime(item.PublishedAt, now),
		Duration:           d.Duration,
		DurationFormatted:  format.FormatDuration(d.Duration),
		ViewCount:          countOrZero(d.ViewCount),
		ViewCountFormatted: format.FormatCount(d.ViewCount),
		LikeCount:          countOrZero(d.LikeCount),
		LikeCountFormatted: format.FormatCount(d.LikeCount),
		URL:                watchURL + item.VideoID,
		EmbedURL:           embedURL + item.VideoID,
		IsShort:            format.IsShort(seconds),
	}
	if item.Thumbnail != "" {
		thumb := item.Thumbnail
		v.Thumbnail = &thumb
	}
	return v
}

func countOrZero(raw string) string {
	if raw == "" {
		return "0"
	}
	return raw
}
