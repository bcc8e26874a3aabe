package usecase

import (
	"context"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"tombraider-hub/domain/apperror"
	"tombraider-hub/domain/dto"
	"tombraider-hub/domain/model"
	"tombraider-hub/domain/repository"
	"tombraider-hub/infrastructure/cache"
	"tombraider-hub/infrastructure/format"
	"tombraider-hub/infrastructure/logger"
)

// IVideoUseCase defines the video aggregation operations served over HTTP
type IVideoUseCase interface {
	// GetCategoryVideos returns the videos of a category, from cache when possible
	GetCategoryVideos(ctx context.Context, category string) (*dto.VideoListResponse, error)
	ListCategories() []dto.CategoryGroup
	GetChannelInfo(ctx context.Context) (*dto.ChannelResponse, error)

	// Cache administration
	CacheStats() dto.CacheStatsResponse
	ClearCache()
	InvalidateCategory(category string) error
}

// VideoOptions carries the settings the use case needs from configuration
type VideoOptions struct {
	CacheVersion string
	ChannelID    string
}

// VideoUseCase implements IVideoUseCase
type VideoUseCase struct {
	registry repository.ICategoryRegistry
	cache    repository.ICache
	youtube  repository.IYouTube // nil when no API key is configured
	fetcher  *PlaylistFetcher
	options  VideoOptions
	flights  singleflight.Group
}

// NewVideoUseCase creates a new video use case. youtube may be nil; cached
// data is still served, misses fail with a configuration error.
func NewVideoUseCase(registry repository.ICategoryRegistry, c repository.ICache, youtube repository.IYouTube, options VideoOptions) *VideoUseCase {
	u := &VideoUseCase{
		registry: registry,
		cache:    c,
		youtube:  youtube,
		options:  options,
	}
	if youtube != nil {
		u.fetcher = NewPlaylistFetcher(youtube)
	}
	return u
}

// GetCategoryVideos validates the category, then serves it cache-aside
func (u *VideoUseCase) GetCategoryVideos(ctx context.Context, category string) (*dto.VideoListResponse, error) {
	info, err := u.resolve(category)
	if err != nil {
		return nil, err
	}
	key := cache.PlaylistKey(u.options.CacheVersion, info.PlaylistID)

	if v, ok := u.cache.Get(key); ok {
		if videos, ok := v.([]model.Video); ok {
			return &dto.VideoListResponse{Videos: videos, Cached: true, Count: len(videos)}, nil
		}
	}

	if u.youtube == nil {
		return nil, apperror.New(apperror.CodeConfiguration, "YouTube API key is not configured")
	}

	// Concurrent misses for one playlist share a single upstream fetch. The
	// fetch is detached from the first caller's cancellation so that one
	// disconnecting client does not fail everyone waiting on it.
	v, err, _ := u.flights.Do(key, func() (interface{}, error) {
		videos, complete, err := u.fetcher.fetch(context.WithoutCancel(ctx), info.PlaylistID)
		if err != nil {
			return nil, err
		}
		entry := logger.GetLogger().WithFields(log.Fields{
			"category":   category,
			"playlistId": info.PlaylistID,
			"count":      len(videos),
		})
		// Partial results are served but never cached.
		if !complete {
			entry.Warn("Playlist fetched with missing video details, not cached")
			return videos, nil
		}
		u.cache.Set(key, videos)
		entry.Info("Playlist fetched and cached")
		return videos, nil
	})
	if err != nil {
		return nil, err
	}
	videos := v.([]model.Video)
	return &dto.VideoListResponse{Videos: videos, Cached: false, Count: len(videos)}, nil
}

func (u *VideoUseCase) resolve(category string) (model.PlaylistInfo, error) {
	if category == "" {
		return model.PlaylistInfo{}, apperror.New(apperror.CodeValidation, "category is required")
	}
	info, ok := u.registry.Resolve(category)
	if !ok {
		return model.PlaylistInfo{}, apperror.New(apperror.CodeValidation, fmt.Sprintf("invalid category: %s", category))
	}
	if info.PlaylistID == "" {
		return model.PlaylistInfo{}, apperror.New(apperror.CodeNotFound, fmt.Sprintf("category %s has no playlist", category))
	}
	return info, nil
}

// ListCategories returns the registry grouped by game
func (u *VideoUseCase) ListCategories() []dto.CategoryGroup {
	return u.registry.Groups()
}

// GetChannelInfo returns the configured channel's profile (cache-aside)
func (u *VideoUseCase) GetChannelInfo(ctx context.Context) (*dto.ChannelResponse, error) {
	if u.options.ChannelID == "" {
		return nil, apperror.New(apperror.CodeConfiguration, "YouTube channel ID is not configured")
	}
	key := cache.ChannelKey(u.options.CacheVersion, u.options.ChannelID)

	if v, ok := u.cache.Get(key); ok {
		if channel, ok := v.(*model.ChannelInfo); ok {
			return &dto.ChannelResponse{Channel: channel, Cached: true}, nil
		}
	}
	if u.youtube == nil {
		return nil, apperror.New(apperror.CodeConfiguration, "YouTube API key is not configured")
	}

	v, err, _ := u.flights.Do(key, func() (interface{}, error) {
		details, err := u.youtube.GetChannelDetails(context.WithoutCancel(ctx), u.options.ChannelID)
		if err != nil {
			return nil, listingError(err, u.options.ChannelID)
		}
		channel := toChannelInfo(details)
		u.cache.Set(key, channel)
		return channel, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ChannelResponse{Channel: v.(*model.ChannelInfo), Cached: false}, nil
}

func toChannelInfo(d *dto.ChannelDetails) *model.ChannelInfo {
	channel := &model.ChannelInfo{
		ID:                       d.ID,
		Title:                    d.Title,
		Description:              d.Description,
		CustomURL:                d.CustomURL,
		SubscriberCount:          strconv.FormatUint(d.SubscriberCount, 10),
		SubscriberCountFormatted: format.FormatUint(d.SubscriberCount),
		VideoCount:               strconv.FormatUint(d.VideoCount, 10),
		ViewCount:                strconv.FormatUint(d.ViewCount, 10),
		ViewCountFormatted:       format.FormatUint(d.ViewCount),
		URL:                      "https://www.youtube.com/channel/" + d.ID,
	}
	if d.CustomURL != "" {
		channel.URL = "https://www.youtube.com/" + d.CustomURL
	}
	if d.Thumbnail != "" {
		thumb := d.Thumbnail
		channel.Thumbnail = &thumb
	}
	return channel
}

// CacheStats reports the cache contents
func (u *VideoUseCase) CacheStats() dto.CacheStatsResponse {
	stats := u.cache.Stats()
	return dto.CacheStatsResponse{
		CacheStats: stats,
		TTLSeconds: int64(stats.TTL.Seconds()),
		Version:    u.options.CacheVersion,
	}
}

// ClearCache drops every cached entry
func (u *VideoUseCase) ClearCache() {
	u.cache.Clear()
	logger.GetLogger().Info("Cache cleared")
}

// InvalidateCategory drops the cached videos of one category
func (u *VideoUseCase) InvalidateCategory(category string) error {
	info, err := u.resolve(category)
	if err != nil {
		return err
	}
	u.cache.Delete(cache.PlaylistKey(u.options.CacheVersion, info.PlaylistID))
	return nil
}
