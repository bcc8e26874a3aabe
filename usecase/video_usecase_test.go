package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tombraider-hub/domain/apperror"
	"tombraider-hub/domain/catalog"
	"tombraider-hub/domain/dto"
	"tombraider-hub/domain/model"
	"tombraider-hub/domain/repository"
	"tombraider-hub/infrastructure/cache"
	"tombraider-hub/usecase"
)

const shortsPlaylist = "PLt6e2Y9Wm2dJ9kL8zX7cV6bN5mQ4wE3rT"

var options = usecase.VideoOptions{CacheVersion: "v3", ChannelID: "UC1"}

func newUseCase(yt repository.IYouTube, opts ...cache.Option) (*usecase.VideoUseCase, *cache.MemoryCache) {
	c := cache.NewMemoryCache(24*time.Hour, opts...)
	return usecase.NewVideoUseCase(catalog.MustDefault(), c, yt, options), c
}

func TestGetCategoryVideos_InvalidCategory(t *testing.T) {
	for _, category := range []string{"", "doesnotexist", "Shorts", "TR1"} {
		t.Run(category, func(t *testing.T) {
			yt := new(MockYouTube)
			u, _ := newUseCase(yt)

			resp, err := u.GetCategoryVideos(context.Background(), category)

			assert.Nil(t, resp)
			assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
			yt.AssertNotCalled(t, "ListPlaylistItems", mock.Anything, mock.Anything, mock.Anything)
			yt.AssertNotCalled(t, "GetVideoDetails", mock.Anything, mock.Anything)
		})
	}
}

func TestGetCategoryVideos_CategoryWithoutPlaylist(t *testing.T) {
	yt := new(MockYouTube)
	u, _ := newUseCase(yt)

	_, err := u.GetCategoryVideos(context.Background(), "next")

	assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))
	yt.AssertNotCalled(t, "ListPlaylistItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetCategoryVideos_ShortsFetchThenCache(t *testing.T) {
	yt := new(MockYouTube)
	page := &dto.PlaylistItemPage{Items: items("s", 2)}
	yt.On("ListPlaylistItems", mockCtx, shortsPlaylist, "").Return(page, nil).Once()
	yt.On("GetVideoDetails", mockCtx, []string{"s-000", "s-001"}).Return([]dto.VideoDetails{
		{ID: "s-000", Duration: "PT45S", ViewCount: "10", PrivacyStatus: "public", UploadStatus: "processed"},
		{ID: "s-001", Duration: "PT2M", ViewCount: "20", PrivacyStatus: "public", UploadStatus: "processed"},
	}, nil).Once()
	u, c := newUseCase(yt)

	first, err := u.GetCategoryVideos(context.Background(), "shorts")
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 2, first.Count)
	assert.True(t, first.Videos[0].IsShort)
	assert.False(t, first.Videos[1].IsShort)
	assert.True(t, c.Has("v3:playlist:"+shortsPlaylist))

	second, err := u.GetCategoryVideos(context.Background(), "shorts")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Videos, second.Videos)
	yt.AssertExpectations(t)
}

func TestGetCategoryVideos_ServesCacheWithoutCredentials(t *testing.T) {
	u, c := newUseCase(nil)

	_, err := u.GetCategoryVideos(context.Background(), "tr1")
	assert.Equal(t, apperror.CodeConfiguration, apperror.CodeOf(err))

	info, ok := catalog.MustDefault().Resolve("tr1")
	require.True(t, ok)
	c.Set(cache.PlaylistKey("v3", info.PlaylistID), []model.Video{{ID: "abc"}})

	resp, err := u.GetCategoryVideos(context.Background(), "tr1")
	require.NoError(t, err)
	assert.True(t, resp.Cached)
	assert.Equal(t, 1, resp.Count)
}

func TestGetCategoryVideos_RefetchesAfterExpiry(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		mu.Lock()
		now = now.Add(d)
		mu.Unlock()
	}

	yt := newFakeYouTube(items("v", 3))
	yt.setPublic("PT10M", "v-000", "v-001", "v-002")
	u, _ := newUseCase(yt, cache.WithClock(clock))

	resp, err := u.GetCategoryVideos(context.Background(), "tr2")
	require.NoError(t, err)
	assert.False(t, resp.Cached)

	advance(23*time.Hour + 59*time.Minute)
	resp, err = u.GetCategoryVideos(context.Background(), "tr2")
	require.NoError(t, err)
	assert.True(t, resp.Cached)
	assert.Equal(t, 1, yt.listCalls)

	advance(2 * time.Minute)
	stats := u.CacheStats()
	assert.GreaterOrEqual(t, stats.Expired, 1)

	resp, err = u.GetCategoryVideos(context.Background(), "tr2")
	require.NoError(t, err)
	assert.False(t, resp.Cached)
	assert.Equal(t, 2, yt.listCalls)
}

func TestGetCategoryVideos_UpstreamErrorsKeepCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"quota", apperror.New(apperror.CodeQuotaExceeded, "quota"), apperror.CodeQuotaExceeded},
		{"not_found", apperror.New(apperror.CodeNotFound, "gone"), apperror.CodeNotFound},
		{"network", errors.New("dial tcp: timeout"), apperror.CodeUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yt := newFakeYouTube(items("v", 1))
			yt.listErr = tt.err
			u, c := newUseCase(yt)

			_, err := u.GetCategoryVideos(context.Background(), "tr3")

			assert.Equal(t, tt.code, apperror.CodeOf(err))
			assert.Equal(t, 0, c.Stats().Total, "failures are not cached")
		})
	}
}

func TestGetCategoryVideos_IncompleteDetailsAreNotCached(t *testing.T) {
	yt := newFakeYouTube(items("v", 3))
	yt.setPublic("PT4M", "v-000", "v-001", "v-002")
	yt.failCall[0] = errors.New("backend error")
	u, c := newUseCase(yt)
	info, ok := catalog.MustDefault().Resolve("tr5")
	require.True(t, ok)
	key := cache.PlaylistKey("v3", info.PlaylistID)

	degraded, err := u.GetCategoryVideos(context.Background(), "tr5")
	require.NoError(t, err)
	assert.False(t, degraded.Cached)
	require.Equal(t, 3, degraded.Count)
	assert.Equal(t, "0:00", degraded.Videos[0].DurationFormatted)
	assert.False(t, c.Has(key))

	retried, err := u.GetCategoryVideos(context.Background(), "tr5")
	require.NoError(t, err)
	assert.False(t, retried.Cached)
	assert.Equal(t, "4:00", retried.Videos[0].DurationFormatted)
	assert.Equal(t, 2, yt.listCalls)
	assert.True(t, c.Has(key))

	cached, err := u.GetCategoryVideos(context.Background(), "tr5")
	require.NoError(t, err)
	assert.True(t, cached.Cached)
	assert.Equal(t, 2, yt.listCalls)
}

// blockingYouTube holds every listing call until release is closed
type blockingYouTube struct {
	*fakeYouTube
	release chan struct{}
}

func (b *blockingYouTube) ListPlaylistItems(ctx context.Context, playlistID, pageToken string) (*dto.PlaylistItemPage, error) {
	<-b.release
	return b.fakeYouTube.ListPlaylistItems(ctx, playlistID, pageToken)
}

func TestGetCategoryVideos_ConcurrentMissesShareOneFetch(t *testing.T) {
	fake := newFakeYouTube(items("v", 5))
	fake.setPublic("PT3M", "v-000", "v-001", "v-002", "v-003", "v-004")
	yt := &blockingYouTube{fakeYouTube: fake, release: make(chan struct{})}
	u, _ := newUseCase(yt)

	const callers = 8
	var wg sync.WaitGroup
	results := make([]*dto.VideoListResponse, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = u.GetCategoryVideos(context.Background(), "tr4")
		}(i)
	}
	time.Sleep(100 * time.Millisecond)
	close(yt.release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, 5, results[i].Count)
	}
	assert.Equal(t, 1, fake.listCalls)
	assert.Equal(t, 1, fake.detailsCalls)
}

func TestGetChannelInfo(t *testing.T) {
	yt := new(MockYouTube)
	yt.On("GetChannelDetails", mockCtx, "UC1").Return(&dto.ChannelDetails{
		ID:              "UC1",
		Title:           "Tomb Raider Hub",
		CustomURL:       "@tombraiderhub",
		Thumbnail:       "https://yt3.ggpht.com/avatar.jpg",
		SubscriberCount: 125000,
		VideoCount:      842,
		ViewCount:       31400000,
	}, nil).Once()
	u, _ := newUseCase(yt)

	first, err := u.GetChannelInfo(context.Background())
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, "Tomb Raider Hub", first.Channel.Title)
	assert.Equal(t, "125000", first.Channel.SubscriberCount)
	assert.Equal(t, "125K", first.Channel.SubscriberCountFormatted)
	assert.Equal(t, "842", first.Channel.VideoCount)
	assert.Equal(t, "31.4M", first.Channel.ViewCountFormatted)
	assert.Equal(t, "https://www.youtube.com/@tombraiderhub", first.Channel.URL)
	require.NotNil(t, first.Channel.Thumbnail)

	second, err := u.GetChannelInfo(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Cached)
	yt.AssertExpectations(t)
}

func TestGetChannelInfo_NotConfigured(t *testing.T) {
	c := cache.NewMemoryCache(time.Hour)
	u := usecase.NewVideoUseCase(catalog.MustDefault(), c, new(MockYouTube), usecase.VideoOptions{CacheVersion: "v3"})

	_, err := u.GetChannelInfo(context.Background())

	assert.Equal(t, apperror.CodeConfiguration, apperror.CodeOf(err))
}

func TestListCategories(t *testing.T) {
	u, _ := newUseCase(nil)

	groups := u.ListCategories()

	require.NotEmpty(t, groups)
	var keys []string
	for _, g := range groups {
		for _, c := range g.Categories {
			assert.Equal(t, g.Game, c.Game)
			keys = append(keys, c.Key)
		}
	}
	assert.Contains(t, keys, "shorts")
	assert.Contains(t, keys, "tr1")
}

func TestCacheAdministration(t *testing.T) {
	u, c := newUseCase(nil)
	registry := catalog.MustDefault()
	tr1, _ := registry.Resolve("tr1")
	tr2, _ := registry.Resolve("tr2")
	c.Set(cache.PlaylistKey("v3", tr1.PlaylistID), []model.Video{})
	c.Set(cache.PlaylistKey("v3", tr2.PlaylistID), []model.Video{})

	stats := u.CacheStats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.Valid)
	assert.Equal(t, int64(86400), stats.TTLSeconds)
	assert.Equal(t, "v3", stats.Version)

	require.NoError(t, u.InvalidateCategory("tr1"))
	assert.False(t, c.Has(cache.PlaylistKey("v3", tr1.PlaylistID)))
	assert.True(t, c.Has(cache.PlaylistKey("v3", tr2.PlaylistID)))

	err := u.InvalidateCategory("doesnotexist")
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))

	u.ClearCache()
	assert.Equal(t, 0, u.CacheStats().Total)
}
