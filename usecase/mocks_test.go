package usecase_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"tombraider-hub/domain/dto"
)

var mockCtx = mock.Anything

// MockYouTube is a testify mock of repository.IYouTube
type MockYouTube struct {
	mock.Mock
}

func (m *MockYouTube) ListPlaylistItems(ctx context.Context, playlistID, pageToken string) (*dto.PlaylistItemPage, error) {
	args := m.Called(ctx, playlistID, pageToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PlaylistItemPage), args.Error(1)
}

func (m *MockYouTube) GetVideoDetails(ctx context.Context, ids []string) ([]dto.VideoDetails, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.VideoDetails), args.Error(1)
}

func (m *MockYouTube) GetChannelDetails(ctx context.Context, channelID string) (*dto.ChannelDetails, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChannelDetails), args.Error(1)
}

// fakeYouTube serves a playlist split into pages and answers detail batches
// from a map. It records every call.
type fakeYouTube struct {
	mu sync.Mutex

	pages    []dto.PlaylistItemPage // page i is served for token "" (i=0) or "page-i"
	details  map[string]dto.VideoDetails
	listErr  error
	failCall map[int]error // details call index -> error

	listCalls    int
	detailsCalls int
	batchSizes   []int
}

func newFakeYouTube(pages ...[]dto.PlaylistItem) *fakeYouTube {
	f := &fakeYouTube{details: map[string]dto.VideoDetails{}, failCall: map[int]error{}}
	for i, items := range pages {
		page := dto.PlaylistItemPage{Items: items}
		if i < len(pages)-1 {
			page.NextPageToken = fmt.Sprintf("page-%d", i+1)
		}
		f.pages = append(f.pages, page)
	}
	return f
}

func (f *fakeYouTube) ListPlaylistItems(ctx context.Context, playlistID, pageToken string) (*dto.PlaylistItemPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	idx := 0
	if pageToken != "" {
		if _, err := fmt.Sscanf(pageToken, "page-%d", &idx); err != nil {
			return nil, fmt.Errorf("unexpected token %q", pageToken)
		}
	}
	if idx >= len(f.pages) {
		return &dto.PlaylistItemPage{}, nil
	}
	page := f.pages[idx]
	return &page, nil
}

func (f *fakeYouTube) GetVideoDetails(ctx context.Context, ids []string) ([]dto.VideoDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	call := f.detailsCalls
	f.detailsCalls++
	f.batchSizes = append(f.batchSizes, len(ids))
	if err := f.failCall[call]; err != nil {
		return nil, err
	}
	out := make([]dto.VideoDetails, 0, len(ids))
	for _, id := range ids {
		if d, ok := f.details[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeYouTube) GetChannelDetails(ctx context.Context, channelID string) (*dto.ChannelDetails, error) {
	return nil, fmt.Errorf("not used")
}

// setPublic registers public, processed details for ids.
func (f *fakeYouTube) setPublic(duration string, ids ...string) {
	for _, id := range ids {
		f.details[id] = dto.VideoDetails{
			ID:            id,
			Duration:      duration,
			ViewCount:     "1500",
			LikeCount:     "20",
			PrivacyStatus: "public",
			UploadStatus:  "processed",
		}
	}
}

func items(prefix string, n int) []dto.PlaylistItem {
	out := make([]dto.PlaylistItem, n)
	for i := range out {
		out[i] = dto.PlaylistItem{
			VideoID:       fmt.Sprintf("%s-%03d", prefix, i),
			Title:         fmt.Sprintf("%s video %d", prefix, i),
			PublishedAt:   "2024-01-01T00:00:00Z",
			PrivacyStatus: "public",
		}
	}
	return out
}

func ids(list []dto.PlaylistItem) []string {
	out := make([]string, len(list))
	for i, it := range list {
		out[i] = it.VideoID
	}
	return out
}
