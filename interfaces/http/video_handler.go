package http

import (
	"errors"
	"net/http"

	"tombraider-hub/domain/apperror"
	"tombraider-hub/infrastructure/logger"
	"tombraider-hub/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// IVideoHandler defines the interface for video HTTP handlers
type IVideoHandler interface {
	GetVideos(ctx *gin.Context)
	GetCategories(ctx *gin.Context)
	GetChannel(ctx *gin.Context)

	// Cache administration
	GetCacheStats(ctx *gin.Context)
	ClearCache(ctx *gin.Context)
	InvalidateCategory(ctx *gin.Context)
}

// VideoHandler implements the video HTTP handlers
type VideoHandler struct {
	videoUseCase usecase.IVideoUseCase
}

// NewVideoHandler creates a new video handler instance
func NewVideoHandler(videoUseCase usecase.IVideoUseCase) IVideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
	}
}

// GetVideos handles GET /api/videos?category=<key>
func (h *VideoHandler) GetVideos(ctx *gin.Context) {
	category := ctx.Query("category")

	response, err := h.videoUseCase.GetCategoryVideos(ctx.Request.Context(), category)
	if err != nil {
		abortWithError(ctx, err, log.Fields{"category": category})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetCategories handles GET /api/categories
func (h *VideoHandler) GetCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"groups": h.videoUseCase.ListCategories()})
}

// GetChannel handles GET /api/channel
func (h *VideoHandler) GetChannel(ctx *gin.Context) {
	response, err := h.videoUseCase.GetChannelInfo(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err, nil)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetCacheStats handles GET /api/cache/stats
func (h *VideoHandler) GetCacheStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.videoUseCase.CacheStats())
}

// ClearCache handles POST /api/cache/clear
func (h *VideoHandler) ClearCache(ctx *gin.Context) {
	h.videoUseCase.ClearCache()
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// InvalidateCategory handles DELETE /api/cache/categories/:key
func (h *VideoHandler) InvalidateCategory(ctx *gin.Context) {
	category := ctx.Param("key")
	if err := h.videoUseCase.InvalidateCategory(category); err != nil {
		abortWithError(ctx, err, log.Fields{"category": category})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "category": category})
}

// abortWithError writes the {"error", "message"} body for err. Server-side
// failures are logged; client errors are not.
func abortWithError(ctx *gin.Context, err error, fields log.Fields) {
	status := apperror.HTTPStatus(err)
	code := apperror.CodeOf(err)
	message := err.Error()

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	if status >= http.StatusInternalServerError || status == http.StatusTooManyRequests {
		logger.GetLogger().WithFields(fields).WithFields(log.Fields{
			"path":  ctx.FullPath(),
			"code":  code,
			"error": err,
		}).Error("Request failed")
	}
	if code == apperror.CodeInternal {
		message = "internal server error"
	}
	ctx.AbortWithStatusJSON(status, gin.H{"error": code, "message": message})
}
