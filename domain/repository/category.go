package repository

import (
	"tombraider-hub/domain/dto"
	"tombraider-hub/domain/model"
)

// ICategoryRegistry resolves category keys to upstream playlists
type ICategoryRegistry interface {
	Resolve(key string) (model.PlaylistInfo, bool)
	IsValid(key string) bool
	Groups() []dto.CategoryGroup
}
