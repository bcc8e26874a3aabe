package cache

import "strings"

const (
	NamespacePlaylist = "playlist"
	NamespaceChannel  = "channel"
)

// Key builds "<version>:<namespace>:<id>". Entries stored under an older
// version become unreachable once the version changes and age out normally.
func Key(version, namespace, id string) string {
	return strings.Join([]string{version, namespace, id}, ":")
}

func PlaylistKey(version, playlistID string) string {
	return Key(version, NamespacePlaylist, playlistID)
}

func ChannelKey(version, channelID string) string {
	return Key(version, NamespaceChannel, channelID)
}
