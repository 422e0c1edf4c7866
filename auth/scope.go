package auth

import "strings"

// Scope is a list of access scopes requested during user authorization.
type Scope []string

// String joins the scopes with spaces, the format the token endpoint expects.
func (s Scope) String() string {
	return strings.Join(s, " ")
}

// ParseScope splits a space-separated scope string from a token response.
func ParseScope(s string) Scope {
	if s == "" {
		return nil
	}
	return Scope(strings.Fields(s))
}

// Contains reports whether the scope list includes the given scope.
func (s Scope) Contains(scope string) bool {
	for _, v := range s {
		if v == scope {
			return true
		}
	}
	return false
}

// User access scopes defined by the Web API.
const (
	ScopeUGCImageUpload            = "ugc-image-upload"
	ScopeUserReadPlaybackState     = "user-read-playback-state"
	ScopeUserModifyPlaybackState   = "user-modify-playback-state"
	ScopeUserReadCurrentlyPlaying  = "user-read-currently-playing"
	ScopeStreaming                 = "streaming"
	ScopeAppRemoteControl          = "app-remote-control"
	ScopeUserReadEmail             = "user-read-email"
	ScopeUserReadPrivate           = "user-read-private"
	ScopePlaylistReadCollaborative = "playlist-read-collaborative"
	ScopePlaylistModifyPublic      = "playlist-modify-public"
	ScopePlaylistReadPrivate       = "playlist-read-private"
	ScopePlaylistModifyPrivate     = "playlist-modify-private"
	ScopeUserLibraryModify         = "user-library-modify"
	ScopeUserLibraryRead           = "user-library-read"
	ScopeUserTopRead               = "user-top-read"
	ScopeUserReadRecentlyPlayed    = "user-read-recently-played"
	ScopeUserReadPlaybackPosition  = "user-read-playback-position"
	ScopeUserFollowRead            = "user-follow-read"
	ScopeUserFollowModify          = "user-follow-modify"
)

// AllScopes lists every user scope. Useful for development tokens.
var AllScopes = Scope{
	ScopeUGCImageUpload,
	ScopeUserReadPlaybackState,
	ScopeUserModifyPlaybackState,
	ScopeUserReadCurrentlyPlaying,
	ScopeStreaming,
	ScopeAppRemoteControl,
	ScopeUserReadEmail,
	ScopeUserReadPrivate,
	ScopePlaylistReadCollaborative,
	ScopePlaylistModifyPublic,
	ScopePlaylistReadPrivate,
	ScopePlaylistModifyPrivate,
	ScopeUserLibraryModify,
	ScopeUserLibraryRead,
	ScopeUserTopRead,
	ScopeUserReadRecentlyPlayed,
	ScopeUserReadPlaybackPosition,
	ScopeUserFollowRead,
	ScopeUserFollowModify,
}
