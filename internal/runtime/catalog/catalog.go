// Package catalog holds the symbolic channel, event, and entity names used on
// the wire. These are configuration data for callers, not behavior: any
// string is a valid channel, the catalogs just keep producers and consumers
// from drifting apart on spelling.
package catalog

import "maps"

// Channel names.
const (
	// ChannelAll is the reserved broadcast channel. Every publish on any
	// other channel is duplicated onto it.
	ChannelAll = "all"

	ChannelSystem   = "system"
	ChannelUsers    = "users"
	ChannelSessions = "sessions"
	ChannelChat     = "chat"
	ChannelGames    = "games"
)

// Event names.
const (
	EventCreated  = "created"
	EventUpdated  = "updated"
	EventDeleted  = "deleted"
	EventJoined   = "joined"
	EventLeft     = "left"
	EventMessage  = "message"
	EventStarted  = "started"
	EventFinished = "finished"
	EventError    = "error"
)

// Entity names.
const (
	EntityUser    = "user"
	EntitySession = "session"
	EntityMessage = "message"
	EntityGame    = "game"
	EntitySystem  = "system"
)

var channels = map[string]string{
	"All":      ChannelAll,
	"System":   ChannelSystem,
	"Users":    ChannelUsers,
	"Sessions": ChannelSessions,
	"Chat":     ChannelChat,
	"Games":    ChannelGames,
}

var events = map[string]string{
	"Created":  EventCreated,
	"Updated":  EventUpdated,
	"Deleted":  EventDeleted,
	"Joined":   EventJoined,
	"Left":     EventLeft,
	"Message":  EventMessage,
	"Started":  EventStarted,
	"Finished": EventFinished,
	"Error":    EventError,
}

var entities = map[string]string{
	"User":    EntityUser,
	"Session": EntitySession,
	"Message": EntityMessage,
	"Game":    EntityGame,
	"System":  EntitySystem,
}

// Channels returns a copy of the symbolic-name to channel-name mapping.
func Channels() map[string]string {
	return maps.Clone(channels)
}

// Events returns a copy of the symbolic-name to event-name mapping.
func Events() map[string]string {
	return maps.Clone(events)
}

// Entities returns a copy of the symbolic-name to entity-name mapping.
func Entities() map[string]string {
	return maps.Clone(entities)
}
