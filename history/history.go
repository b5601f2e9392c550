// Package history keeps the registry of recently resolved live rooms.
//
// Rooms are ranked by how often they were resolved and feed the room prompt suggestions, the
// --room-id shell completion and the history command.
package history

import (
	"strings"
	"time"

	"github.com/bililink-cli/bililink/filesystem"
	"github.com/bililink-cli/bililink/key"
	"github.com/bililink-cli/bililink/live"
	"github.com/bililink-cli/bililink/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Room is a saved room with its usage statistics.
type Room struct {
	ID       live.RoomID `json:"id"`
	Count    int         `json:"count"`
	LastUsed time.Time   `json:"last_used"`
}

var cacher = gache.New[map[string]*Room](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// now is replaced in tests.
var now = time.Now

// Get returns every saved room keyed by its id.
func Get() (map[string]*Room, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Room), nil
	}
	return cached, nil
}

// Remember records a successful lookup of id. It is a no-op when history.remember_rooms is off.
func Remember(id live.RoomID) error {
	if !viper.GetBool(key.HistoryRememberRooms) {
		return nil
	}

	saved, err := Get()
	if err != nil {
		// a corrupt registry is replaced rather than blocking lookups
		saved = make(map[string]*Room)
	}

	record, ok := saved[id.String()]
	if !ok {
		record = &Room{ID: id}
		saved[id.String()] = record
	}

	record.Count++
	record.LastUsed = now()

	return cacher.Set(saved)
}

// Remove drops id from the registry.
func Remove(id live.RoomID) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, id.String())
	return cacher.Set(saved)
}

// List returns the saved rooms, most used first, ties broken by recency.
func List() ([]*Room, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	rooms := lo.Values(saved)
	slices.SortFunc(rooms, func(a, b *Room) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return b.LastUsed.Compare(a.LastUsed)
	})

	return rooms, nil
}

// SuggestMany returns saved room ids fuzzily matching partial, in List order.
// It returns nothing when history.suggest_rooms is off.
func SuggestMany(partial string) []string {
	if !viper.GetBool(key.HistorySuggestRooms) {
		return []string{}
	}

	rooms, err := List()
	if err != nil {
		return []string{}
	}

	partial = strings.TrimSpace(partial)
	ids := lo.Map(rooms, func(r *Room, _ int) string {
		return r.ID.String()
	})

	return lo.Filter(ids, func(id string, _ int) bool {
		return fuzzy.Match(partial, id)
	})
}
