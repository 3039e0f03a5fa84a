package fisheye

import (
	"strconv"
	"time"
)

// Store is the key-value collaborator a Menu persists its active item and
// last click offset to.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string, ttl time.Duration) error
}

// Key prefixes; the container id is appended.
const (
	ActiveKeyPrefix = "fisheye_menu_active_item_"
	OffsetKeyPrefix = "fisheye_menu_offset_"
)

// ActiveKey returns the store key holding the active item id of a container.
func ActiveKey(containerID string) string {
	return ActiveKeyPrefix + containerID
}

// OffsetKey returns the store key holding the last click offset of a
// container.
func OffsetKey(containerID string) string {
	return OffsetKeyPrefix + containerID
}

// FormatOffset renders an offset the way it is persisted.
func FormatOffset(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseOffset parses a persisted offset.
func ParseOffset(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

type nopStore struct{}

func (nopStore) Get(string) (string, bool, error)        { return "", false, nil }
func (nopStore) Set(string, string, time.Duration) error { return nil }

func (m *Menu) persist(key, value string) {
	if err := m.store.Set(key, value, 0); err != nil {
		logError(err, "Failed to persist %s for menu %q", key, m.container.ID)
	}
}
