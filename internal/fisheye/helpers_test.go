package fisheye

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func testContainer(o Orientation, ids ...string) *Container {
	c := &Container{ID: "dock", Orientation: o}
	for _, id := range ids {
		c.Elements = append(c.Elements, Element{
			ID:        id,
			Label:     "label-" + id,
			Icon:      id,
			IconLarge: id + "-large",
			IconSmall: id + "-small",
		})
	}
	return c
}

func newTestMenu(t *testing.T, c *Container, kv Store, opts ...Option) (*Menu, *ManualScheduler) {
	t.Helper()
	sched := NewManualScheduler()
	m, err := New(c, kv, append([]Option{WithScheduler(sched)}, opts...)...)
	require.NoError(t, err)
	return m, sched
}

func sizes(m *Menu) []float64 {
	out := make([]float64, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it.Size)
	}
	return out
}

func item(t *testing.T, m *Menu, id string) Item {
	t.Helper()
	it, ok := m.Item(id)
	require.True(t, ok, "item %q not found", id)
	return it
}

// failingStore fails every operation.
type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) {
	return "", false, errors.New("boom")
}

func (failingStore) Set(string, string, time.Duration) error {
	return errors.New("boom")
}

// mapStore is a minimal Store for tests that only need Get and Set.
type mapStore map[string]string

func (s mapStore) Get(key string) (string, bool, error) {
	v, ok := s[key]
	return v, ok, nil
}

func (s mapStore) Set(key, value string, _ time.Duration) error {
	s[key] = value
	return nil
}

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("i%d", i)
	}
	return out
}
