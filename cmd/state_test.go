package cmd

import (
	"bytes"
	"testing"

	"fisheye/internal/fisheye"
	"fisheye/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *store.Memory {
	t.Helper()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(fisheye.ActiveKey("main"), "mail", 0))
	require.NoError(t, kv.Set(fisheye.OffsetKey("main"), "24", 0))
	require.NoError(t, kv.Set(fisheye.ActiveKey("side"), "x", 0))
	require.NoError(t, kv.Set("unrelated", "v", 0))
	return kv
}

func TestShowState(t *testing.T) {
	kv := seededStore(t)

	var buf bytes.Buffer
	require.NoError(t, showState(&buf, kv, ""))
	assert.Equal(t,
		"fisheye_menu_active_item_main=mail\n"+
			"fisheye_menu_active_item_side=x\n"+
			"fisheye_menu_offset_main=24\n",
		buf.String())

	buf.Reset()
	require.NoError(t, showState(&buf, kv, "side"))
	assert.Equal(t, "fisheye_menu_active_item_side=x\n", buf.String())

	buf.Reset()
	require.NoError(t, showState(&buf, kv, "nope"))
	assert.Equal(t, "no state stored\n", buf.String())
}

func TestClearState(t *testing.T) {
	kv := seededStore(t)

	n, err := clearState(kv, "main")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = clearState(kv, "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	keys, err := kv.Keys("")
	require.NoError(t, err)
	assert.Equal(t, []string{"unrelated"}, keys)
}
