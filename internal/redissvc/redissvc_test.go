package redissvc_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/qr-tracker/internal/redissvc"
)

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	svc, err := redissvc.Connect(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	defer svc.Close()

	assert.NoError(t, svc.Rdb().Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := redissvc.Connect(context.Background(), addr, "", 0)
	assert.Error(t, err)
}
