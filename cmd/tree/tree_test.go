package main

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willbeason/fractal-tree/pkg/config"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()

	cmd := mainCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestSnapshot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.png")

	require.NoError(t, execute(t, "snapshot", "--out", out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 1280, img.Bounds().Dx())
	assert.Equal(t, 720, img.Bounds().Dy())

	// A point on the trunk.
	r, g, b, _ := img.At(640, 400).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
}

func TestSnapshot_Config(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial_angle: 0.5\ndecay_ratio: 0.6\n"), 0o600))
	out := filepath.Join(dir, "tree.png")

	require.NoError(t, execute(t, "snapshot", "--config", path, "--out", out))

	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestSnapshot_BadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decay_ratio: 2\n"), 0o600))
	out := filepath.Join(dir, "tree.png")

	err := execute(t, "snapshot", "--config", path, "--out", out)

	assert.ErrorIs(t, err, config.ErrDecayRatio)
	_, err = os.Stat(out)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_UnknownBackend(t *testing.T) {
	err := execute(t, "--backend", "sdl")

	assert.ErrorIs(t, err, config.ErrUnknownBackend)
}

func TestRun_TakesNoArguments(t *testing.T) {
	assert.Error(t, execute(t, "extra"))
}

func TestInterruptible_Parent(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := interruptible(parent)
	defer stop()

	require.NoError(t, ctx.Err())
	cancel()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestInterruptible_Signal(t *testing.T) {
	ctx, stop := interruptible(context.Background())
	defer stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not cancelled by SIGTERM")
	}
}
