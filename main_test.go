package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/echoflaresat/geomkit/batch"
	"github.com/echoflaresat/geomkit/config"
	"github.com/echoflaresat/geomkit/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoScene = "scene/testdata/demo.yaml"

func defaultConfig() *config.Config {
	c := config.Default()
	return &c
}

func TestEvalCommand(t *testing.T) {
	cfg := defaultConfig()
	cfg.Eval.Format = "json"
	out := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, evalCommand(cfg, demoScene, out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	rep, err := batch.DecodeReport(f, batch.FormatJSON)
	require.NoError(t, err)
	assert.Len(t, rep.Results, 13)
	assert.Equal(t, 2, rep.Summary.Errors)
}

func TestEvalCommandErrors(t *testing.T) {
	cfg := defaultConfig()
	cfg.Eval.Format = "xml"
	assert.ErrorIs(t, evalCommand(cfg, demoScene, ""), batch.ErrUnknownFormat)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("queries: [{op: nope}]"), 0644))
	assert.ErrorIs(t, evalCommand(defaultConfig(), bad, ""), scene.ErrInvalidScene)
}

func TestRenderCommand(t *testing.T) {
	cfg := defaultConfig()
	cfg.Render.Size = 64
	dir := t.TempDir()

	for _, name := range []string{"view.png", "view.tif"} {
		out := filepath.Join(dir, name)
		require.NoError(t, renderCommand(cfg, demoScene, out, true))
		info, err := os.Stat(out)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	assert.Error(t, renderCommand(cfg, demoScene, filepath.Join(dir, "view.bmp"), false))
}

func TestRenderScene(t *testing.T) {
	s, err := scene.Load(demoScene)
	require.NoError(t, err)
	cfg := defaultConfig()
	cfg.Render.Size = 96

	img, err := renderScene(context.Background(), cfg, s, false)
	require.NoError(t, err)
	assert.Equal(t, 96, img.Bounds().Dx())

	cfg.Render.Distance = 50
	r, err := newRenderer(cfg, s)
	require.NoError(t, err)
	assert.InDelta(t, 50, r.Camera.Depth(r.Camera.Target), 1e-9)

	_, err = renderScene(context.Background(), &config.Config{Render: cfg.Render, Eval: cfg.Eval}, scene.New(), true)
	assert.NoError(t, err)
}

func TestInspect(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, inspectCommand(&buf, demoScene))
	out := buf.String()

	for _, want := range []string{
		"segments:", "orbs:", "planes:", "hexahedra:", "queries:",
		"diagonal", "ball", "ground", "cube", "ABCD", "CDFG",
		"segment-segment", "hexahedron-hexahedron",
	} {
		assert.Contains(t, out, want)
	}

	assert.Error(t, inspectCommand(&buf, "scene/testdata/missing.yaml"))
}
