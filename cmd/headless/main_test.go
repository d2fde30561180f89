package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/physics2d/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesSnapshots(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, "scenes/bridge.yaml", 20, 10))

	dec := yaml.NewDecoder(&buf)
	var frames []uint64
	for {
		var snap physics.Snapshot
		err := dec.Decode(&snap)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		assert.NotEmpty(t, snap.Bodies)
		assert.NotEmpty(t, snap.Joints)
		frames = append(frames, snap.Frame)
	}
	assert.Len(t, frames, 2)
}

func TestRunUnknownScene(t *testing.T) {
	assert.Error(t, run(io.Discard, "scenes/missing.yaml", 1, 0))
}
