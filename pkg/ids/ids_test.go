// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

package ids

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterminism(t *testing.T) {
	require.Equal(t, New("a", "b", "c"), New("a", "b", "c"))
	require.NotEqual(t, New("a", "b", "c"), New("a", "b", "d"))

	// Part boundaries are not delimited; the id is stable for a tuple,
	// not for its concatenation alone.
	require.Equal(t, New("ab", "c"), New("a", "bc"))
}

func TestStableAcrossReleases(t *testing.T) {
	// Persisted ids derived before this test was written. A failure here
	// means existing deployments can no longer match their rows.
	require.Equal(t, "10133499698960733964", New("gpt2", "a@x", "ns1"))
	require.Equal(t, "17241709254077376921", New())
}

func TestEntityDerivations(t *testing.T) {
	require.Equal(t, New("gpt2", "a@x", "ns1"), Experiment("gpt2", "a@x", "ns1"))
	require.Equal(t, New("m", "ns1"), Model("m", "ns1"))
	require.Equal(t, New("mid", "1.0"), ModelVersion("mid", "1.0"))
	require.Equal(t, New("k", "p"), Metadata("k", "p"))
	require.Equal(t, New("p", "weights"), Artifact("p", "weights"))
	require.Equal(t,
		New("p", "a.bin", "abc", "model", "10", "20", "30", "40"),
		File("p", "a.bin", "abc", "model", 10, 20, 30, 40))
	require.Equal(t,
		New("p", "started", "10", "20", "worker"),
		Event("p", "started", 10, 20, "worker"))
}
