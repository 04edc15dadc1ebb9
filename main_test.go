package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseSceneDispatchesKnownCases(t *testing.T) {
	random := rand.New(rand.NewSource(1))

	for _, caseID := range []int{1, 2, 4, 5, 6, 7, 8} {
		s, err := caseScene(caseID, random)
		require.NoErrorf(t, err, "case %d", caseID)
		assert.NotNilf(t, s.World, "case %d", caseID)
	}
}

func TestCaseSceneUnknownFallsBackToQuickFinalScene(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	_, err := caseScene(0, random)
	// final_scene requires resources/earthmap.jpg, which isn't part of
	// this test fixture, so the fallback path is expected to surface a
	// scene-construction error rather than a missing-case error.
	assert.Error(t, err)
}

func TestRunWritesPPMForCase5(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.ppm")
	err := run([]string{"5", outPath})
	require.NoError(t, err)

	contents, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents[:2]), "P3")
}

func TestRunRejectsNonIntegerCase(t *testing.T) {
	err := run([]string{"not-a-number"})
	assert.Error(t, err)
}
