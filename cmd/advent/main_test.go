package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/advent/internal/domain"
)

func TestRunWritesProfileOnFailure(t *testing.T) {
	log, _ := test.NewNullLogger()
	dir := t.TempDir()

	err := run(log, options{day: 99, dataDir: t.TempDir(), profile: "cpu", profileDir: dir})
	require.ErrorIs(t, err, domain.ErrUnknownDay)

	_, statErr := os.Stat(filepath.Join(dir, "cpu.pprof"))
	assert.NoError(t, statErr, "profile must be flushed before the error reaches main")
}

func TestRunErrors(t *testing.T) {
	log, _ := test.NewNullLogger()

	err := run(log, options{profile: "gpu"})
	assert.ErrorContains(t, err, "unknown profile kind")

	err = run(log, options{inputPath: "x.txt", dataDir: t.TempDir()})
	assert.ErrorContains(t, err, "-input needs -day")

	// missing input file on disk for a real day
	err = run(log, options{day: 1, dataDir: t.TempDir()})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunSampleOnly(t *testing.T) {
	log, _ := test.NewNullLogger()
	assert.NoError(t, run(log, options{onlySample: true, dataDir: t.TempDir()}))
}

func TestRunFromInputFile(t *testing.T) {
	log, _ := test.NewNullLogger()
	dir := t.TempDir()
	in := filepath.Join(dir, "fish.txt")
	require.NoError(t, os.WriteFile(in, []byte("3,4,3,1,2\n"), 0o644))

	assert.NoError(t, run(log, options{day: 6, inputPath: in, dataDir: dir, skipSample: true}))
}
