//go:build !windows

package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessLauncherEmptyVector(t *testing.T) {
	err := processLauncher{}.Start(nil)

	assert.Error(t, err)
}

func TestProcessLauncherMissingExecutable(t *testing.T) {
	err := processLauncher{}.Start([]string{"linkdrop-definitely-not-a-real-binary", "https://example.com"})

	assert.Error(t, err)
}

func TestProcessLauncherStartsAndReturnsImmediately(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("no 'true' binary on this system")
	}

	err := processLauncher{}.Start([]string{"true", "https://example.com"})

	assert.NoError(t, err)
}
