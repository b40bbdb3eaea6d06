// Author: Toluwalase Mebaanne
// Package main provides the external process launcher for LinkDrop.

package main

import (
	"errors"
	"log"
	"os/exec"
)

// processLauncher adapts os/exec to the engine's Launcher interface.
//
// WHY Start instead of Run:
// The launch is fire-and-forget. LinkDrop hands the URL to the configured
// command and exits; it never waits for or reports the child's exit status.
// The child must outlive this process, so we only care whether the spawn
// itself succeeded.
type processLauncher struct{}

func (processLauncher) Start(argv []string) error {
	// The engine never passes an empty vector, but the launcher is also
	// reachable from the configuration surface's test-run path.
	if len(argv) == 0 {
		return errors.New("empty argument vector")
	}

	// The executable name is resolved via the environment's standard PATH
	// lookup rules inside exec.Command.
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}

	// Release the process handle so the child keeps running after this
	// short-lived helper exits. A release failure doesn't undo the launch,
	// so it is logged rather than reported as a spawn error.
	if err := cmd.Process.Release(); err != nil {
		log.Printf("WARN: failed to release launched process: %v", err)
	}

	return nil
}
