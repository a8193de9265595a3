package ports

import "context"

// ProfileWatcher watches the configuration file for edits so a profile
// change on disk resets the engine without a restart.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type ProfileWatcher interface {
	// Start begins watching path. onChange fires debounced after the file
	// settles; rapid editor write bursts coalesce into one invocation.
	Start(ctx context.Context, path string, onChange func()) error
	// Stop stops the watcher and releases its resources.
	Stop() error
}
