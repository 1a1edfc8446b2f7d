package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rcube/internal/session"
	"github.com/SeamusWaldron/rcube/internal/storage"
)

// verbosef writes to stderr when verbose output is enabled.
func (a *app) verbosef(cmd *cobra.Command, format string, args ...any) {
	if a.cfg == nil || !a.cfg.Verbose {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
}

// openDB opens the configured database.
func (a *app) openDB(cmd *cobra.Command) (*storage.DB, error) {
	a.verbosef(cmd, "Database: %s\n", a.cfg.DBPath)
	return storage.Open(a.cfg.DBPath)
}

// stateFile opens the configured CLI state file.
func (a *app) stateFile() (*session.StateFile, error) {
	if a.cfg.StatePath == "" {
		return nil, fmt.Errorf("no state file path configured")
	}
	return session.NewStateFile(a.cfg.StatePath)
}

// resolveSessionID picks the session a command works on: an explicit ID,
// the most recent session when last is set, or the active session.
func (a *app) resolveSessionID(mgr *session.Manager, id string, last bool) (string, error) {
	if id != "" {
		return id, nil
	}
	if last {
		return mgr.Last()
	}

	sf, err := a.stateFile()
	if err != nil {
		return "", fmt.Errorf("failed to load state: %w", err)
	}
	if sf.ActiveSessionID() == "" {
		return "", fmt.Errorf("no active session (use 'rcube session start' or pass --id)")
	}
	return sf.ActiveSessionID(), nil
}
