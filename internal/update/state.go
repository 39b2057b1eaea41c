package update

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// CheckState remembers the outcome of the last release check so the
// post-run hint does not hit the network on every invocation.
type CheckState struct {
	CheckedAt     string `json:"checked_at"`
	LatestVersion string `json:"latest_version"`
}

// StateManager manages the release check state file.
type StateManager struct {
	statePath string
	state     *CheckState
}

// NewStateManager creates a new state manager, loading existing state if
// available.
func NewStateManager() (*StateManager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configDir := filepath.Join(homeDir, ".config", "lazycommit")
	statePath := filepath.Join(configDir, "update_state.json")

	sm := &StateManager{
		statePath: statePath,
		state:     &CheckState{},
	}

	if data, err := os.ReadFile(statePath); err == nil {
		json.Unmarshal(data, sm.state)
	}

	return sm, nil
}

// Latest returns the release version recorded by the last check, if any.
func (sm *StateManager) Latest() string {
	return sm.state.LatestVersion
}

// CheckedWithin reports whether a check was recorded within the last d.
func (sm *StateManager) CheckedWithin(d time.Duration) bool {
	if sm.state.CheckedAt == "" {
		return false
	}
	checkedAt, err := time.Parse(time.RFC3339, sm.state.CheckedAt)
	if err != nil {
		return false
	}
	return time.Since(checkedAt) < d
}

// RecordCheck stores the latest version seen and stamps the check time.
func (sm *StateManager) RecordCheck(latest string) {
	sm.state.LatestVersion = latest
	sm.state.CheckedAt = time.Now().UTC().Format(time.RFC3339)
}

// Save persists the state to disk.
func (sm *StateManager) Save() error {
	if err := os.MkdirAll(filepath.Dir(sm.statePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(sm.state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(sm.statePath, data, 0644)
}
