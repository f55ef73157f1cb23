package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"pharmapp/dto"
)

// Session mirrors what the backend can always rebuild: the logged-in user, the
// chosen workspace and cached lists. It replaces ambient global state with an
// explicit load/save/clear lifecycle tied to login and logout.
type Session struct {
	Token             string                         `json:"token"`
	User              dto.UserResponse               `json:"user"`
	ActiveWorkspaceID string                         `json:"activeWorkspaceId,omitempty"`
	Workspaces        []dto.WorkspaceResponse        `json:"workspaces,omitempty"`
	Memberships       []dto.MembershipResponse       `json:"memberships,omitempty"`
	CachedOrders      map[string][]dto.OrderResponse `json:"cachedOrders,omitempty"`
	CachedInvitations []dto.InvitationResponse       `json:"cachedInvitations,omitempty"`
}

var ErrNoSession = errors.New("no stored session")

// ApplyBootstrap merges the canonical bootstrap response into the session.
// The active workspace is kept when still visible, otherwise reset to the
// first workspace.
func (s *Session) ApplyBootstrap(resp *dto.BootstrapResponse) {
	s.User = resp.User
	s.Workspaces = resp.Workspaces
	s.Memberships = resp.Memberships

	if s.ActiveWorkspaceID != "" {
		for _, ws := range resp.Workspaces {
			if ws.ID == s.ActiveWorkspaceID {
				return
			}
		}
	}
	s.ActiveWorkspaceID = ""
	if len(resp.Workspaces) > 0 {
		s.ActiveWorkspaceID = resp.Workspaces[0].ID
	}
}

// SetActiveWorkspace selects a workspace the user is actually a member of.
func (s *Session) SetActiveWorkspace(pharmacyID string) error {
	for _, ws := range s.Workspaces {
		if ws.ID == pharmacyID {
			s.ActiveWorkspaceID = pharmacyID
			return nil
		}
	}
	return errors.New("unknown workspace: " + pharmacyID)
}

// CacheOrders stores the server's canonical order list for one workspace.
func (s *Session) CacheOrders(pharmacyID string, orders []dto.OrderResponse) {
	if s.CachedOrders == nil {
		s.CachedOrders = make(map[string][]dto.OrderResponse)
	}
	s.CachedOrders[pharmacyID] = orders
}

// SessionStore persists the session between runs.
type SessionStore interface {
	Load() (*Session, error)
	Save(session *Session) error
	Clear() error
}

// FileSessionStore keeps the session in a JSON file, the CLI analog of the
// browser's local storage.
type FileSessionStore struct {
	path string
}

func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

func (f *FileSessionStore) Load() (*Session, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	if session.Token == "" {
		return nil, ErrNoSession
	}
	return &session, nil
}

func (f *FileSessionStore) Save(session *Session) error {
	raw, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o600)
}

func (f *FileSessionStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
