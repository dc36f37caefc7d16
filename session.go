package clinicbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// The authentication gate. A single hardcoded credential pair guards the
// dashboard; the session flag lives in its own file, separate from the ledger
// data, so logging out never touches financial records. There is no hashing
// and no expiry, matching the gate this replaces.

const (
	gateUser = "admin"
	gatePass = "clinica2024"

	sessionFlag = "authenticated"
)

// ErrBadCredentials is returned by Login on a wrong user/password pair.
var ErrBadCredentials = errors.New("invalid username or password")

// ErrNotAuthenticated is returned when a command requires an active session.
var ErrNotAuthenticated = errors.New("not logged in, run: clb login")

// Session is the durable authentication flag.
type Session struct {
	path string
}

// NewSession returns the session over its flag file.
func NewSession(path string) *Session { return &Session{path: path} }

// Login checks the credentials and sets the session flag.
func (s *Session) Login(user, pass string) error {
	if user != gateUser || pass != gatePass {
		return ErrBadCredentials
	}
	if err := os.WriteFile(s.path, []byte(sessionFlag+"\n"), 0600); err != nil {
		return fmt.Errorf("cannot write session file %q: %w", s.path, err)
	}
	return nil
}

// Logout clears the session flag. Ledger data is untouched.
func (s *Session) Logout() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Active reports whether the session flag is set.
func (s *Session) Active() bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == sessionFlag
}

// Require returns ErrNotAuthenticated unless the session flag is set.
func (s *Session) Require() error {
	if !s.Active() {
		return ErrNotAuthenticated
	}
	return nil
}
