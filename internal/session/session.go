// Package session keeps the signed-in identity between payrollctl runs.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"payroll/internal/domain/auth"
	cryptoutil "payroll/internal/platform/crypto"
)

type record struct {
	Token string     `json:"token"`
	User  *auth.User `json:"user"`
}

// Store holds the token and user projection, optionally backed by a file.
// All methods are safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	path   string
	crypto *cryptoutil.Service
	logger *logrus.Entry
	rec    record
}

// Open loads the session file at path. A missing or unreadable file is an
// empty session.
func Open(path string, crypto *cryptoutil.Service, logger *logrus.Entry) (*Store, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	s := &Store{path: path, crypto: crypto, logger: logger}
	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return s, nil
	case err != nil:
		return nil, errors.Wrapf(err, "read session %s", path)
	}
	plain, err := crypto.Decrypt(raw)
	if err == nil {
		err = json.Unmarshal(plain, &s.rec)
	}
	if err != nil {
		logger.WithError(err).Warn("ignoring unreadable session file")
		s.rec = record{}
	}
	return s, nil
}

// NewMemory returns a Store that never touches disk.
func NewMemory() *Store {
	return &Store{logger: logrus.NewEntry(logrus.StandardLogger())}
}

func (s *Store) Save(token string, user auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = record{Token: token, User: &user}
	return s.persist()
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Token
}

func (s *Store) User() (auth.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec.User == nil {
		return auth.User{}, false
	}
	return *s.rec.User, true
}

// Role is the signed-in role, empty when nobody is signed in.
func (s *Store) Role() auth.Role {
	user, ok := s.User()
	if !ok {
		return ""
	}
	return user.Role
}

func (s *Store) LoggedIn() bool {
	return s.Token() != ""
}

// Clear forgets the session and removes the file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = record{}
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove session %s", s.path)
	}
	return nil
}

// ExpiresAt reads the exp claim without verifying the token. It is
// informational only.
func (s *Store) ExpiresAt() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}
	plain, err := json.Marshal(s.rec)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}
	sealed, err := s.crypto.Encrypt(plain)
	if err != nil {
		return errors.Wrap(err, "encrypt session")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create session dir")
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return errors.Wrap(err, "create temp session")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(sealed); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write session")
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return errors.Wrap(err, "chmod session")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close session")
	}
	return errors.Wrap(os.Rename(tmp.Name(), s.path), "replace session")
}
