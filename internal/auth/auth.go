// internal/auth/auth.go
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Store verifies credentials against a user database.
type Store interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

// MySQLStore checks credentials against the users table. Passwords are
// stored as bcrypt hashes.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore opens and pings the database at dsn.
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open user database: %w", err)
	}
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(4)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping user database: %w", err)
	}
	return &MySQLStore{db: db}, nil
}

func (s *MySQLStore) Verify(ctx context.Context, username, password string) (bool, error) {
	var hash string
	err := s.db.QueryRowContext(ctx,
		"SELECT password_hash FROM users WHERE username = ?", username,
	).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query user %q: %w", username, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("compare password for %q: %w", username, err)
	}
	return true, nil
}

func (s *MySQLStore) Close() error {
	return s.db.Close()
}

// User is the current identity. A zero User plays as a guest.
type User struct {
	Username  string
	SessionID string
	LoggedIn  bool
}

// Service wraps a credential store. A nil store disables login entirely and
// the game runs in guest mode.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Enabled reports whether a credential store is configured.
func (s *Service) Enabled() bool {
	return s.store != nil
}

// ErrLoginDisabled is returned when no credential store is configured.
var ErrLoginDisabled = errors.New("login is not available")

// Login verifies the credentials and mints a session on success. A failed
// verification returns a zero user and no error.
func (s *Service) Login(ctx context.Context, username, password string) (User, error) {
	if s.store == nil {
		return User{}, ErrLoginDisabled
	}
	ok, err := s.store.Verify(ctx, username, password)
	if err != nil {
		return User{}, err
	}
	if !ok {
		return User{}, nil
	}
	return User{
		Username:  username,
		SessionID: uuid.NewString(),
		LoggedIn:  true,
	}, nil
}
