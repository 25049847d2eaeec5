package config

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kbukum/picacg/encryption"
	apperrors "github.com/kbukum/picacg/errors"
	"github.com/kbukum/picacg/logger"
)

// FileName is the settings file inside the data directory.
const FileName = "config.json"

// sealedPrefix marks an encrypted token in the settings file.
const sealedPrefix = "sealed:"

// UserData holds the account state kept between runs.
type UserData struct {
	Token string `json:"token"`
}

// NetData holds network state kept between runs.
type NetData struct {
	ImageServer string `json:"image_server"`
}

// Settings is the content of the settings file.
type Settings struct {
	UserData UserData `json:"user_data"`
	NetData  NetData  `json:"net_data"`
}

// Store reads and writes Settings under a directory. Access is serialised;
// every operation takes a context that bounds the wait for the lock.
type Store struct {
	dir  string
	enc  encryption.Encryptor
	log  *logger.Logger
	lock chan struct{}
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithEncryptor seals the token at rest.
func WithEncryptor(enc encryption.Encryptor) StoreOption {
	return func(s *Store) { s.enc = enc }
}

// WithStoreLogger sets the store logger.
func WithStoreLogger(l *logger.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// NewStore creates a Store for dir.
func NewStore(dir string, opts ...StoreOption) *Store {
	s := &Store{
		dir:  dir,
		log:  logger.Nop(),
		lock: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithComponent("config.store")
	return s
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Load returns the stored settings, first writing defaults when the file
// does not exist.
func (s *Store) Load(ctx context.Context) (Settings, error) {
	if err := s.acquire(ctx); err != nil {
		return Settings{}, err
	}
	defer s.release()
	return s.load()
}

// Save replaces the stored settings.
func (s *Store) Save(ctx context.Context, settings Settings) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()
	return s.write(settings)
}

// Update loads the settings, applies fn and saves the result while holding
// the lock once.
func (s *Store) Update(ctx context.Context, fn func(*Settings)) (Settings, error) {
	if err := s.acquire(ctx); err != nil {
		return Settings{}, err
	}
	defer s.release()

	settings, err := s.load()
	if err != nil {
		return Settings{}, err
	}
	fn(&settings)
	if err := s.write(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (s *Store) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Lock("Failed to acquire settings lock").WithCause(err)
	}
	select {
	case s.lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return apperrors.Lock("Failed to acquire settings lock").WithCause(ctx.Err())
	}
}

func (s *Store) release() {
	<-s.lock
}

func (s *Store) load() (Settings, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info("creating default settings", logger.Fields(logger.FieldPath, s.Path()))
		if err := s.write(Settings{}); err != nil {
			return Settings{}, err
		}
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, apperrors.FileRead("Failed to read config file", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, apperrors.Wrap(apperrors.KindParseJSON, "Failed to parse config file", err)
	}

	token, err := s.open(settings.UserData.Token)
	if err != nil {
		return Settings{}, err
	}
	settings.UserData.Token = token
	return settings, nil
}

func (s *Store) write(settings Settings) error {
	sealed, err := s.seal(settings.UserData.Token)
	if err != nil {
		return err
	}
	settings.UserData.Token = sealed

	data, err := json.Marshal(settings)
	if err != nil {
		return apperrors.SerializeJSON("Failed to serialize config", err)
	}

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return apperrors.FileWrite("Failed to create config directory", err)
	}
	tmp, err := os.CreateTemp(s.dir, FileName+".*")
	if err != nil {
		return apperrors.FileWrite("Failed to write config file", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return apperrors.FileWrite("Failed to write config file", err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.FileWrite("Failed to write config file", err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return apperrors.FileWrite("Failed to write config file", err)
	}
	return nil
}

func (s *Store) seal(token string) (string, error) {
	if s.enc == nil || token == "" {
		return token, nil
	}
	out, err := s.enc.Encrypt(token)
	if err != nil {
		return "", apperrors.SerializeJSON("Failed to encrypt token", err)
	}
	return sealedPrefix + out, nil
}

// open decrypts a sealed token. Plain tokens pass through so a file written
// before encryption was enabled still loads.
func (s *Store) open(token string) (string, error) {
	if !strings.HasPrefix(token, sealedPrefix) {
		return token, nil
	}
	if s.enc == nil {
		return "", apperrors.Parse("Stored token is encrypted but no key is configured")
	}
	out, err := s.enc.Decrypt(strings.TrimPrefix(token, sealedPrefix))
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindParse, "Failed to decrypt stored token", err)
	}
	return out, nil
}
