package devserver

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

//go:embed users.yaml
var defaultUsers []byte

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUser      = errors.New("duplicate nrCarteira")
)

// User is a seeded account. Senha is only used at load time.
type User struct {
	ID         string `yaml:"id"`
	NrCarteira string `yaml:"nrCarteira"`
	Nome       string `yaml:"nome"`
	Email      string `yaml:"email"`
	Perfil     string `yaml:"perfil"`
	Senha      string `yaml:"senha"`
	SenhaHash  string `yaml:"senhaHash"`
}

type seedFile struct {
	Users []User `yaml:"users"`
}

// Directory holds the users by carteirinha number.
type Directory struct {
	mu    sync.RWMutex
	users map[string]*User
	cost  int
}

func newDirectory(cost int) *Directory {
	return &Directory{users: make(map[string]*User), cost: cost}
}

// LoadUsers parses a YAML seed. Plain passwords are hashed with cost.
func LoadUsers(r io.Reader, cost int) (*Directory, error) {
	var seed seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse users: %w", err)
	}

	d := newDirectory(cost)
	for _, u := range seed.Users {
		if err := d.Add(u); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// LoadUsersFile reads path, or the embedded seed when path is empty.
func LoadUsersFile(path string, cost int) (*Directory, error) {
	if path == "" {
		return LoadUsers(bytes.NewReader(defaultUsers), cost)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open users file: %w", err)
	}
	defer f.Close()
	return LoadUsers(f, cost)
}

// Add validates u, hashes its password if needed and stores it.
func (d *Directory) Add(u User) error {
	if u.NrCarteira == "" || u.Nome == "" {
		return fmt.Errorf("user %q: nrCarteira and nome are required", u.NrCarteira)
	}
	if u.SenhaHash == "" {
		if u.Senha == "" {
			return fmt.Errorf("user %s: senha or senhaHash is required", u.NrCarteira)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Senha), d.cost)
		if err != nil {
			return fmt.Errorf("user %s: hash password: %w", u.NrCarteira, err)
		}
		u.SenhaHash = string(hash)
	}
	u.Senha = ""
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.users[u.NrCarteira]; ok {
		return fmt.Errorf("user %s: %w", u.NrCarteira, ErrDuplicateUser)
	}
	d.users[u.NrCarteira] = &u
	return nil
}

func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}

// Authenticate checks the password of nrCarteira. Unknown users and wrong
// passwords both yield ErrInvalidCredentials.
func (d *Directory) Authenticate(nrCarteira, senha string) (*User, error) {
	d.mu.RLock()
	u, ok := d.users[nrCarteira]
	d.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(senha)); err != nil {
		return nil, ErrInvalidCredentials
	}
	cp := *u
	return &cp, nil
}
