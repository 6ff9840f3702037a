package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Argon2id parameters used for every new hash.
const (
	memory      = 19 * 1024 // KiB
	iterations  = 2
	parallelism = 1
	keyLength   = 32
	saltLength  = 16
)

var (
	pepperMu   sync.Mutex
	pepper     string
	pepperFile = "pepper"
)

// SetPepperPath points the package at the pepper file and drops any cached
// value so the next hash reloads it.
func SetPepperPath(file string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	pepperFile = file
	pepper = ""
}

// Pepper returns the server wide secret appended to passwords before hashing.
// The file is created with a fresh random value on first use.
func Pepper() (string, error) {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	if pepper != "" {
		return pepper, nil
	}

	p, err := loadOrGeneratePepper(pepperFile)
	if err != nil {
		return "", fmt.Errorf("cryptox: pepper: %w", err)
	}
	pepper = p
	return pepper, nil
}

func loadOrGeneratePepper(file string) (string, error) {
	if file == "" {
		return "", errors.New("no pepper file configured")
	}
	file = filepath.Clean(file)

	b, err := os.ReadFile(file)
	if err == nil {
		if len(b) == 0 {
			return "", fmt.Errorf("pepper file %q is empty", file)
		}
		return string(b), nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return "", err
	}

	raw := make([]byte, keyLength)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	p := base64.RawURLEncoding.EncodeToString(raw)

	if err := os.WriteFile(file, []byte(p), 0600); err != nil {
		return "", err
	}
	return p, nil
}
