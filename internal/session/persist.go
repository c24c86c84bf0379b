package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/raith/agroconnect/internal/api"
)

const sessionFileName = "session.json"

// DefaultPath places the token cache under the user config dir, creating the
// directory on the way.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "agroconnect")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, sessionFileName), nil
}

type sessionFile struct {
	Access  string   `json:"access"`
	Refresh string   `json:"refresh"`
	User    api.User `json:"user"`
}

func loadSessionFile(path string) (*sessionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var sf sessionFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, err
	}
	return &sf, nil
}

func saveSessionFile(path string, sf *sessionFile) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func removeSessionFile(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// tokenExpired checks the access token's exp claim without verifying the
// signature; the backend re-verifies every request, this only decides whether
// a cached token is worth presenting at all.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return true
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(time.Now())
}
