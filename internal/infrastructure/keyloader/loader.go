package keyloader

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// ErrNoKey means no key source is configured; the gateway then runs read-only.
var ErrNoKey = errors.New("no signer key configured")

// KeyLoader reads the relayer's private key from a file or an environment variable.
// The file wins when both are set.
type KeyLoader struct {
	filePath   string
	envName    string
	loggerInfo func(msg string, args ...any)
}

// NewKeyLoader creates a KeyLoader.
func NewKeyLoader(filePath, envName string, loggerInfo func(msg string, args ...any)) *KeyLoader {
	return &KeyLoader{
		filePath:   filePath,
		envName:    envName,
		loggerInfo: loggerInfo,
	}
}

// Load returns the configured key, or ErrNoKey.
func (l *KeyLoader) Load() (*ecdsa.PrivateKey, error) {
	if l.filePath != "" {
		data, err := os.ReadFile(l.filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read signer key file %s: %w", l.filePath, err)
		}
		key, err := parseHexKey(firstKeyLine(string(data)))
		if err != nil {
			return nil, fmt.Errorf("invalid signer key in %s: %w", l.filePath, err)
		}
		l.logLoaded("file", l.filePath, key)
		return key, nil
	}

	if l.envName != "" {
		if raw := strings.TrimSpace(os.Getenv(l.envName)); raw != "" {
			key, err := parseHexKey(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid signer key in $%s: %w", l.envName, err)
			}
			l.logLoaded("env", l.envName, key)
			return key, nil
		}
	}
	return nil, ErrNoKey
}

func (l *KeyLoader) logLoaded(source, location string, key *ecdsa.PrivateKey) {
	if l.loggerInfo != nil {
		l.loggerInfo("Signer key loaded", "source", source, "location", location,
			"address", crypto.PubkeyToAddress(key.PublicKey).Hex())
	}
}

// firstKeyLine skips blank lines and # comments, like the wallet list format.
func firstKeyLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}

func parseHexKey(raw string) (*ecdsa.PrivateKey, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	if raw == "" {
		return nil, errors.New("empty key")
	}
	return crypto.HexToECDSA(raw)
}
