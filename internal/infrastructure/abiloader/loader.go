package abiloader

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"jurisdiction_gateway/internal/domain/entity"
)

// Names of the contracts whose ABIs ship with the binary.
const (
	CaseContract         = entity.CaseContractName
	JurisdictionContract = entity.JurisdictionContractName
	AvatarNFTContract    = entity.AvatarNFTContractName
)

//go:embed abi/*.json
var embeddedABIs embed.FS

// NamedABI is a parsed contract interface together with its display name.
type NamedABI struct {
	Name string
	ABI  *abi.ABI
}

var (
	embeddedOnce   sync.Once
	embeddedParsed map[string]NamedABI
	embeddedErr    error
)

// Key normalises a contract name for lookups.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Embedded returns the ABIs compiled into the binary, keyed by Key(name).
func Embedded() (map[string]NamedABI, error) {
	embeddedOnce.Do(func() {
		embeddedParsed = make(map[string]NamedABI)
		entries, err := embeddedABIs.ReadDir("abi")
		if err != nil {
			embeddedErr = fmt.Errorf("failed to read embedded abi directory: %w", err)
			return
		}
		for _, entry := range entries {
			data, err := embeddedABIs.ReadFile(path.Join("abi", entry.Name()))
			if err != nil {
				embeddedErr = fmt.Errorf("failed to read embedded abi %s: %w", entry.Name(), err)
				return
			}
			parsed, err := abi.JSON(bytes.NewReader(data))
			if err != nil {
				embeddedErr = fmt.Errorf("failed to parse embedded abi %s: %w", entry.Name(), err)
				return
			}
			name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
			embeddedParsed[Key(name)] = NamedABI{Name: name, ABI: &parsed}
		}
	})
	return embeddedParsed, embeddedErr
}

// MustEmbedded returns one embedded ABI and panics when it is missing, which can only
// happen if the binary was built without its assets.
func MustEmbedded(name string) *abi.ABI {
	all, err := Embedded()
	if err != nil {
		panic(err)
	}
	named, ok := all[Key(name)]
	if !ok {
		panic(fmt.Sprintf("embedded abi %q not found", name))
	}
	return named.ABI
}

// ABIFileLoader merges the embedded ABIs with *.json ABI files from a directory.
// A file named after an embedded contract overrides it.
type ABIFileLoader struct {
	dirPath    string
	loggerInfo func(msg string, args ...any)
	loggerWarn func(msg string, args ...any)
}

// NewABILoader creates a loader. An empty dirPath means embedded ABIs only.
func NewABILoader(dirPath string, loggerInfo func(msg string, args ...any), loggerWarn func(msg string, args ...any)) *ABIFileLoader {
	return &ABIFileLoader{
		dirPath:    dirPath,
		loggerInfo: loggerInfo,
		loggerWarn: loggerWarn,
	}
}

// LoadAll returns every known ABI keyed by Key(name). Unreadable or invalid files are
// skipped with a warning; an unreadable directory is an error.
func (l *ABIFileLoader) LoadAll() (map[string]NamedABI, error) {
	embedded, err := Embedded()
	if err != nil {
		return nil, err
	}
	result := make(map[string]NamedABI, len(embedded))
	for k, v := range embedded {
		result[k] = v
	}

	if l.dirPath == "" {
		return result, nil
	}

	files, err := os.ReadDir(l.dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read abi directory %s: %w", l.dirPath, err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".json") {
			continue
		}
		filePath := filepath.Join(l.dirPath, file.Name())
		data, err := os.ReadFile(filePath)
		if err != nil {
			l.warn("Failed to read abi file, skipping file.", "path", filePath, "error", err)
			continue
		}
		parsed, err := abi.JSON(bytes.NewReader(data))
		if err != nil {
			l.warn("Failed to parse abi file, skipping file.", "path", filePath, "error", err)
			continue
		}
		if len(parsed.Methods) == 0 {
			l.warn("Abi file declares no methods, skipping file.", "path", filePath)
			continue
		}

		name := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		if _, overrides := result[Key(name)]; overrides {
			l.info("Abi file overrides embedded contract interface", "contract", name, "path", filePath)
		}
		result[Key(name)] = NamedABI{Name: name, ABI: &parsed}
		l.info("Loaded contract abi from file", "contract", name, "methods", len(parsed.Methods))
	}
	return result, nil
}

func (l *ABIFileLoader) info(msg string, args ...any) {
	if l.loggerInfo != nil {
		l.loggerInfo(msg, args...)
	}
}

func (l *ABIFileLoader) warn(msg string, args ...any) {
	if l.loggerWarn != nil {
		l.loggerWarn(msg, args...)
	}
}
