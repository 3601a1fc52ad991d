package envutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// envFile is the shape of the json and yaml variants: a top-level "env"
// object of string pairs.
type envFile struct {
	Env map[string]string `json:"env" yaml:"env"`
}

// LoadEnvFile reads variables from path. The format follows the extension:
//   - .env is KEY=VALUE lines, parsed by godotenv
//   - .json and .yml/.yaml carry the pairs under a top-level "env" key
func LoadEnvFile(path string) (map[string]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(info.Name())

	switch {
	case strings.HasSuffix(name, ".env"):
		return godotenv.Read(path)
	case strings.HasSuffix(name, ".json"):
		return decodeFile(path, json.Unmarshal)
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"):
		return decodeFile(path, yaml.Unmarshal)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, info.Name())
	}
}

func decodeFile(path string, unmarshal func([]byte, any) error) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	out := &envFile{}

	if err := unmarshal(bts, out); err != nil {
		return nil, err
	}

	return out.Env, nil
}
