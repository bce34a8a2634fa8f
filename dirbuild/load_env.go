package dirbuild

import (
	"fmt"
	"os"

	"github.com/gon-format/go-gon/gomap"
	"github.com/gon-format/go-gon/parse"
)

// EnvEnv names the environment variable holding GON text with env
// overrides for builds.
const EnvEnv = "GON_BUILD_ENV"

func LoadEnv() (map[string]any, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return nil, nil
	}
	node, err := parse.Parse([]byte(envEnv))
	if err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	res, ok := gomap.ToMap(node).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("error decoding env $%s: not an object", EnvEnv)
	}
	return res, nil
}
