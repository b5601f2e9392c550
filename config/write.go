package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/bililink-cli/bililink/constant"
	"github.com/bililink-cli/bililink/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// ErrUnknownKey is returned for keys that are not registered.
var ErrUnknownKey = errors.New("unknown config key")

// File returns the path of the config file.
func File() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

// Write saves the current settings, creating the file when it does not exist yet.
func Write() error {
	err := viper.WriteConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return viper.SafeWriteConfig()
	}
	return err
}

// Parse converts raw command-line values into the type of the field registered under k.
func Parse(k string, raw []string) (any, error) {
	field, ok := Default[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, k)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("no value given for %s", k)
	}

	switch field.Value.(type) {
	case string:
		if len(field.Options) > 0 && !lo.Contains(field.Options, raw[0]) {
			return nil, fmt.Errorf("invalid value %q for %s, expected one of %v", raw[0], k, field.Options)
		}
		return raw[0], nil
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value %q for %s", raw[0], k)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value %q for %s", raw[0], k)
		}
		return b, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported type %T of %s", field.Value, k)
	}
}
