// Package config owns the settings registry and the viper instance backing it.
package config

import (
	"errors"
	"strings"

	"github.com/bililink-cli/bililink/constant"
	"github.com/bililink-cli/bililink/filesystem"
	"github.com/bililink-cli/bililink/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps "player.default" to "player_default".
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, binds BILILINK_* variables and reads bililink.toml if there is one.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	return err
}
