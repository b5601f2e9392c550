package config

import (
	"errors"
	"testing"

	"github.com/bililink-cli/bililink/filesystem"
	"github.com/bililink-cli/bililink/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetInt(key.NetworkTimeout), ShouldEqual, 30)
			So(viper.GetString(key.CliLanguage), ShouldEqual, "en")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("network.user_agent")
			So(result, ShouldEqual, "network_user_agent")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.CliPauseOnExit]

		Convey("Env should be prefixed with the app name", func() {
			So(field.Env(), ShouldEqual, "BILILINK_CLI_PAUSE_ON_EXIT")
		})

		Convey("It should be exposed as an environment variable", func() {
			So(EnvExposed, ShouldContain, key.CliPauseOnExit)
		})

		Convey("Pretty output should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.CliPauseOnExit)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse converts values by the field type", t, func() {
		v, err := Parse(key.NetworkTimeout, []string{"10"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 10)

		v, err = Parse(key.CliPauseOnExit, []string{"false"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, false)

		v, err = Parse(key.CliLanguage, []string{"zh"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "zh")

		Convey("It rejects malformed values", func() {
			_, err := Parse(key.NetworkTimeout, []string{"soon"})
			So(err, ShouldNotBeNil)

			_, err = Parse(key.CliLanguage, []string{"fr"})
			So(err, ShouldNotBeNil)

			_, err = Parse(key.CliLanguage, nil)
			So(err, ShouldNotBeNil)
		})

		Convey("It rejects unknown keys", func() {
			_, err := Parse("network.tiemout", []string{"1"})
			So(errors.Is(err, ErrUnknownKey), ShouldBeTrue)
		})
	})

	Convey("File lives in the config directory", t, func() {
		So(File(), ShouldEndWith, "bililink.toml")
	})
}
