package log

import (
	"testing"

	"github.com/bililink-cli/bililink/filesystem"
	"github.com/bililink-cli/bililink/key"
	"github.com/bililink-cli/bililink/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup should not create log files", func() {
			So(Setup(), ShouldBeNil)
			files := lo.Must(filesystem.API().ReadDir(where.Logs()))
			So(files, ShouldBeEmpty)
		})

		Convey("WithField should still be usable", func() {
			So(func() { WithField("room", 6).Info("ignored") }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
		}()

		Convey("Setup should open a daily log file", func() {
			So(Setup(), ShouldBeNil)
			Info("hello")
			Resty().Debugf("request %s", "sent")

			files := lo.Must(filesystem.API().ReadDir(where.Logs()))
			So(files, ShouldHaveLength, 1)
			So(files[0].Size(), ShouldBeGreaterThan, 0)
		})
	})
}
