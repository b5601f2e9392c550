package where

import (
	"path/filepath"
	"testing"

	"github.com/bililink-cli/bililink/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func isDir(path string) bool {
	ok, err := filesystem.API().IsDir(path)
	return err == nil && ok
}

func TestDirectories(t *testing.T) {
	Convey("Every directory is created on demand", t, func() {
		for _, dir := range []func() string{Config, Cache, Logs} {
			path := dir()
			So(path, ShouldNotBeEmpty)
			So(isDir(path), ShouldBeTrue)
		}
	})

	Convey("Given BILILINK_CONFIG_PATH", t, func() {
		custom := filepath.Join("custom", "bililink")
		t.Setenv(EnvConfigPath, custom)

		Convey("Config and Logs should move under it", func() {
			So(Config(), ShouldEqual, custom)
			So(Logs(), ShouldEqual, filepath.Join(custom, "logs"))
			So(isDir(custom), ShouldBeTrue)
		})
	})
}

func TestFiles(t *testing.T) {
	Convey("Cached files live in the cache directory", t, func() {
		So(filepath.Dir(History()), ShouldEqual, Cache())
		So(filepath.Dir(Version()), ShouldEqual, Cache())
		So(History(), ShouldNotEqual, Version())
	})
}
