package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stacklab/stacklab/filesystem"
	"github.com/stacklab/stacklab/key"
	"github.com/stacklab/stacklab/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Entries are discarded", func() {
			entry := With(Fields{"op": "pop"})
			So(entry.Logger, ShouldPointTo, discard)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, false)
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)

		Convey("Today's log file exists and the level is applied", func() {
			path := filepath.Join(where.Logs(), Filename(time.Now()))
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeTrue)
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)
		})

		Convey("An unknown level falls back to info", func() {
			viper.Set(key.LogsLevel, "chatty")
			So(Setup(), ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})

		Convey("Entries go to the standard logger", func() {
			So(With(Fields{"op": "push"}).Logger, ShouldPointTo, logrus.StandardLogger())
		})
	})
}

func TestFilename(t *testing.T) {
	Convey("Filename is date based", t, func() {
		day := time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)
		So(Filename(day), ShouldEqual, "2026-10-19.log")
	})
}
