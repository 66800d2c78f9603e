package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stacklab/stacklab/config"
	"github.com/stacklab/stacklab/filesystem"
	"github.com/stacklab/stacklab/key"
	"github.com/stacklab/stacklab/script"
	"github.com/stacklab/stacklab/where"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

func TestParseValue(t *testing.T) {
	Convey("parseValue follows the type of the default", t, func() {
		v, err := parseValue(config.Default[key.TUIRenderLimit], []string{"42"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 42)

		v, err = parseValue(config.Default[key.RunStrict], []string{"true"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, true)

		v, err = parseValue(config.Default[key.LogsLevel], []string{"debug"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "debug")

		_, err = parseValue(config.Default[key.TUIRenderLimit], []string{"many"})
		So(err, ShouldNotBeNil)

		_, err = parseValue(config.Default[key.RunStrict], nil)
		So(err, ShouldNotBeNil)
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("Unknown keys suggest the closest known one", t, func() {
		_, err := lookupField("run.strct")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, key.RunStrict)
	})
}

func TestEnvNames(t *testing.T) {
	Convey("envNames lists every config key and the path override", t, func() {
		names := envNames()
		So(names, ShouldHaveLength, len(config.Default)+1)
		So(names, ShouldContain, where.EnvConfigPath)
		So(names, ShouldContain, "STACKLAB_RUN_STRICT")
	})
}

func TestOpenScript(t *testing.T) {
	Convey("Given a script in the scripts directory", t, func() {
		path := filepath.Join(where.Scripts(), "demo.stk")
		So(filesystem.API().WriteFile(path, []byte("push a\n"), 0o644), ShouldBeNil)

		Convey("A bare name resolves to it", func() {
			r, name, err := openScript("demo.stk")
			So(err, ShouldBeNil)
			defer r.Close()

			So(name, ShouldEqual, path)
			So(string(lo.Must(io.ReadAll(r))), ShouldEqual, "push a\n")
		})

		Convey("A missing script is an error", func() {
			_, _, err := openScript("missing.stk")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestCommands(t *testing.T) {
	Convey("run executes a script and writes JSON", t, func() {
		path := filepath.Join(where.Scripts(), "undo.stk")
		So(filesystem.API().WriteFile(path, []byte("push a\npush b\npop\npop\npop\n"), 0o644), ShouldBeNil)

		rootCmd.SetArgs([]string{"run", "undo.stk", "--json", "--output", "/out.json", "--seed", "s"})
		So(rootCmd.Execute(), ShouldBeNil)

		var out script.Output
		So(json.Unmarshal(lo.Must(filesystem.API().ReadFile("/out.json")), &out), ShouldBeNil)
		So(out.Steps, ShouldHaveLength, 5)
		So(out.Failures, ShouldEqual, 0)
		So(out.Steps[4].Result, ShouldEqual, "s")
		So(out.Final, ShouldBeEmpty)
	})

	Convey("run schema prints a JSON schema", t, func() {
		var buf bytes.Buffer
		runCmd.SetOut(&buf)
		rootCmd.SetArgs([]string{"run", "schema"})
		So(rootCmd.Execute(), ShouldBeNil)
		So(buf.String(), ShouldContainSubstring, "script.Output")
	})

	Convey("test runs the built-in suite", t, func() {
		var buf bytes.Buffer
		testCmd.SetOut(&buf)
		rootCmd.SetArgs([]string{"test", "--verbose"})
		So(rootCmd.Execute(), ShouldBeNil)
		So(buf.String(), ShouldContainSubstring, "Running stack tests...")
		So(buf.String(), ShouldContainSubstring, "lifo")
		So(buf.String(), ShouldContainSubstring, "checks passed")
	})

	Convey("test --list prints check names", t, func() {
		var buf bytes.Buffer
		testCmd.SetOut(&buf)
		rootCmd.SetArgs([]string{"test", "--list"})
		So(rootCmd.Execute(), ShouldBeNil)
		So(buf.String(), ShouldContainSubstring, "empty_pop_is_idempotent")
	})
}
