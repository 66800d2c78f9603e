// Package cmd implements the command-line interface for stacklab.
package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stacklab/stacklab/color"
	"github.com/stacklab/stacklab/icon"
	"github.com/stacklab/stacklab/key"
	"github.com/stacklab/stacklab/selftest"
	"github.com/stacklab/stacklab/style"
	"github.com/stacklab/stacklab/util"
)

func init() {
	rootCmd.AddCommand(testCmd)

	testCmd.Flags().BoolP("verbose", "V", false, "Print every check, not only failures")
	lo.Must0(viper.BindPFlag(key.TestVerbose, testCmd.Flags().Lookup("verbose")))

	testCmd.Flags().BoolP("list", "l", false, "List the available checks and exit")

	testCmd.SetOut(os.Stdout)
}

// testCmd runs the built-in stack self-test.
var testCmd = &cobra.Command{
	Use:   "test [check...]",
	Short: "Run the stack self-test",
	Long:  "Check the stack against its behavioural contract. Pass check names to run a subset.",
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return checkNames(), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("list")) {
			for _, name := range checkNames() {
				cmd.Println(name)
			}
			return
		}

		checks := selftest.Checks()
		if len(args) > 0 {
			var err error
			checks, err = selftest.Select(checks, args...)
			handleErr(err)
		}

		verbose := viper.GetBool(key.TestVerbose)
		cmd.Println(style.Faint("Running stack tests..."))

		report := selftest.Run(checks, func(r selftest.Result) {
			switch {
			case !r.Passed():
				cmd.Printf("%s %s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), r.Name, style.Faint(r.Elapsed.String()))
				cmd.Printf("    %s\n", style.Fg(color.Red)(r.Err.Error()))
			case verbose:
				cmd.Printf("%s %s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), r.Name, style.Faint(r.Elapsed.String()))
			}
		})

		if !report.OK() {
			handleErr(fmt.Errorf("%d of %s failed", report.Failed, util.Quantify(len(report.Results), "check", "checks")))
		}

		cmd.Printf("%s %s passed\n", style.Fg(color.Green)(icon.Get(icon.Success)), util.Quantify(report.Passed, "check", "checks"))
	},
}

func checkNames() []string {
	return lo.Map(selftest.Checks(), func(c selftest.Check, _ int) string {
		return c.Name
	})
}
