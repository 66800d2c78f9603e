// Package cmd implements the command-line interface for stacklab.
package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stacklab/stacklab/key"
	"github.com/stacklab/stacklab/tui"
)

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().IntP("limit", "n", 0, "Maximum number of elements to draw")
	lo.Must0(viper.BindPFlag(key.TUIRenderLimit, tuiCmd.Flags().Lookup("limit")))
}

// tuiCmd launches the interactive visualiser.
var tuiCmd = &cobra.Command{
	Use:     "tui [value...]",
	Short:   "Push and pop interactively",
	Long:    "Launch the interactive visualiser. Values given as arguments are pushed, in order, before it starts.",
	Example: "  stacklab tui first second third",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(tui.Run(&tui.Options{
			Seed:        args,
			Capacity:    viper.GetInt(key.StackInitialCapacity),
			RenderLimit: viper.GetInt(key.TUIRenderLimit),
			ShowIndices: viper.GetBool(key.TUIShowIndices),
		}))
	},
}
