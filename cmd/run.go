// Package cmd implements the command-line interface for stacklab.
package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stacklab/stacklab/filesystem"
	"github.com/stacklab/stacklab/key"
	"github.com/stacklab/stacklab/log"
	"github.com/stacklab/stacklab/script"
	"github.com/stacklab/stacklab/util"
	"github.com/stacklab/stacklab/where"
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.SetOut(os.Stdout)

	runCmd.Flags().BoolP("json", "j", false, "Format the results as a JSON document")
	lo.Must0(viper.BindPFlag(key.RunJson, runCmd.Flags().Lookup("json")))

	runCmd.Flags().Bool("strict", false, "Stop at the first failing operation and exit with an error")
	lo.Must0(viper.BindPFlag(key.RunStrict, runCmd.Flags().Lookup("strict")))

	runCmd.Flags().StringSliceP("seed", "s", []string{}, "Values pushed, in order, before the script runs")
	runCmd.Flags().StringP("output", "o", "", "Specify a file path to write the results to")
}

// runCmd executes a stack script.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute a stack script",
	Long: `Execute a script of stack operations, one per line, and report the outcome of each.

Operations:
  push <value>   push the rest of the line, or a quoted string
  pop            pop the top element
  peek           show the top element
  size, len      show the element count
  empty          show whether the stack is empty
  clear          remove every element
  snapshot       list elements bottom to top
  iter           list elements top to bottom
  show           render the whole stack

Blank lines and lines starting with # are ignored. Reads stdin when the file is omitted or "-".
Files not found in the working directory are looked up in the scripts directory (see "stacklab where").`,
	Args:    cobra.MaximumNArgs(1),
	Example: "  stacklab run undo.stk\n  printf 'push a\\npop\\npop\\n' | stacklab run --json",
	Run: func(cmd *cobra.Command, args []string) {
		source := "-"
		if len(args) == 1 {
			source = args[0]
		}

		r, name, err := openScript(source)
		handleErr(err)
		defer util.Ignore(r.Close)

		ops, err := script.Parse(r)
		handleErr(err)

		out, execErr := script.Execute(ops, script.Options{
			Source:   name,
			Seed:     lo.Must(cmd.Flags().GetStringSlice("seed")),
			Capacity: viper.GetInt(key.StackInitialCapacity),
			Strict:   viper.GetBool(key.RunStrict),
		})

		var (
			writer = cmd.OutOrStdout()
			width  int
		)

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			writer = file
		} else if w, _, err := util.TerminalSize(); err == nil {
			width = w
		}

		if viper.GetBool(key.RunJson) {
			handleErr(script.RenderJSON(writer, out))
		} else {
			handleErr(script.RenderText(writer, out, width))
		}

		log.Infof("ran %s: %d operations, %d failed", name, len(out.Steps), out.Failures)
		handleErr(execErr)
	},
}

// openScript opens source, "-" meaning stdin, resolving relative names against the scripts directory.
func openScript(source string) (io.ReadCloser, string, error) {
	if source == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}

	path, err := filesystem.Resolve(source, where.Scripts())
	if err != nil {
		return nil, "", err
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, "", err
	}
	return file, path, nil
}

func init() {
	runCmd.AddCommand(runSchemaCmd)
}

// runSchemaCmd prints the JSON schema of "run --json" output.
var runSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the run command's JSON output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(script.Schema()))
	},
}
