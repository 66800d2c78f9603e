// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 11

// Stack Construction - these keys tune how stacks created by the CLI allocate storage.
const (
	StackInitialCapacity = "stack.initial_capacity"
)

// Script Execution - these keys define the default behaviour of the run command.
const (
	RunStrict = "run.strict"
	RunJson   = "run.json"
)

// Self-Test - these keys configure the built-in test runner.
const (
	TestVerbose = "test.verbose"
)

// Terminal User Interface (TUI) - these keys define the visualiser's rendering.
const (
	TUIRenderLimit = "tui.render_limit"
	TUIShowIndices = "tui.show_indices"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
