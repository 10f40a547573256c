package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oshokin/recordkit/internal/app"
)

// recordCommand describes a command working on a record file.
type recordCommand struct {
	use      string
	short    string
	needsKey bool
	value    bool
	mode     bool
	order    bool
	action   func(ctx context.Context, a *app.App, path string, opts recordOptions) error
}

// recordOptions holds the flags shared by record commands.
type recordOptions struct {
	key       string
	value     string
	mode      string
	direction string
}

//nolint:gochecknoglobals // The command table is immutable and read once during initialization.
var recordCommands = []recordCommand{
	{
		use:      "group <file>",
		short:    "Group records by the value of a key, keeping first-occurrence order.",
		needsKey: true,
		action: func(ctx context.Context, a *app.App, path string, opts recordOptions) error {
			return a.Group(ctx, path, opts.key)
		},
	},
	{
		use:   "order <file>",
		short: "Sort records by a numeric key, or a list of values by their text.",
		order: true,
		action: func(ctx context.Context, a *app.App, path string, opts recordOptions) error {
			return a.Order(ctx, path, opts.key, opts.direction)
		},
	},
	{
		use:      "dedupe <file>",
		short:    "Keep the first record for every distinct value of a key.",
		needsKey: true,
		action: func(ctx context.Context, a *app.App, path string, opts recordOptions) error {
			return a.Dedupe(ctx, path, opts.key)
		},
	},
	{
		use:      "sum <file>",
		short:    "Add up the values of a key.",
		needsKey: true,
		action: func(ctx context.Context, a *app.App, path string, opts recordOptions) error {
			return a.Sum(ctx, path, opts.key)
		},
	},
	{
		use:      "has-duplicates <file>",
		short:    "Check whether two records share the value of a key.",
		needsKey: true,
		action: func(ctx context.Context, a *app.App, path string, opts recordOptions) error {
			return a.HasDuplicates(ctx, path, opts.key)
		},
	},
	{
		use:      "search <file>",
		short:    "Find the first, the last or all records whose key equals a value.",
		needsKey: true,
		value:    true,
		mode:     true,
		action: func(ctx context.Context, a *app.App, path string, opts recordOptions) error {
			return a.Search(ctx, path, opts.key, opts.value, opts.mode)
		},
	},
	{
		use:      "includes <file>",
		short:    "Check whether any record's key equals a value.",
		needsKey: true,
		value:    true,
		action: func(ctx context.Context, a *app.App, path string, opts recordOptions) error {
			return a.Includes(ctx, path, opts.key, opts.value)
		},
	},
	{
		use:      "remove <file>",
		short:    "Drop the records whose key equals a value.",
		needsKey: true,
		value:    true,
		action: func(ctx context.Context, a *app.App, path string, opts recordOptions) error {
			return a.Remove(ctx, path, opts.key, opts.value)
		},
	},
}

// newRecordCommand builds the cobra command for rc.
func newRecordCommand(rc recordCommand) *cobra.Command {
	var opts recordOptions

	command := &cobra.Command{
		Use:   rc.use,
		Short: rc.short,
		Long: rc.short + `

The file is a JSON or YAML array, chosen by its extension; "-" reads JSON from standard input.
Values passed with --value are parsed as JSON scalars (42, true, "42", null), otherwise taken as text.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runApp(cmd, func(ctx context.Context, a *app.App) error {
				return rc.action(ctx, a, args[0], opts)
			})
		},
	}

	flags := command.Flags()
	flags.StringVarP(&opts.key, "key", "k", "", "record field to use.")

	if rc.needsKey {
		_ = command.MarkFlagRequired("key")
	}

	if rc.value {
		flags.StringVarP(&opts.value, "value", "v", "", "value to compare the key with.")
		_ = command.MarkFlagRequired("value")
	}

	if rc.mode {
		flags.StringVarP(&opts.mode, "mode", "m", "first", "search mode: first, last or all.")
	}

	if rc.order {
		flags.StringVarP(&opts.direction, "direction", "d", "asc", "sort direction: asc or desc.")
	}

	return command
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	for _, rc := range recordCommands {
		rootCmd.AddCommand(newRecordCommand(rc))
	}
}
