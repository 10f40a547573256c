package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oshokin/recordkit/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	fileCmd = &cobra.Command{
		Use:   "file",
		Short: "Convert files to and from base64 data URIs and validate them",
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	fileEncodeCmd = &cobra.Command{
		Use:   "encode <path>",
		Short: "Print a file as a base64 data URI",
		Long: `Print a file as a base64 data URI.

The media type follows the file extension unless --media-type is set.
A progress bar is shown for files larger than progress_threshold.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			mediaType, _ := cmd.Flags().GetString("media-type")

			runApp(cmd, func(ctx context.Context, a *app.App) error {
				return a.Encode(ctx, args[0], mediaType)
			})
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	fileDecodeCmd = &cobra.Command{
		Use:   "decode <data-uri|@path|->",
		Short: "Write the file held by a base64 data URI",
		Long: `Write the file held by a base64 data URI into the output directory.

The data URI is passed directly, read from a file with "@path" or from standard input with "-".
Without --name the file gets a random name with the extension of its media type.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			name, _ := cmd.Flags().GetString("name")

			runApp(cmd, func(ctx context.Context, a *app.App) error {
				return a.Decode(ctx, args[0], name)
			})
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	fileValidateCmd = &cobra.Command{
		Use:   "validate <path|data-uri|@path|->",
		Short: "Check a file against size, extension and name limits",
		Long: `Check a file against size, extension and name limits.

Checks run in order: size, extension, name. Only the first failure is reported.
The extension is the subtype of the media type, e.g. "png" for image/png.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			name, _ := cmd.Flags().GetString("name")

			runApp(cmd, func(ctx context.Context, a *app.App) error {
				return a.Validate(ctx, args[0], name)
			})
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	fileEncodeCmd.Flags().String(
		"media-type",
		"",
		"media type to declare instead of the one matching the file extension.")

	fileDecodeCmd.Flags().StringP(
		"name",
		"n",
		"",
		"name of the decoded file.")

	fileDecodeCmd.Flags().StringP(
		"output",
		"o",
		"",
		"directory to save decoded files (the path will be created if it doesn't exist).")

	fileValidateCmd.Flags().StringP(
		"name",
		"n",
		"",
		"exact name the file must have.")

	fileValidateCmd.Flags().String(
		"max-size",
		"",
		"largest accepted size, for example: 500KB, 5MB.")

	fileValidateCmd.Flags().StringSlice(
		"extensions",
		nil,
		"accepted extensions, for example: png,jpg.")

	fileCmd.AddCommand(fileEncodeCmd, fileDecodeCmd, fileValidateCmd)
	rootCmd.AddCommand(fileCmd)
}
