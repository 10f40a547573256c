package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	DefaultFilePermissions os.FileMode = 0o644

	// DefaultFolderPermissions sets the default permissions for regular folders: (rwxr-xr-x).
	DefaultFolderPermissions os.FileMode = 0o755
)

// File extension constants.
const (
	ExtensionJSON = ".json"
	ExtensionYAML = ".yaml"
	ExtensionYML  = ".yml"
)

// Output and input formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinPath is the path that makes commands read from standard input.
const StdinPath = "-"
