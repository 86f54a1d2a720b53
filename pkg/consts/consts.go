package consts

import "os"

const (
	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultIndent is the number of spaces used to indent projection terms
	// and the table reference in rewritten SQL literals
	DefaultIndent = 12

	// DefaultConfigFile is the config file looked up when none is given
	DefaultConfigFile = "sqlfix.yaml"
)
