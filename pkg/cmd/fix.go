package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/palladin/sqlfix/pkg/consts"
	"github.com/palladin/sqlfix/pkg/sqlfmt"
	"github.com/pkg/errors"
)

// fixFile reads the file at path, rewrites its SQL literals, and writes the
// result back to the same path. The write is a full replace with no temp-file
// staging, so an interrupted run may leave the file partially written.
func fixFile(path string, opts sqlfmt.Options, w io.Writer) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file: %s", path)
	}

	fixed := sqlfmt.New(opts).Rewrite(string(content))

	if err := os.WriteFile(path, []byte(fixed), consts.ModeFile); err != nil {
		return errors.Wrapf(err, "failed to write file: %s", path)
	}

	fmt.Fprintf(w, "Fixed SQL formatting in %s\n", path)
	return nil
}
