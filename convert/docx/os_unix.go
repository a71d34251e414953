//go:build !windows

package docx

import (
	"os"

	"golang.org/x/sys/unix"
)

// newFileMode is what os.Create would give a new file: 0644 with the process
// umask applied. Umask can only be read by setting it, it is restored
// immediately.
func newFileMode() os.FileMode {
	mask := unix.Umask(0)
	unix.Umask(mask)
	return 0o644 &^ os.FileMode(mask)
}
