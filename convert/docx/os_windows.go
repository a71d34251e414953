//go:build windows

package docx

import "os"

// newFileMode only controls read-only attribute on Windows.
func newFileMode() os.FileMode {
	return 0o644
}
