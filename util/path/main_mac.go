//go:build darwin

package path

import "path/filepath"

func BeforeWrite(path string) string {
	return path
}

func AfterGetAbsPath(path string) (string, error) {
	// On macOS an absolute path under the temp root can appear both as
	// /var/folders/... and /private/var/folders/... Resolving symlinks
	// settles on the /private form.
	return filepath.EvalSymlinks(path)
}
