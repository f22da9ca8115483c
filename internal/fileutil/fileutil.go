// Package fileutil holds file-system constants shared by the commands.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for normalized documents
// written to disk, which may contain sensitive API data.
const OwnerReadWrite os.FileMode = 0o600
