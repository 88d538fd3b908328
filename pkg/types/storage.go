package types

import (
	"path"
	"strings"
)

// FIXED_UPLOAD_PATH_PREFIX is the namespace inside the bucket that
// holds every user upload.
const FIXED_UPLOAD_PATH_PREFIX = "uploads"

// GenUploadFilePath builds the object key for an upload: the random
// name keeps the original file's extension so the public URL stays
// renderable by type.
func GenUploadFilePath(randomName, originalName string) string {
	return path.Join(FIXED_UPLOAD_PATH_PREFIX, randomName+FileExt(originalName))
}

// FileExt returns the extension of fileName including the leading dot,
// or an empty string when the name has none.
func FileExt(fileName string) string {
	idx := strings.LastIndex(fileName, ".")
	if idx <= 0 || idx == len(fileName)-1 {
		return ""
	}
	return fileName[idx:]
}
