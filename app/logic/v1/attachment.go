package v1

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/learnkeep/learnkeep/pkg/types"
	"github.com/learnkeep/learnkeep/pkg/utils"
)

const MAX_ATTACHMENT_SIZE = 1024 * 1024 * 30

// uploadAttachment stores the selected file under a random name in the
// uploads namespace, records it in the attachment table and returns the
// public URL.
func (l *ResourceLogic) uploadAttachment(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MAX_ATTACHMENT_SIZE {
		return "", fmt.Errorf("attachment %s is larger than %d bytes", fh.Filename, MAX_ATTACHMENT_SIZE)
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	fullPath := types.GenUploadFilePath(utils.RandomStr(21), fh.Filename)
	if err := l.core.FileStorage().SaveFile(l.ctx, fullPath, content); err != nil {
		return "", err
	}

	if err := l.core.Store().AttachmentStore().Create(l.ctx, types.Attachment{
		File:      fullPath,
		FileSize:  fh.Size,
		Kind:      types.AttachmentKind(http.DetectContentType(content)),
		Status:    types.ATTACHMENT_STATUS_ACTIVE,
		CreatedAt: time.Now().Unix(),
	}); err != nil {
		// tracking is secondary, the object itself is already stored
		slog.Warn("Failed to record uploaded attachment", slog.String("file", fullPath), slog.String("error", err.Error()))
	}

	return l.core.FileStorage().PublicURL(fullPath), nil
}

// removeAttachment deletes the stored object behind a public URL, best
// effort: failures are logged and swallowed.
func (l *ResourceLogic) removeAttachment(fileURL string) {
	key := l.storageKey(fileURL)

	if err := l.core.FileStorage().DeleteFile(l.ctx, key); err != nil {
		slog.Error("Failed to delete attachment from storage", slog.String("file", key), slog.String("error", err.Error()))
	}

	if err := l.core.Store().AttachmentStore().UpdateStatus(l.ctx, key, types.ATTACHMENT_STATUS_DELETED); err != nil {
		slog.Error("Failed to mark attachment deleted", slog.String("file", key), slog.String("error", err.Error()))
	}
}

// storageKey turns a public attachment URL back into the bucket key.
// Objects live flat inside the uploads namespace, so the last path
// segment is enough when the URL was issued by another static domain.
func (l *ResourceLogic) storageKey(fileURL string) string {
	domain := strings.TrimSuffix(l.core.FileStorage().GetStaticDomain(), "/")
	if domain != "" && strings.HasPrefix(fileURL, domain+"/") {
		return strings.TrimPrefix(fileURL, domain+"/")
	}
	return path.Join(types.FIXED_UPLOAD_PATH_PREFIX, path.Base(fileURL))
}
