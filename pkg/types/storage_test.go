package types_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/learnkeep/learnkeep/pkg/types"
)

func TestGenUploadFilePath(t *testing.T) {
	got := types.GenUploadFilePath("abc123", "course notes.pdf")
	assert.Equal(t, "uploads/abc123.pdf", got)

	got = types.GenUploadFilePath("abc123", "README")
	assert.Equal(t, "uploads/abc123", got)

	assert.True(t, strings.HasPrefix(got, types.FIXED_UPLOAD_PATH_PREFIX+"/"))
}

func TestFileExt(t *testing.T) {
	assert.Equal(t, ".png", types.FileExt("photo.png"))
	assert.Equal(t, ".gz", types.FileExt("archive.tar.gz"))
	assert.Equal(t, "", types.FileExt("Makefile"))
	assert.Equal(t, "", types.FileExt(".env"))
	assert.Equal(t, "", types.FileExt("trailing."))
}

func TestAttachmentKind(t *testing.T) {
	assert.Equal(t, types.ATTACHMENT_KIND_IMAGE, types.AttachmentKind("image/png"))
	assert.Equal(t, types.ATTACHMENT_KIND_VIDEO, types.AttachmentKind("video/mp4"))
	assert.Equal(t, types.ATTACHMENT_KIND_FILE, types.AttachmentKind("application/pdf"))
	assert.Equal(t, types.ATTACHMENT_KIND_FILE, types.AttachmentKind(""))
}

func TestResourceTypeValid(t *testing.T) {
	assert.True(t, types.RESOURCE_TYPE_ARTICLE.Valid())
	assert.True(t, types.RESOURCE_TYPE_VIDEO.Valid())
	assert.True(t, types.RESOURCE_TYPE_TUTORIAL.Valid())
	assert.False(t, types.ResourceType("Podcast").Valid())
	assert.False(t, types.ResourceType("article").Valid())
	assert.False(t, types.ResourceType("").Valid())
}
