package core

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/learnkeep/learnkeep/pkg/object-storage/s3"
	"github.com/learnkeep/learnkeep/pkg/types"
)

// FileStorage interface defines methods for file operations.
type FileStorage interface {
	GetStaticDomain() string
	// PublicURL resolves a storage key into a directly fetchable URL.
	PublicURL(fullPath string) string
	SaveFile(ctx context.Context, fullPath string, content []byte) error
	DeleteFile(ctx context.Context, fullFilePath string) error
	DownloadFile(ctx context.Context, filePath string) (*s3.GetObjectResult, error)
	// EnsureBucket makes sure the backing bucket (or directory)
	// exists, creating it public-read when missing.
	EnsureBucket(ctx context.Context) error
}

func SetupObjectStorage(cfg ObjectStorageDriver) FileStorage {
	var s FileStorage
	switch strings.ToLower(cfg.Driver) {
	case "s3":
		s3Cfg := cfg.S3
		s = &S3FileStorage{
			StaticDomain: cfg.StaticDomain,
			S3:           s3.NewS3Client(s3Cfg.Endpoint, s3Cfg.Region, s3Cfg.Bucket, s3Cfg.AccessKey, s3Cfg.SecretKey, s3.WithPathStyle(s3Cfg.UsePathStyle)),
		}
	case "local":
		s = &LocalFileStorage{
			StaticDomain: cfg.StaticDomain,
			Root:         cfg.Local.Root,
		}
	default:
		panic("unknown object storage driver: " + cfg.Driver)
	}

	return s
}

type S3FileStorage struct {
	StaticDomain string
	*s3.S3
}

func (fs *S3FileStorage) GetStaticDomain() string {
	return fs.StaticDomain
}

func (fs *S3FileStorage) PublicURL(fullPath string) string {
	return strings.TrimSuffix(fs.StaticDomain, "/") + "/" + strings.TrimPrefix(fullPath, "/")
}

// SaveFile stores a file
func (fs *S3FileStorage) SaveFile(ctx context.Context, fullPath string, content []byte) error {
	return fs.Upload(ctx, fullPath, bytes.NewReader(content))
}

func (fs *S3FileStorage) DownloadFile(ctx context.Context, filePath string) (*s3.GetObjectResult, error) {
	return fs.GetObject(ctx, filePath)
}

// DeleteFile deletes a file
func (fs *S3FileStorage) DeleteFile(ctx context.Context, fullFilePath string) error {
	return fs.Delete(ctx, fullFilePath)
}

// LocalFileStorage keeps uploads on the local filesystem, mostly for
// development setups without an S3 endpoint.
type LocalFileStorage struct {
	StaticDomain string
	Root         string
}

func (fs *LocalFileStorage) GetStaticDomain() string {
	return fs.StaticDomain
}

func (fs *LocalFileStorage) PublicURL(fullPath string) string {
	return strings.TrimSuffix(fs.StaticDomain, "/") + "/" + strings.TrimPrefix(fullPath, "/")
}

func (fs *LocalFileStorage) SaveFile(ctx context.Context, fullPath string, content []byte) error {
	target := filepath.Join(fs.Root, filepath.FromSlash(strings.TrimPrefix(fullPath, "/")))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, content, 0o644)
}

func (fs *LocalFileStorage) DeleteFile(ctx context.Context, fullFilePath string) error {
	target := filepath.Join(fs.Root, filepath.FromSlash(strings.TrimPrefix(fullFilePath, "/")))
	return os.Remove(target)
}

func (fs *LocalFileStorage) DownloadFile(ctx context.Context, filePath string) (*s3.GetObjectResult, error) {
	target := filepath.Join(fs.Root, filepath.FromSlash(strings.TrimPrefix(filePath, "/")))
	f, err := os.Open(target)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &s3.GetObjectResult{File: content}, nil
}

func (fs *LocalFileStorage) EnsureBucket(ctx context.Context) error {
	return os.MkdirAll(filepath.Join(fs.Root, types.FIXED_UPLOAD_PATH_PREFIX), 0o755)
}
