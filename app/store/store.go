package store

import (
	"context"

	"github.com/learnkeep/learnkeep/pkg/sqlstore"
	"github.com/learnkeep/learnkeep/pkg/types"
)

// ResourceStore 定义 ResourceStore 的方法集合
type ResourceStore interface {
	sqlstore.SqlCommons
	// Create 创建新的资源记录
	Create(ctx context.Context, data types.Resource) error
	// GetResource 根据ID获取资源记录
	GetResource(ctx context.Context, id string) (*types.Resource, error)
	// Update refreshes the mutable columns and updated_at. Returns
	// sql.ErrNoRows when the id matched no row.
	Update(ctx context.Context, id string, data types.UpdateResourceArgs, updatedAt int64) error
	// Delete 删除资源记录
	Delete(ctx context.Context, id string) error
	// ListResources returns resources ordered by updated_at descending.
	ListResources(ctx context.Context, page, pageSize uint64) ([]types.Resource, error)
}

// AttachmentStore tracks every object uploaded to the bucket.
type AttachmentStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.Attachment) error
	GetByFile(ctx context.Context, file string) (*types.Attachment, error)
	BindResource(ctx context.Context, file, resourceID string) error
	UpdateStatus(ctx context.Context, file string, status int) error
	ListByResource(ctx context.Context, resourceID string) ([]types.Attachment, error)
}
