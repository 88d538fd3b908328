package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/learnkeep/learnkeep/pkg/register"
	"github.com/learnkeep/learnkeep/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.AttachmentStore = NewAttachmentStore(provider)
	})
}

// AttachmentStore 处理 lk_attachments 表的操作
type AttachmentStore struct {
	CommonFields
}

func NewAttachmentStore(provider SqlProviderAchieve) *AttachmentStore {
	repo := &AttachmentStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_ATTACHMENT)
	repo.SetAllColumns("id", "resource_id", "file", "file_size", "kind", "status", "created_at")
	return repo
}

func (s *AttachmentStore) Create(ctx context.Context, data types.Attachment) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("resource_id", "file", "file_size", "kind", "status", "created_at").
		Values(data.ResourceID, data.File, data.FileSize, data.Kind, data.Status, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *AttachmentStore) GetByFile(ctx context.Context, file string) (*types.Attachment, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"file": file})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Attachment
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// BindResource 关联上传文件与资源记录
func (s *AttachmentStore) BindResource(ctx context.Context, file, resourceID string) error {
	query := sq.Update(s.GetTable()).
		Set("resource_id", resourceID).
		Where(sq.Eq{"file": file})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *AttachmentStore) UpdateStatus(ctx context.Context, file string, status int) error {
	query := sq.Update(s.GetTable()).
		Set("status", status).
		Where(sq.Eq{"file": file})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *AttachmentStore) ListByResource(ctx context.Context, resourceID string) ([]types.Attachment, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"resource_id": resourceID, "status": types.ATTACHMENT_STATUS_ACTIVE}).
		OrderBy("created_at")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Attachment
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
