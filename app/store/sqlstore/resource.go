package sqlstore

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/learnkeep/learnkeep/pkg/register"
	"github.com/learnkeep/learnkeep/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.ResourceStore = NewResourceStore(provider)
	})
}

// ResourceStore 处理 lk_resources 表的操作
type ResourceStore struct {
	CommonFields
}

// NewResourceStore 创建新的 ResourceStore 实例
func NewResourceStore(provider SqlProviderAchieve) *ResourceStore {
	repo := &ResourceStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_RESOURCE)
	repo.SetAllColumns("id", "title", "description", "type", "url", "file_url", "created_at", "updated_at")
	return repo
}

// Create 创建新的资源记录
func (s *ResourceStore) Create(ctx context.Context, data types.Resource) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "title", "description", "type", "url", "file_url", "created_at", "updated_at").
		Values(data.ID, data.Title, data.Description, data.Type, data.URL, data.FileURL, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return err
	}
	return nil
}

// GetResource 根据ID获取资源记录
func (s *ResourceStore) GetResource(ctx context.Context, id string) (*types.Resource, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Resource
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// Update 更新资源记录，零行受影响时返回 sql.ErrNoRows
func (s *ResourceStore) Update(ctx context.Context, id string, data types.UpdateResourceArgs, updatedAt int64) error {
	if updatedAt == 0 {
		updatedAt = time.Now().Unix()
	}
	query := sq.Update(s.GetTable()).
		Set("title", data.Title).
		Set("description", data.Description).
		Set("type", data.Type).
		Set("url", data.URL).
		Set("file_url", data.FileURL).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	result, err := s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete 删除资源记录
func (s *ResourceStore) Delete(ctx context.Context, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// ListResources 获取资源记录列表，按 updated_at 倒序
func (s *ResourceStore) ListResources(ctx context.Context, page, pageSize uint64) ([]types.Resource, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("updated_at DESC")
	if page > 0 && pageSize > 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Resource
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
