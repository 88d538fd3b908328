package v1

import (
	"context"
	"database/sql"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/learnkeep/learnkeep/app/core"
	"github.com/learnkeep/learnkeep/pkg/errors"
	"github.com/learnkeep/learnkeep/pkg/i18n"
	"github.com/learnkeep/learnkeep/pkg/types"
	"github.com/learnkeep/learnkeep/pkg/utils"
)

type ResourceLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewResourceLogic(ctx context.Context, core *core.Core) *ResourceLogic {
	return &ResourceLogic{
		ctx:  ctx,
		core: core,
	}
}

type SubmitResourceArgs struct {
	Title       string
	Description string
	Type        types.ResourceType
	URL         string
	File        *multipart.FileHeader // new attachment, nil when none selected
}

// CreateResource inserts a new resource. When the attachment upload
// fails the record is still created without it and the returned warning
// key tells the caller to surface a non-blocking notice.
func (l *ResourceLogic) CreateResource(args SubmitResourceArgs) (*types.Resource, string, error) {
	var (
		fileURL string
		warning string
	)

	if args.File != nil {
		uploaded, err := l.uploadAttachment(args.File)
		if err != nil {
			slog.Error("Failed to upload attachment, creating resource without it",
				slog.String("file_name", args.File.Filename), slog.String("error", err.Error()))
			warning = i18n.WARNING_UPLOAD_FAILED
		} else {
			fileURL = uploaded
		}
	}

	now := time.Now().Unix()
	data := types.Resource{
		ID:          utils.GenUniqIDStr(),
		Title:       args.Title,
		Description: args.Description,
		Type:        args.Type,
		URL:         args.URL,
		FileURL:     fileURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().ResourceStore().Create(ctx, data); err != nil {
			return errors.New("ResourceLogic.CreateResource.ResourceStore.Create", i18n.ERROR_INTERNAL, err)
		}
		if fileURL != "" {
			if err := l.core.Store().AttachmentStore().BindResource(ctx, l.storageKey(fileURL), data.ID); err != nil {
				return errors.New("ResourceLogic.CreateResource.AttachmentStore.BindResource", i18n.ERROR_INTERNAL, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return &data, warning, nil
}

// UpdateResource applies an edit to an existing resource. A new
// attachment replaces the stored one: the previous object is deleted
// best effort first, and if the new upload fails the previous reference
// is kept and a warning key is returned.
func (l *ResourceLogic) UpdateResource(id string, args SubmitResourceArgs) (*types.Resource, string, error) {
	exist, err := l.GetResource(id)
	if err != nil {
		return nil, "", err
	}

	var (
		fileURL = exist.FileURL
		warning string
	)

	if args.File != nil {
		if exist.FileURL != "" {
			l.removeAttachment(exist.FileURL)
		}

		uploaded, err := l.uploadAttachment(args.File)
		if err != nil {
			slog.Error("Failed to upload new attachment, keeping previous reference",
				slog.String("resource_id", id), slog.String("error", err.Error()))
			warning = i18n.WARNING_UPLOAD_FAILED
		} else {
			fileURL = uploaded
		}
	}

	updatedAt := time.Now().Unix()
	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		err := l.core.Store().ResourceStore().Update(ctx, id, types.UpdateResourceArgs{
			Title:       args.Title,
			Description: args.Description,
			Type:        args.Type,
			URL:         args.URL,
			FileURL:     fileURL,
		}, updatedAt)
		if err == sql.ErrNoRows {
			return errors.New("ResourceLogic.UpdateResource.ResourceStore.Update", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		if err != nil {
			return errors.New("ResourceLogic.UpdateResource.ResourceStore.Update", i18n.ERROR_INTERNAL, err)
		}

		if fileURL != "" && fileURL != exist.FileURL {
			if err := l.core.Store().AttachmentStore().BindResource(ctx, l.storageKey(fileURL), id); err != nil {
				return errors.New("ResourceLogic.UpdateResource.AttachmentStore.BindResource", i18n.ERROR_INTERNAL, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	updated := *exist
	updated.Title = args.Title
	updated.Description = args.Description
	updated.Type = args.Type
	updated.URL = args.URL
	updated.FileURL = fileURL
	updated.UpdatedAt = updatedAt
	return &updated, warning, nil
}

func (l *ResourceLogic) GetResource(id string) (*types.Resource, error) {
	data, err := l.core.Store().ResourceStore().GetResource(l.ctx, id)
	if err == sql.ErrNoRows {
		return nil, errors.New("ResourceLogic.GetResource.ResourceStore.GetResource", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
	}
	if err != nil {
		return nil, errors.New("ResourceLogic.GetResource.ResourceStore.GetResource", i18n.ERROR_INTERNAL, err)
	}
	return data, nil
}

// ListResources fetches every resource ordered by updated_at descending
// and applies the search and type filters in memory.
func (l *ResourceLogic) ListResources(search string, resourceType string) ([]types.Resource, error) {
	list, err := l.core.Store().ResourceStore().ListResources(l.ctx, types.NO_PAGINATION, types.NO_PAGINATION)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ResourceLogic.ListResources.ResourceStore.ListResources", i18n.ERROR_INTERNAL, err)
	}

	return FilterResources(list, search, resourceType), nil
}

// FilterResources keeps resources whose title or description contains
// the query (case-insensitive) and whose type matches the filter.
// An empty query or a type of "" / "all" is a no-op filter.
func FilterResources(list []types.Resource, search string, resourceType string) []types.Resource {
	query := strings.ToLower(strings.TrimSpace(search))

	return lo.Filter(list, func(item types.Resource, _ int) bool {
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Title), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			return false
		}
		if resourceType != "" && resourceType != "all" && string(item.Type) != resourceType {
			return false
		}
		return true
	})
}

// Delete removes the record and then its attachment. The object delete
// is best effort, a storage failure never resurrects the row.
func (l *ResourceLogic) Delete(id string) error {
	exist, err := l.GetResource(id)
	if err != nil {
		return err
	}

	if err := l.core.Store().ResourceStore().Delete(l.ctx, id); err != nil {
		return errors.New("ResourceLogic.Delete.ResourceStore.Delete", i18n.ERROR_INTERNAL, err)
	}

	if exist.FileURL != "" {
		l.removeAttachment(exist.FileURL)
	}

	return nil
}
