package sqlstore

import (
	"embed"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/learnkeep/learnkeep/app/store"
	"github.com/learnkeep/learnkeep/pkg/register"
	"github.com/learnkeep/learnkeep/pkg/sqlstore"
	"github.com/learnkeep/learnkeep/pkg/types"
)

func init() {
	sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

//go:embed migrations/*.sql
var createTableFiles embed.FS

var provider = &Provider{
	stores: &Stores{},
}

type Provider struct {
	*sqlstore.SqlProvider
	stores *Stores
}

type Stores struct {
	store.ResourceStore
	store.AttachmentStore
}

type RegisterKey struct{}

// NewProvider assembles a provider around an existing connection and
// store set, bypassing the register flow.
func NewProvider(sql *sqlstore.SqlProvider, stores *Stores) *Provider {
	return &Provider{
		SqlProvider: sql,
		stores:      stores,
	}
}

func MustSetup(m sqlstore.ConnectConfig, s ...sqlstore.ConnectConfig) func() *Provider {
	provider.SqlProvider = sqlstore.MustSetupProvider(m, s...)

	for _, f := range register.ResolveFuncHandlers[*Provider](RegisterKey{}) {
		f(provider)
	}

	return func() *Provider {
		return provider
	}
}

// Install 初始化所有数据表
func (p *Provider) Install() error {
	if err := p.ensureMigrationTable(); err != nil {
		return err
	}

	files, err := createTableFiles.ReadDir("migrations")
	if err != nil {
		return err
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		if executed, err := p.isFileExecuted(file.Name()); err != nil {
			return err
		} else if executed {
			continue
		}

		sql, err := createTableFiles.ReadFile("migrations/" + file.Name())
		if err != nil {
			return err
		}

		if _, err = p.SqlProvider.GetMaster().Exec(string(sql)); err != nil {
			return err
		}

		if err = p.markFileExecuted(file.Name()); err != nil {
			return err
		}
	}
	return nil
}

// ensureMigrationTable 确保迁移记录表存在
func (p *Provider) ensureMigrationTable() error {
	createTableSQL := `
CREATE TABLE IF NOT EXISTS ` + types.TABLE_PREFIX + `schema_migrations (
    filename VARCHAR(255) PRIMARY KEY,
    executed_at BIGINT NOT NULL
);`
	_, err := p.SqlProvider.GetMaster().Exec(createTableSQL)
	return err
}

func (p *Provider) isFileExecuted(filename string) (bool, error) {
	var count int
	err := p.SqlProvider.GetReplica().Get(&count,
		"SELECT COUNT(*) FROM "+types.TABLE_PREFIX+"schema_migrations WHERE filename = $1", filename)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (p *Provider) markFileExecuted(filename string) error {
	_, err := p.SqlProvider.GetMaster().Exec(
		"INSERT INTO "+types.TABLE_PREFIX+"schema_migrations (filename, executed_at) VALUES ($1, $2) ON CONFLICT (filename) DO NOTHING",
		filename, time.Now().Unix())
	return err
}

func (p *Provider) ResourceStore() store.ResourceStore {
	return p.stores.ResourceStore
}

func (p *Provider) AttachmentStore() store.AttachmentStore {
	return p.stores.AttachmentStore
}
