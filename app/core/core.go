package core

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/learnkeep/learnkeep/app/store/sqlstore"
	"github.com/learnkeep/learnkeep/pkg/utils"
)

type Core struct {
	cfg CoreConfig

	stores      func() *sqlstore.Provider
	fileStorage FileStorage
	httpEngine  *gin.Engine
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28,   //days
				Compress:   true, // disabled by default
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	utils.SetupIDWorker(1)

	core := New(cfg, sqlstore.MustSetup(cfg.Postgres), SetupObjectStorage(cfg.ObjectStorage))

	// bucket bootstrap is best effort, a failure here only disables
	// attachments until the next restart
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := core.fileStorage.EnsureBucket(ctx); err != nil {
		slog.Error("Failed to ensure object storage bucket", slog.String("error", err.Error()))
	}

	return core
}

// New wires a Core from already constructed dependencies.
func New(cfg CoreConfig, stores func() *sqlstore.Provider, fileStorage FileStorage) *Core {
	return &Core{
		cfg:         cfg,
		stores:      stores,
		fileStorage: fileStorage,
		httpEngine:  gin.New(),
	}
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Store() *sqlstore.Provider {
	return s.stores()
}

func (s *Core) FileStorage() FileStorage {
	return s.fileStorage
}

// Install runs the database migrations.
func (s *Core) Install() error {
	return s.Store().Install()
}
