package core

import (
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	conf.mustValidate()
	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	c.mustValidate()
	return c
}

type CoreConfig struct {
	Addr          string              `toml:"addr"`
	Log           Log                 `toml:"log"`
	Postgres      PGConfig            `toml:"postgres"`
	ObjectStorage ObjectStorageDriver `toml:"object_storage"`
}

// mustValidate halts startup when a required remote connection value is
// missing. Nothing else in the system is treated as fatal.
func (c *CoreConfig) mustValidate() {
	if c.Postgres.DSN == "" {
		panic("missing required postgres dsn configuration")
	}
	switch c.ObjectStorage.Driver {
	case "s3":
		s3Cfg := c.ObjectStorage.S3
		if s3Cfg == nil || s3Cfg.Endpoint == "" || s3Cfg.AccessKey == "" {
			panic("missing required object storage endpoint or access key configuration")
		}
	case "local":
		if c.ObjectStorage.Local == nil || c.ObjectStorage.Local.Root == "" {
			panic("missing required local object storage root configuration")
		}
	default:
		panic("unknown object storage driver: " + c.ObjectStorage.Driver)
	}
}

type ObjectStorageDriver struct {
	StaticDomain string       `toml:"static_domain"`
	Driver       string       `toml:"driver"`
	S3           *S3Config    `toml:"s3"`
	Local        *LocalConfig `toml:"local"`
}

type S3Config struct {
	Bucket       string `toml:"bucket"`
	Region       string `toml:"region"`
	Endpoint     string `toml:"endpoint"`
	AccessKey    string `toml:"access_key"`
	SecretKey    string `toml:"secret_key"`
	UsePathStyle bool   `toml:"use_path_style"`
}

type LocalConfig struct {
	Root string `toml:"root"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("LEARNKEEP_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.ObjectStorage.FromENV()
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("LEARNKEEP_API_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

func (o *ObjectStorageDriver) FromENV() {
	o.Driver = os.Getenv("LEARNKEEP_OBJECT_STORAGE_DRIVER")
	o.StaticDomain = os.Getenv("LEARNKEEP_OBJECT_STORAGE_STATIC_DOMAIN")
	switch o.Driver {
	case "s3":
		o.S3 = &S3Config{
			Bucket:       os.Getenv("LEARNKEEP_S3_BUCKET"),
			Region:       os.Getenv("LEARNKEEP_S3_REGION"),
			Endpoint:     os.Getenv("LEARNKEEP_S3_ENDPOINT"),
			AccessKey:    os.Getenv("LEARNKEEP_S3_ACCESS_KEY"),
			SecretKey:    os.Getenv("LEARNKEEP_S3_SECRET_KEY"),
			UsePathStyle: os.Getenv("LEARNKEEP_S3_PATH_STYLE") == "true",
		}
	case "local":
		o.Local = &LocalConfig{
			Root: os.Getenv("LEARNKEEP_LOCAL_STORAGE_ROOT"),
		}
	}
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("LEARNKEEP_LOG_LEVEL")
	l.Path = os.Getenv("LEARNKEEP_LOG_PATH")
}

func (l Log) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
