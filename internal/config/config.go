package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"

	"markethealth-api/pkg/charts"
	"markethealth-api/pkg/confkit"
)

// CacheTTL holds figure cache lifetimes in seconds.
type CacheTTL struct {
	Short  int `json:",default=10"`
	Medium int `json:",default=60"`
	Long   int `json:",default=300"`
}

type Config struct {
	rest.RestConf
	// Env indicates the running environment: test | dev | prod.
	Env string `json:",default=dev"`
	// DataFile is the pre-computed metrics CSV the whole dashboard reads.
	DataFile string   `json:",default=data/enriched_btc_eth_metrics_2024_current.csv"`
	TTL      CacheTTL `json:",optional"`

	// Dashboard holds display settings (correction band, table depth,
	// export file name) in a side YAML file.
	Dashboard confkit.Section[charts.Config] `json:",optional"`

	mainPath string
	baseDir  string
}

func (c *Config) IsTestEnv() bool {
	return c.Env == "test"
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	confkit.LoadDotenvOnce()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}

	var cfg Config
	if err := conf.Load(absPath, &cfg, conf.UseEnv()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", absPath, err)
	}

	cfg.mainPath = absPath
	cfg.baseDir = filepath.Dir(absPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Dashboard.Hydrate(cfg.baseDir, charts.LoadConfig); err != nil {
		return nil, fmt.Errorf("load dashboard config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "", "test", "dev", "prod":
		if strings.TrimSpace(c.Env) == "" {
			c.Env = "dev"
		}
	default:
		return errors.New("config: env must be one of test|dev|prod")
	}
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("config: dataFile is required")
	}
	return c.validateTTL()
}

func (c *Config) validateTTL() error {
	if c.TTL.Short < 0 || c.TTL.Medium < 0 || c.TTL.Long < 0 {
		return errors.New("config: ttl values must not be negative")
	}
	return nil
}

// DataFilePath resolves DataFile against the main config's directory so the
// service behaves the same regardless of the working directory.
func (c *Config) DataFilePath() string {
	if c.baseDir == "" || filepath.IsAbs(c.DataFile) {
		return c.DataFile
	}
	return confkit.ResolvePath(filepath.Dir(c.baseDir), c.DataFile)
}

func (c *Config) MainPath() string {
	return c.mainPath
}

func (c *Config) BaseDir() string {
	return c.baseDir
}
