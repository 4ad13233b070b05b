package cli

import (
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"markethealth-api/internal/config"
)

// ConfigSummaryLines returns human readable lines describing the loaded app config.
func ConfigSummaryLines(cfg *config.Config) []string {
	if cfg == nil {
		return []string{"Configuration: <nil>"}
	}

	dashboard := "built-in defaults"
	if cfg.Dashboard.File != "" {
		dashboard = cfg.Dashboard.File
	}

	return []string{
		fmt.Sprintf("Environment: %s", cfg.Env),
		fmt.Sprintf("Data file: %s", cfg.DataFilePath()),
		fmt.Sprintf("Dashboard config: %s", dashboard),
		fmt.Sprintf("Figure cache TTL (short/medium/long): %ds / %ds / %ds",
			cfg.TTL.Short, cfg.TTL.Medium, cfg.TTL.Long),
	}
}

// LogConfigSummary emits the configuration summary using logx.
func LogConfigSummary(cfg *config.Config) {
	lines := ConfigSummaryLines(cfg)
	if len(lines) == 0 {
		return
	}
	logx.Info("configuration summary")
	for _, line := range lines {
		logx.Infof("config • %s", line)
	}
}
