// =============================================================================
// 📦 FlowLint 配置加载器
// =============================================================================
// 统一配置加载，支持 YAML 文件 + 环境变量覆盖
//
// 使用方法:
//
//	cfg, err := config.NewLoader().
//	    WithConfigPath("flowlint.yaml").
//	    WithEnvPrefix("FLOWLINT").
//	    Load()
//
// 配置优先级: 默认值 → YAML 文件 → 环境变量
// =============================================================================
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BaSui01/flowlint/types"
)

// Config 是 FlowLint 的完整配置结构
type Config struct {
	// Log 日志配置
	Log LogConfig `yaml:"log"`

	// Lint 验证配置
	Lint LintConfig `yaml:"lint"`

	// Metrics 指标配置
	Metrics MetricsConfig `yaml:"metrics"`

	// Telemetry 遥测配置
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别: debug / info / warn / error
	Level string `yaml:"level"`
	// Format 输出格式: json / console
	Format string `yaml:"format"`
}

// LintConfig 验证配置
type LintConfig struct {
	// Concurrency 批量验证的并发度
	Concurrency int `yaml:"concurrency"`
	// FailOn 触发非零退出码的最低严重级别: error / warning / never
	FailOn string `yaml:"fail_on"`
	// SkipNonAI 是否跳过不含 AI 节点的工作流
	SkipNonAI bool `yaml:"skip_non_ai"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	// Enabled 是否启用 Prometheus 指标
	Enabled bool `yaml:"enabled"`
	// Namespace 指标命名空间
	Namespace string `yaml:"namespace"`
}

// TelemetryConfig 遥测配置
type TelemetryConfig struct {
	// Enabled 是否启用 OpenTelemetry 追踪
	Enabled bool `yaml:"enabled"`
	// ServiceName 服务名
	ServiceName string `yaml:"service_name"`
	// Endpoint OTLP gRPC 端点
	Endpoint string `yaml:"endpoint"`
	// Insecure 是否禁用 TLS
	Insecure bool `yaml:"insecure"`
}

// Defaults 返回默认配置
func Defaults() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Lint: LintConfig{
			Concurrency: 4,
			FailOn:      "error",
			SkipNonAI:   true,
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "flowlint",
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			ServiceName: "flowlint",
			Endpoint:    "localhost:4317",
			Insecure:    true,
		},
	}
}

// Loader 配置加载器
type Loader struct {
	configPath string
	envPrefix  string
}

// NewLoader 创建配置加载器
func NewLoader() *Loader {
	return &Loader{envPrefix: "FLOWLINT"}
}

// WithConfigPath 设置 YAML 配置文件路径
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithEnvPrefix 设置环境变量前缀
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// Load 加载配置: 默认值 → YAML 文件 → 环境变量
func (l *Loader) Load() (*Config, error) {
	cfg := Defaults()

	if l.configPath != "" {
		data, err := os.ReadFile(l.configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", l.configPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", l.configPath, err)
		}
	}

	l.applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv 应用环境变量覆盖
func (l *Loader) applyEnv(cfg *Config) {
	l.envString("LOG_LEVEL", &cfg.Log.Level)
	l.envString("LOG_FORMAT", &cfg.Log.Format)
	l.envInt("LINT_CONCURRENCY", &cfg.Lint.Concurrency)
	l.envString("LINT_FAIL_ON", &cfg.Lint.FailOn)
	l.envBool("LINT_SKIP_NON_AI", &cfg.Lint.SkipNonAI)
	l.envBool("METRICS_ENABLED", &cfg.Metrics.Enabled)
	l.envString("METRICS_NAMESPACE", &cfg.Metrics.Namespace)
	l.envBool("TELEMETRY_ENABLED", &cfg.Telemetry.Enabled)
	l.envString("TELEMETRY_SERVICE_NAME", &cfg.Telemetry.ServiceName)
	l.envString("TELEMETRY_ENDPOINT", &cfg.Telemetry.Endpoint)
	l.envBool("TELEMETRY_INSECURE", &cfg.Telemetry.Insecure)
}

func (l *Loader) envString(key string, dst *string) {
	if v, ok := os.LookupEnv(l.envPrefix + "_" + key); ok {
		*dst = v
	}
}

func (l *Loader) envInt(key string, dst *int) {
	if v, ok := os.LookupEnv(l.envPrefix + "_" + key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func (l *Loader) envBool(key string, dst *bool) {
	if v, ok := os.LookupEnv(l.envPrefix + "_" + key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// Validate 校验配置取值
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return types.NewError(types.ErrInvalidConfig, fmt.Sprintf("invalid log level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return types.NewError(types.ErrInvalidConfig, fmt.Sprintf("invalid log format %q", c.Log.Format))
	}
	if c.Lint.Concurrency < 1 {
		return types.NewError(types.ErrInvalidConfig, fmt.Sprintf("lint concurrency must be at least 1, got %d", c.Lint.Concurrency))
	}
	switch c.Lint.FailOn {
	case "error", "warning", "never":
	default:
		return types.NewError(types.ErrInvalidConfig, fmt.Sprintf("invalid fail_on %q, expected error, warning or never", c.Lint.FailOn))
	}
	return nil
}
