// =============================================================================
// FlowLint 主入口
// =============================================================================
// AI 工作流语义验证 CLI
//
// 使用方法:
//
//	flowlint check workflow.json            # 验证单个工作流
//	flowlint check a.json b.json c.json     # 批量验证
//	flowlint check --format json *.json     # 机器可读输出
//	flowlint check --config flowlint.yaml   # 指定配置文件
//	flowlint version                        # 显示版本信息
// =============================================================================

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BaSui01/flowlint/config"
	"github.com/BaSui01/flowlint/internal/metrics"
	"github.com/BaSui01/flowlint/internal/telemetry"
	"github.com/BaSui01/flowlint/lint"
	"github.com/BaSui01/flowlint/types"
)

// 版本信息（构建时注入）
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check":
		os.Exit(runCheck(os.Args[2:]))
	case "version":
		fmt.Printf("flowlint %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`flowlint - semantic validator for AI agent workflows

Usage:
  flowlint check [flags] <workflow.json> [more files...]
  flowlint version

Flags for check:
  --config string   path to YAML config file
  --format string   output format: text or json (default "text")
  --quiet           only print error-severity diagnostics`)
}

func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := fs.String("config", "", "path to YAML config file")
	format := fs.String("format", "text", "output format: text or json")
	quiet := fs.Bool("quiet", false, "only print error-severity diagnostics")
	_ = fs.Parse(args)

	paths := fs.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "check: no workflow files given")
		return 1
	}

	cfg, err := config.NewLoader().WithConfigPath(*configPath).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	logger, err := buildLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.Init(cfg.Telemetry, logger)
	if err != nil {
		logger.Error("init telemetry", zap.Error(err))
		return 1
	}
	defer func() { _ = providers.Shutdown(context.Background()) }()

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Metrics.Namespace, logger)
	}

	runner := lint.NewRunner(logger, collector, cfg.Lint.Concurrency).SkipNonAI(cfg.Lint.SkipNonAI)
	results, err := runner.Run(ctx, paths)
	if err != nil {
		logger.Error("lint run aborted", zap.Error(err))
		return 1
	}

	switch *format {
	case "json":
		renderJSON(os.Stdout, results)
	default:
		renderText(os.Stdout, results, *quiet)
	}

	return exitCode(results, cfg.Lint.FailOn)
}

// exitCode maps batch results to the process exit status according to
// the configured fail_on threshold.
func exitCode(results []lint.Result, failOn string) int {
	for _, res := range results {
		if res.Err != nil {
			return 1
		}
		switch failOn {
		case "error":
			if res.Diagnostics.HasErrors() {
				return 1
			}
		case "warning":
			if res.Diagnostics.HasErrors() || res.Diagnostics.CountBySeverity(types.SeverityWarning) > 0 {
				return 1
			}
		}
	}
	return 0
}

func buildLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	var zcfg zap.Config
	if cfg.Format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
