// Command worktech runs read-only lookups against a WorkTech database and
// prints the results as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	worktech "github.com/fekuna/worktech-api"
	"github.com/fekuna/worktech-api/config"
	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const usage = `usage: worktech [flags] <command> [args]

commands:
  workorder <number>               work order by number
  resources <number>               resources on a work order
  resources-on <yyyy-mm-dd>        resources starting on a date
  account <number> [object code]   resolved account number
  job <job id>                     job by id
  item <item id>                   resource item by id
  equipment [equipment id]         all equipment, or one item
  employees                        active employees
  timecodes [employee number]      time codes, or an employee's recent ones
`

func main() {
	os.Exit(run(os.Args[1:], worktech.Open))
}

type opener func(cfg *config.Config, log logger.ZapLogger) (*worktech.Client, error)

// run returns the process exit code so deferred cleanup always happens.
func run(args []string, open opener) int {
	fs := flag.NewFlagSet("worktech", flag.ContinueOnError)
	timeout := fs.Duration("timeout", 30*time.Second, "overall deadline")
	days := fs.Int("days", 30, "timesheet age in days for timecodes <employee>")
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect
	client, err := open(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to open WorkTech client", zap.Error(err))
		return 1
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	// 4. Run
	result, err := execute(ctx, client, fs.Args(), *days)
	if err != nil {
		appLogger.Error("Command failed", zap.String("command", fs.Arg(0)), zap.Error(err))
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		appLogger.Error("Failed to write result", zap.Error(err))
		return 1
	}
	return 0
}

func execute(ctx context.Context, client *worktech.Client, args []string, days int) (interface{}, error) {
	cmd, rest := args[0], args[1:]
	arg := func(i int) string {
		if i < len(rest) {
			return rest[i]
		}
		return ""
	}

	switch cmd {
	case "workorder":
		if err := need(cmd, rest, 1); err != nil {
			return nil, err
		}
		return client.GetWorkOrderByWorkOrderNumber(ctx, arg(0))
	case "resources":
		if err := need(cmd, rest, 1); err != nil {
			return nil, err
		}
		return client.GetWorkOrderResourcesByWorkOrderNumber(ctx, arg(0))
	case "resources-on":
		if err := need(cmd, rest, 1); err != nil {
			return nil, err
		}
		return client.GetWorkOrderResourcesByStartDate(ctx, arg(0))
	case "account":
		if err := need(cmd, rest, 1); err != nil {
			return nil, err
		}
		return client.ResolveAccountNumber(ctx, arg(0), arg(1))
	case "job":
		if err := need(cmd, rest, 1); err != nil {
			return nil, err
		}
		return client.GetJobByJobID(ctx, arg(0))
	case "item":
		if err := need(cmd, rest, 1); err != nil {
			return nil, err
		}
		return client.GetResourceItemByItemID(ctx, arg(0))
	case "equipment":
		if len(rest) == 0 {
			return client.GetEquipment(ctx, &worktech.EquipmentFilters{})
		}
		return client.GetEquipmentByEquipmentID(ctx, arg(0), true)
	case "employees":
		active := true
		return client.GetEmployees(ctx, &worktech.EmployeeFilters{IsActive: &active})
	case "timecodes":
		if len(rest) == 0 {
			return client.GetTimeCodes(ctx)
		}
		return client.GetEmployeeTimeCodes(ctx, arg(0), days, true)
	default:
		return nil, fmt.Errorf("unknown command %q", cmd)
	}
}

func need(cmd string, args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("%s needs %d argument(s)", cmd, n)
	}
	return nil
}
