// SPDX-License-Identifier: MIT

// Command roadflow routes a batch of vehicles through a congestion-aware city
// map.
//
// Usage:
//
//	roadflow run   [-config file] [-env file] [-accident] [-compare]
//	roadflow serve [-config file] [-env file] [-addr host:port]
//
// run executes one cycle with every strategy in turn and prints the routes.
// serve exposes the session over HTTP until interrupted.
//
// Settings come from the optional JSON config file, then ROADFLOW_* variables
// (a .env file is loaded first when present). Without data.city_map the
// built-in A-F demo map is used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/roadflow/builder"
	"github.com/katalvlaran/roadflow/config"
	"github.com/katalvlaran/roadflow/loader"
	"github.com/katalvlaran/roadflow/server"
	"github.com/katalvlaran/roadflow/simulation"
	"github.com/katalvlaran/roadflow/strategy"
	"github.com/katalvlaran/roadflow/topology"
)

const usage = `usage: roadflow <command> [flags]

commands:
  run     route the batch with every strategy and print the results
  serve   serve the HTTP API
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = runCmd(os.Args[2:], os.Stdout)
	case "serve":
		err = serveCmd(os.Args[2:])
	case "-h", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "roadflow: unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "roadflow: %v\n", err)
		os.Exit(1)
	}
}

type common struct {
	configPath string
	envPath    string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "JSON config file")
	fs.StringVar(&c.envPath, "env", ".env", "dotenv file (ignored when missing)")
}

// setup resolves the configuration and builds the logger and session.
func (c *common) setup() (config.Config, *zap.Logger, *simulation.Session, error) {
	envErr := config.LoadDotEnv(c.envPath)

	cfg, err := config.Resolve(c.configPath)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	if envErr != nil {
		logger.Debug("no dotenv file loaded", zap.String("path", c.envPath), zap.Error(envErr))
	}

	topo, traffic, err := scenario(cfg.Data)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger.Info("scenario loaded",
		zap.String("city_map", cfg.Data.CityMap),
		zap.String("traffic", cfg.Data.Traffic),
		zap.Int("nodes", len(topo.Nodes)),
		zap.Int("roads", len(topo.Roads)),
	)

	opts, err := cfg.Simulation.Options()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	opts = append(opts, simulation.WithLogger(logger))
	sess, err := simulation.New(topo, traffic, opts...)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	return cfg, logger, sess, nil
}

func scenario(d config.Data) (topology.Topology, topology.Traffic, error) {
	if d.CityMap == "" {
		return builder.CityMap(), nil, nil
	}

	return loader.LoadScenario(d.CityMap, d.Traffic)
}

func runCmd(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	var (
		c        common
		accident bool
		compare  bool
	)
	c.register(fs)
	fs.BoolVar(&accident, "accident", false, "close a random road after the first strategy")
	fs.BoolVar(&compare, "compare", false, "print the strategy comparison")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, logger, sess, err := c.setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	for i := range strategy.Kinds() {
		if i > 0 {
			sess.NextStrategy()
		}
		cycle, err := sess.Run()
		if err != nil {
			return err
		}
		printCycle(out, cycle)

		if accident && i == 0 {
			road, ac, err := sess.InjectAccident()
			if err != nil {
				return err
			}
			if ac != nil {
				fmt.Fprintf(out, "accident on %s\n", road)
				printCycle(out, ac)
			}
		}
	}

	if compare {
		cmp, err := sess.Compare()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "comparison:")
		for _, r := range cmp.Runs {
			fmt.Fprintf(out, "  %-12s reached %d/%d  total %.2f  peak x%.2f\n",
				r.Strategy, r.Summary.Reached, r.Summary.Vehicles, r.Summary.TotalCost, r.Traffic.PeakMultiplier)
		}
		fmt.Fprintf(out, "best: %s\n", cmp.Best)
	}

	return nil
}

func printCycle(out io.Writer, c *simulation.Cycle) {
	fmt.Fprintf(out, "cycle %d [%s]\n", c.Seq, c.Strategy)
	for _, r := range c.Results {
		if !r.Reachable() {
			fmt.Fprintf(out, "  %-6s unreachable\n", r.Vehicle)
			continue
		}
		fmt.Fprintf(out, "  %-6s %-16s cost %.2f\n", r.Vehicle, strings.Join(r.Path, " → "), r.Cost)
	}
	fmt.Fprintf(out, "  total %.2f, congested roads %d/%d\n",
		c.Summary.TotalCost, c.Traffic.Congested, c.Traffic.Roads)
}

func serveCmd(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	var (
		c    common
		addr string
	)
	c.register(fs)
	fs.StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, logger, sess, err := c.setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	if addr == "" {
		addr = cfg.Server.Addr
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	opts := []server.Option{server.WithLogger(logger)}
	if len(cfg.Server.AllowOrigins) > 0 {
		opts = append(opts, server.WithAllowOrigins(cfg.Server.AllowOrigins...))
	}
	srv := server.New(sess, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = srv.ListenAndServe(ctx, addr); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("bye")

	return nil
}
