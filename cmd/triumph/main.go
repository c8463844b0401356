// Command triumph is a command-line client for the Triumph API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	triumph "github.com/triumpharcade/triumph-go"
	"github.com/triumpharcade/triumph-go/internal/config"
	"github.com/triumpharcade/triumph-go/internal/logger"
)

// Streams holds the standard streams used by the CLI.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultStreams returns the process's standard streams.
func DefaultStreams() Streams {
	return Streams{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// cli carries state shared by all subcommands.
type cli struct {
	streams    Streams
	v          *viper.Viper
	configFile string
	envFile    string

	cfg *config.Config
	log *zap.Logger
}

func run(args []string, streams Streams) error {
	root := newRootCmd(streams)
	root.SetArgs(args)
	return root.Execute()
}

func newRootCmd(streams Streams) *cobra.Command {
	c := &cli{streams: streams, v: config.NewViper()}

	root := &cobra.Command{
		Use:           "triumph",
		Short:         "Command-line client for the Triumph API",
		Version:       triumph.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
	}
	root.SetIn(streams.Stdin)
	root.SetOut(streams.Stdout)
	root.SetErr(streams.Stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "config file (yaml, json or toml)")
	flags.StringVar(&c.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.String("org", "", "organization id (TRIUMPH_ORGANIZATION)")
	flags.String("api-key", "", "hex-encoded 32-byte API key (TRIUMPH_API_KEY)")
	flags.String("env", "", "environment: production or sandbox (TRIUMPH_ENV)")
	flags.String("base-url", "", "override the environment's base URL (TRIUMPH_BASE_URL)")
	flags.Duration("timeout", 0, "request timeout (TRIUMPH_TIMEOUT)")
	flags.String("log-level", "", "debug, info, warn or error (TRIUMPH_LOG_LEVEL)")
	flags.String("log-format", "", "console or json (TRIUMPH_LOG_FORMAT)")

	for key, flag := range map[string]string{
		"organization": "org",
		"api_key":      "api-key",
		"env":          "env",
		"base_url":     "base-url",
		"timeout":      "timeout",
		"log_level":    "log-level",
		"log_format":   "log-format",
	} {
		_ = c.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		c.newGetCmd(),
		c.newPostCmd(),
		c.newSealCmd(),
		c.newOpenCmd(),
		c.newKeygenCmd(),
	)

	return root
}

// setup loads configuration and builds the logger.
func (c *cli) setup() error {
	cfg, err := config.Load(config.Options{
		Viper:      c.v,
		ConfigFile: c.configFile,
		EnvFile:    c.envFile,
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c.cfg = cfg

	log, err := logger.New(c.streams.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	c.log = log

	c.log.Debug("config loaded", zap.Any("config", cfg.Redacted()))
	return nil
}

// client builds an API client from the loaded configuration.
func (c *cli) client() (*triumph.Client, error) {
	if err := c.cfg.RequireCredentials(); err != nil {
		return nil, err
	}
	opts := append(c.cfg.ClientOptions(), triumph.WithLogger(c.log))
	return triumph.New(c.cfg.Configuration(), opts...)
}

// requestContext returns a context bounded by the request timeout plus a margin
// for envelope processing.
func (c *cli) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, c.cfg.Timeout+5*time.Second)
}

// input returns args[i] unless it is missing or "-", in which case stdin is read.
func (c *cli) input(args []string, i int) (string, error) {
	if len(args) > i && args[i] != "-" {
		return args[i], nil
	}
	data, err := io.ReadAll(c.streams.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.streams.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func fatal(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "triumph: "+format+"\n", args...)
	os.Exit(1)
}
