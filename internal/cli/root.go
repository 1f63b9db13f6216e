// Package cli implements the xibbaz command-line interface: a thin dispatch
// layer that resolves entity kinds and verbs, parses name:value parameter
// tokens and renders results. All remote work happens in internal/api.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"xibbaz/internal/api"
	"xibbaz/internal/config"
	"xibbaz/internal/metrics"
	"xibbaz/internal/vault"
)

var (
	// Global flags
	cfgFile   string
	apiURL    string
	userFlag  string
	passFlag  string
	verbosity string
	jqExpr    string
	outFormat string

	cfg       *config.Config
	collector *metrics.Collector
)

var rootCmd = &cobra.Command{
	Use:   "xibbaz",
	Short: "Typed command-line client for the Zabbix JSON-RPC API",
	Long: `xibbaz talks to a Zabbix server's JSON-RPC API and gives you typed,
validated, navigable records instead of raw JSON.

Credentials resolve in order: flags, ZABBIX_USER/ZABBIX_PASS environment,
the local vault (see "xibbaz login"), the current OS user.

Refer to the Zabbix API documentation for entities and parameters:
  https://www.zabbix.com/documentation/3.4/manual/api`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		if apiURL != "" {
			cfg.API = apiURL
		}
		if userFlag != "" {
			cfg.User = userFlag
		}
		if passFlag != "" {
			cfg.Password = passFlag
		}
		if verbosity != "" {
			cfg.Logging.Level = verbosity
		}
		if outFormat != "" {
			cfg.Output.Format = outFormat
		}
		setupLogging(cfg.Logging)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if collector != nil && cfg.Metrics.Enabled && cfg.Metrics.PushGateway != "" {
			if err := collector.Push(cfg.Metrics.PushGateway, cfg.Metrics.Job); err != nil {
				logrus.WithError(err).Warn("failed to push metrics")
			}
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file path (default ~/.xibbaz.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Zabbix API endpoint (defaults to ZABBIX_API from environment)")
	rootCmd.PersistentFlags().StringVar(&userFlag, "user", "", "API user name")
	rootCmd.PersistentFlags().StringVar(&passFlag, "password", "", "API password")
	rootCmd.PersistentFlags().StringVarP(&verbosity, "verbosity", "v", "", "Log level: trace, debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().StringVar(&jqExpr, "jq", "", "Process results through a jq program")
	rootCmd.PersistentFlags().StringVarP(&outFormat, "output", "o", "", "Output format: json or yaml")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(triggersCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogging(lc config.LoggingConfig) {
	level, err := logrus.ParseLevel(lc.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	logrus.SetLevel(level)

	if lc.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// newSession builds an unauthenticated session from the effective config.
func newSession() (*api.Session, error) {
	if cfg.API == "" {
		return nil, fmt.Errorf("no API endpoint: set --api, ZABBIX_API or the api config key")
	}
	s := api.NewSession(cfg.API, nil)
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
		s.SetMetrics(collector)
	}
	return s, nil
}

// credentials resolves the user/password pair: flags and environment come in
// through the config overlay, then the vault, then the OS user name.
func credentials() (string, string, error) {
	user := cfg.User
	if user == "" {
		user = os.Getenv("USER")
	}
	if user == "" {
		return "", "", fmt.Errorf("no user: set --user or ZABBIX_USER")
	}
	password := cfg.Password
	if password == "" {
		v, err := vault.Open(cfg.Vault.Path)
		if err != nil {
			return "", "", err
		}
		defer v.Close()
		password, err = v.Get(cfg.Vault.Service, user)
		if err != nil {
			return "", "", err
		}
	}
	if password == "" {
		return "", "", fmt.Errorf("no password for %s: set --password, ZABBIX_PASS or run \"xibbaz login\"", user)
	}
	return user, password, nil
}

// connect builds a session and authenticates it.
func connect() (*api.Session, error) {
	sess, err := newSession()
	if err != nil {
		return nil, err
	}
	user, password, err := credentials()
	if err != nil {
		return nil, err
	}
	ok, err := sess.Login(user, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("invalid credentials for %s", user)
	}
	return sess, nil
}
