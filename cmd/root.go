/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/allbin/ptt"
	"github.com/allbin/ptt/internal/config"
	"github.com/allbin/ptt/internal/ioport"
	"github.com/allbin/ptt/internal/logging"
)

// version is set at build time with -ldflags "-X github.com/allbin/ptt/cmd.version=..."
var version = "1.4.0"

// app carries what the commands share for one invocation.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	env     *viper.Viper
	openBus func() ptt.Bus
	plain   bool // no terminal styling

	exitCode int // set when help or the version banner was printed
}

func newApp() *app {
	return &app{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		env:     config.NewEnv(),
		openBus: func() ptt.Bus { return ioport.NewDevPort() },
	}
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	return newApp().execute(os.Args[1:])
}

func (a *app) execute(args []string) int {
	root := a.newRootCmd()
	root.SetArgs(args)

	cmd, err := root.ExecuteC()
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		if errors.Is(err, ptt.ErrUsage) && cmd != nil {
			fmt.Fprint(a.stderr, cmd.UsageString())
		}
		return ptt.ExitCode(err)
	}
	return a.exitCode
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ptt [flags] [value]",
		Short: "Key a radio through the DTR/RTS lines of a legacy serial port",
		Long: `Set or clear the DTR and/or RTS line of an 8250 compatible serial port
by writing its Modem Control Register directly through I/O port access.
This keys a radio transmitter wired to the port (push-to-talk).

Only the selected line bits are changed; the rest of the register is
preserved. Raw port access needs root or CAP_SYS_RAWIO.

Settings are taken from, in increasing order of precedence: built-in
defaults, the configuration file (ptt.conf in the working directory or
--file), PTT_* environment variables, and the command line.

Examples:
  sudo ptt 1                      # key the default port and lines
  sudo ptt 0                      # unkey
  sudo ptt --port 1 --line RTS 1  # key RTS on /dev/ttyS1
  sudo ptt -d /dev/ttyS2 -l DTR 0

<value> is an integer; odd values key (ON), even values unkey (OFF).`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Root().Name(), version)
				a.exitCode = ptt.ExitHelp
				return nil
			}
			state, err := config.FromArgs(args)
			if err != nil {
				return err
			}
			return a.run(cmd, state)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	config.RegisterFlags(root.PersistentFlags())
	root.Flags().BoolP("version", "v", false, "Print the version and exit")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ptt.ErrUsage, err)
	})

	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		defaultHelp(cmd, args)
		a.exitCode = ptt.ExitHelp
	})

	root.AddCommand(
		a.newLineCmd(ptt.LineDTR),
		a.newLineCmd(ptt.LineRTS),
		a.newStatusCmd(),
		a.newPortsCmd(),
	)
	return root
}

// setup resolves the configuration and builds the logger and controller.
// The returned cleanup closes the bus and flushes the logger.
func (a *app) setup(cmd *cobra.Command, overrides ...config.Layer) (ptt.Config, *ptt.Controller, func(), error) {
	loaded, err := config.Load(cmd.Flags(), a.env, overrides...)
	if err != nil {
		return ptt.Config{}, nil, nil, err
	}
	cfg := loaded.Config

	log, err := logging.New(cfg, a.stderr)
	if err != nil {
		return ptt.Config{}, nil, nil, fmt.Errorf("%w: %w", ptt.ErrConfiguration, err)
	}
	if loaded.FileLoaded {
		log.Info("config loaded", zap.String("file", loaded.File))
	} else {
		log.Debug("no config file, using defaults", zap.String("file", loaded.File))
	}
	log.Debug("effective configuration",
		zap.Int("port", cfg.Port),
		zap.String("device", cfg.Device),
		zap.Stringer("line", cfg.Line),
		zap.Bool("state", cfg.State),
		zap.Bool("verbose", cfg.Verbose),
		zap.Bool("quiet", cfg.Quiet),
		zap.Int("level", cfg.Level),
		zap.Int("lines", cfg.Lines))

	bus := a.openBus()
	if logging.Tracing(cfg) {
		bus = ioport.NewTrace(bus, log)
	}

	opts := []ptt.ControllerOption{
		ptt.WithOutput(cmd.OutOrStdout()),
		ptt.WithLogger(log),
	}
	if a.plain {
		opts = append(opts, ptt.WithPlainOutput())
	}

	cleanup := func() {
		if err := bus.Close(); err != nil {
			log.Warn("closing I/O port", zap.Error(err))
		}
		_ = log.Sync()
	}
	return cfg, ptt.NewController(bus, opts...), cleanup, nil
}

// run sets the configured lines to the configured state.
func (a *app) run(cmd *cobra.Command, overrides ...config.Layer) error {
	cfg, ctrl, cleanup, err := a.setup(cmd, overrides...)
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = ctrl.Run(cfg)
	return err
}

// usageArgs wraps a cobra argument validator so its failures are usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ptt.ErrUsage, err)
		}
		return nil
	}
}
