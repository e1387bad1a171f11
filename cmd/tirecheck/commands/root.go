package commands

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/golangdaddy/tirecheck/models/rng"
)

// Env is the state shared by one command tree. The root's persistent flags
// fill it in before any subcommand runs.
type Env struct {
	Seed     uint64
	LogLevel string

	Src rng.Source
	Log *logrus.Logger
}

// Execute runs the CLI. Extra commands are attached to the root, which lets
// main add the graphical viewer without pulling it into this package.
func Execute(extra ...func(*Env) *cobra.Command) error {
	return NewRootCmd(extra...).Execute()
}

// NewRootCmd builds the command tree
func NewRootCmd(extra ...func(*Env) *cobra.Command) *cobra.Command {
	env := &Env{Log: logrus.New()}

	root := &cobra.Command{
		Use:           "tirecheck",
		Short:         "Inspect tire pressure on cars and motorcycles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(env.LogLevel)
			if err != nil {
				return errors.Wrap(err, "log level")
			}
			env.Log.SetLevel(lvl)
			env.Log.SetOutput(cmd.ErrOrStderr())

			env.Src = rng.New(env.Seed)
			env.Log.WithField("seed", env.Seed).Debug("random source ready")
			return nil
		},
	}

	root.PersistentFlags().Uint64Var(&env.Seed, "seed", 0, "seed for tire pressures (0 = random)")
	root.PersistentFlags().StringVar(&env.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(carCmd(env), motorcycleCmd(env), inflateCmd(env), garageCmd(env))
	for _, newCmd := range extra {
		root.AddCommand(newCmd(env))
	}
	return root
}
