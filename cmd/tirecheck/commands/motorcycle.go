package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/golangdaddy/tirecheck/models/motorcycle"
)

func motorcycleCmd(env *Env) *cobra.Command {
	var mud bool
	cmd := &cobra.Command{
		Use:     "motorcycle MAKE MODEL",
		Aliases: []string{"moto"},
		Short:   "Build a motorcycle and print its tires",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := motorcycle.NewMotorcycle(args[0], args[1], env.Src)
			fields := logrus.Fields{"make": m.Make, "model": m.Model}
			env.Log.WithFields(fields).Info("motorcycle delivered")

			if mud {
				m.RideThroughMud()
				env.Log.WithFields(fields).Info("rode through mud")
			}
			fmt.Fprintln(cmd.OutOrStdout(), m)
			return nil
		},
	}
	cmd.Flags().BoolVar(&mud, "mud", false, "ride through mud before printing")
	return cmd
}
