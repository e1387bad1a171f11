package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/golangdaddy/tirecheck/models/car"
)

func carCmd(env *Env) *cobra.Command {
	var report bool
	cmd := &cobra.Command{
		Use:   "car MAKE MODEL",
		Short: "Build a car and print its tires",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := car.NewCar(args[0], args[1], env.Src)
			env.Log.WithFields(logrus.Fields{"make": c.Make, "model": c.Model}).Info("car delivered")

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, c)
			if report {
				printMounted(out, c)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&report, "report", false, "print one line per tire")
	return cmd
}

func cleanWord(clean bool) string {
	if clean {
		return "clean"
	}
	return "dirty"
}
