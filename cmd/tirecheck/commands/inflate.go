package commands

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/golangdaddy/tirecheck/models/tire"
)

func inflateCmd(env *Env) *cobra.Command {
	var clean bool
	cmd := &cobra.Command{
		Use:   "inflate PRESSURE",
		Short: "Run the pressure check on a single tire",
		Long: fmt.Sprintf("Builds a tire at PRESSURE PSI and runs the pressure check. Tires below %d PSI\n"+
			"are refilled to %d PSI, anything else is left alone. Use -- before negative values.",
			tire.MinRecommendedPressure, tire.MaxRecommendedPressure),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "pressure %q", args[0])
			}

			tr := tire.New(p, clean)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "before: %s\n", tr)
			tr.CheckAirPressure()
			fmt.Fprintf(out, "after:  %s\n", tr)

			if tr.AirPressure() != p {
				env.Log.WithField("from", p).WithField("to", tr.AirPressure()).Info("tire refilled")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&clean, "clean", false, "start with a clean tire")
	return cmd
}
