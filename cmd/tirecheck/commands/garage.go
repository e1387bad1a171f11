package commands

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/golangdaddy/tirecheck/models"
)

func garageCmd(env *Env) *cobra.Command {
	var (
		capacity int
		find     string
	)
	cmd := &cobra.Command{
		Use:   "garage",
		Short: "Print the demo lineup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if capacity < 0 {
				return errors.Errorf("capacity %d is negative", capacity)
			}
			g, err := models.NewInventory(env.Src, capacity)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if find != "" {
				v, i := g.Find(find)
				if v == nil {
					return errors.Errorf("no vehicle %q in the garage", find)
				}
				fmt.Fprintf(out, "%d. %s\n", i+1, v)
				printMounted(out, v)
				return nil
			}

			fmt.Fprintln(out, g)
			if free := g.RemainingSlots(); free >= 0 {
				fmt.Fprintf(out, "Free slots: %d\n", free)
			}
			for i, v := range g.All() {
				fmt.Fprintf(out, "%d. %s\n", i+1, v)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&capacity, "capacity", 0, "garage capacity (0 = unlimited)")
	cmd.Flags().StringVar(&find, "find", "", `print one vehicle's tires by make and model, e.g. "Ford F-150"`)
	return cmd
}

// printMounted writes one line per tire with position, pressure, cleanliness
// and whether it needs air
func printMounted(out io.Writer, v models.Vehicle) {
	for _, m := range models.MountedTires(v) {
		status := "ok"
		if m.Tire.NeedsAir() {
			status = "needs air"
		}
		fmt.Fprintf(out, "%-12s %3d PSI  %-5s  %s\n", m.Position, m.Tire.AirPressure(), cleanWord(m.Tire.IsClean()), status)
	}
}
