package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/golangdaddy/tirecheck/cmd/tirecheck/commands"
	"github.com/golangdaddy/tirecheck/models"
	"github.com/golangdaddy/tirecheck/models/motorcycle"
	"github.com/golangdaddy/tirecheck/ui"
)

// viewCmd lives in main so the commands package builds without a display
func viewCmd(env *commands.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the garage viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := models.NewInventory(env.Src, 0)
			if err != nil {
				return err
			}
			env.Log.WithField("vehicles", g.Count()).Info("opening garage viewer")

			return ui.Run(g, ui.Hooks{
				OnMud: func(m *motorcycle.Motorcycle) {
					env.Log.WithFields(logrus.Fields{"make": m.Make, "model": m.Model}).Info("rode through mud")
				},
				OnRemove: func(v models.Vehicle) {
					env.Log.WithField("vehicle", v.Label()).Info("vehicle removed from garage")
				},
			})
		},
	}
}
