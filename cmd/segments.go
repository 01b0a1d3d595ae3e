package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"carril-bici/internal/config"
	"carril-bici/internal/ui"
	"carril-bici/internal/units"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista los tramos en orden de alta",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		unit := config.GetConfig().Display.Units
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderList(registry, unit))
	},
}

// totalCmd represents the total command
var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Muestra la longitud total de los tramos",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		unit := config.GetConfig().Display.Units
		fmt.Fprintln(cmd.OutOrStdout(), units.Format(registry.TotalLength(), unit))
	},
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status <tramo>",
	Short: "Consulta el estado de un tramo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := registry.Status(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(totalCmd)
	rootCmd.AddCommand(statusCmd)
}
