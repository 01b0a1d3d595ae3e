package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"carril-bici/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Gestión de la configuración",
}

// configShowCmd represents the show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Muestra la configuración actual",
	Run: func(cmd *cobra.Command, args []string) {
		showConfig(cmd)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}

// showConfig 显示配置信息
func showConfig(cmd *cobra.Command) {
	cfg := config.GetConfig()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Configuración actual:")
	fmt.Fprintf(out, "  Fichero: %s\n", cfg.Path)
	fmt.Fprintf(out, "  Unidades: %s\n", cfg.Display.Units)
	fmt.Fprintf(out, "  Nivel de log: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  Tramos iniciales: %d\n", len(cfg.Segments))

	if verbose {
		fmt.Fprintf(out, "  Título: %s\n", cfg.Registry.Title)
		fmt.Fprintf(out, "  Estado por defecto: %s\n", cfg.Registry.DefaultStatus)
		fmt.Fprintf(out, "  Estilo: %s\n", cfg.Display.Style)
		fmt.Fprintf(out, "  Formato de log: %s\n", cfg.Logging.Format)
		fmt.Fprintf(out, "  Salida de log: %s\n", cfg.Logging.Output)
	}
}
