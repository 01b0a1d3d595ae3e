package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"carril-bici/internal/config"
	"carril-bici/internal/lanes"
	apperrors "carril-bici/internal/pkg/errors"
	"carril-bici/internal/units"
	"carril-bici/internal/util"
)

var (
	// configPath 是配置文件的路径
	configPath string
	// verbose 标志用于启用详细输出
	verbose bool
	// registry 是本次运行使用的路段注册表，由配置中的初始路段构建
	registry *lanes.Registry
)

// rootCmd 代表没有调用子命令时的基础命令
var rootCmd = &cobra.Command{
	Use:   "carril-bici",
	Short: "Gestión de los carriles bici de la Bahía de Cádiz",
	Long: `carril-bici mantiene un registro en memoria de los tramos de carril bici,
su longitud en kilómetros y su estado, y genera informes sobre ellos.

Los tramos iniciales se leen de la sección [[segments]] del fichero de configuración.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		showStatus(cmd)
		return nil
	},
}

// Execute 将所有子命令添加到根命令并适当设置标志。
// 这是由 main.main() 调用的。它只需要对 rootCmd 调用一次。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		apperrors.HandleError(err)
		fmt.Fprintln(os.Stderr, apperrors.GetUserFriendlyMessage(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "ruta del fichero de configuración (por defecto: $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "salida detallada")
}

// initializeApp 初始化应用
func initializeApp() error {
	// 1. 加载配置文件
	if err := config.LoadConfig(configPath); err != nil {
		return err
	}
	cfg := config.GetConfig()

	// 2. 根据verbose标志调整日志级别
	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}

	// 3. 初始化日志系统
	if err := util.InitLogger(logLevel, cfg.Logging.Format, cfg.Logging.Output, cfg.Logging.File); err != nil {
		return apperrors.WrapError(apperrors.ErrCodeInitializationFailed, "日志系统初始化失败", err)
	}

	// 4. 构建路段注册表
	reg, err := cfg.BuildRegistry()
	if err != nil {
		return err
	}
	registry = reg

	util.Debugw("注册表初始化完成", map[string]interface{}{
		"config_path": cfg.Path,
		"segments":    registry.Len(),
		"units":       cfg.Display.Units,
	})
	return nil
}

// showStatus 显示注册表概况
func showStatus(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	unit := config.GetConfig().Display.Units

	fmt.Fprintf(out, "Tramos registrados: %d\n", registry.Len())
	fmt.Fprintf(out, "Longitud total: %s\n", units.Format(registry.TotalLength(), unit))
	fmt.Fprintln(out, "\nUse 'carril-bici --help' para ver los comandos disponibles")
}
