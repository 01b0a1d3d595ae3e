package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"carril-bici/internal/lanes"
	apperrors "carril-bici/internal/pkg/errors"
	"carril-bici/internal/units"
	"carril-bici/internal/util"
)

// 配置文件相关的环境变量
const (
	EnvConfigPath = "CARRIL_BICI_CONFIG"
	EnvUnits      = "CARRIL_BICI_UNITS"
	EnvLogLevel   = "LOG_LEVEL"
)

// 全局配置实例
var Config *AppConfig

// 应用配置结构
type AppConfig struct {
	Registry RegistryConfig  `toml:"registry"`
	Display  DisplayConfig   `toml:"display"`
	Logging  LoggingConfig   `toml:"logging"`
	Segments []SegmentConfig `toml:"segments"`

	// Path 是实际加载的配置文件路径
	Path string `toml:"-"`
}

// 注册表信息，仅用于展示；报告标题与默认状态固定不变
type RegistryConfig struct {
	Title         string `toml:"title"`
	DefaultStatus string `toml:"default_status"`
}

// 显示配置
type DisplayConfig struct {
	Units string `toml:"units"` // km, mi
	Style string `toml:"style"` // glamour 样式: auto, dark, light, notty
}

// 日志配置
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json, text
	Output string `toml:"output"` // stdout, stderr, file
	File   string `toml:"file"`   // 日志文件路径
}

// 启动时载入的初始路段
type SegmentConfig struct {
	Name     string  `toml:"name"`
	LengthKm float64 `toml:"length_km"`
	Status   string  `toml:"status"` // 可选，为空时保持默认状态
}

// 默认配置内容
const defaultConfig = `# carril-bici 配置文件

[registry]
title = "INFORME DE CARRILES BICI - Bahía de Cádiz"
default_status = "En servicio"

[display]
units = "km"
style = "auto"

[logging]
level = "info"
format = "text"
output = "stderr"
file = ""

[[segments]]
name = "Paseo Marítimo"
length_km = 3.5

[[segments]]
name = "Vía Verde"
length_km = 2.0
`

// 加载配置文件
func LoadConfig(configPath string) error {
	cfg, err := Load(configPath)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Load 解析配置文件并返回结果，不修改全局配置
func Load(configPath string) (*AppConfig, error) {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	// 配置文件不存在时创建默认配置
	if !util.FileExists(configPath) {
		if err := createDefaultConfig(configPath); err != nil {
			return nil, apperrors.WrapError(apperrors.ErrCodeConfigNotFound, "创建默认配置文件失败", err)
		}
		util.Infow("已创建默认配置文件", map[string]interface{}{"path": configPath})
	}

	cfg := defaults()
	meta, err := toml.DecodeFile(configPath, cfg)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrCodeConfigParseFailed, "解析配置文件失败", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		util.Warnw("配置文件中存在未识别的键", map[string]interface{}{"keys": undecoded})
	}

	cfg.Path = configPath
	overrideWithEnv(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaults 返回带默认值的配置
func defaults() *AppConfig {
	return &AppConfig{
		Registry: RegistryConfig{Title: lanes.ReportTitle, DefaultStatus: lanes.DefaultStatus},
		Display: DisplayConfig{Units: units.KM, Style: "auto"},
		Logging: LoggingConfig{Level: "info", Format: "text", Output: "stderr"},
	}
}

// 获取默认配置文件路径
func getDefaultConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	// 优先使用当前目录下的配置文件
	if util.FileExists("carril-bici.toml") {
		return "carril-bici.toml"
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "carril-bici.toml"
	}

	return filepath.Join(homeDir, ".carril-bici", "config.toml")
}

// 创建默认配置文件
func createDefaultConfig(configPath string) error {
	if err := util.EnsureParentDir(configPath); err != nil {
		return err
	}
	return os.WriteFile(configPath, []byte(defaultConfig), 0644)
}

// 使用环境变量覆盖配置
func overrideWithEnv(cfg *AppConfig) {
	if unit := os.Getenv(EnvUnits); unit != "" {
		cfg.Display.Units = strings.ToLower(unit)
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}
}

// 验证配置
func validateConfig(cfg *AppConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	levelValid := false
	for _, level := range validLevels {
		if cfg.Logging.Level == level {
			levelValid = true
			break
		}
	}
	if !levelValid {
		return apperrors.NewErrorWithDetails(apperrors.ErrCodeConfigInvalid, "无效的日志级别", cfg.Logging.Level)
	}

	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return apperrors.NewErrorWithDetails(apperrors.ErrCodeConfigInvalid, "无效的日志格式", cfg.Logging.Format)
	}

	if !units.IsValid(cfg.Display.Units) {
		return apperrors.NewErrorWithDetails(apperrors.ErrCodeConfigInvalid, "无效的长度单位",
			fmt.Sprintf("%s (válidas: %s)", cfg.Display.Units, units.GetValidUnitsString()))
	}

	return nil
}

// BuildRegistry 按配置中的顺序创建并填充路段注册表
func (c *AppConfig) BuildRegistry() (*lanes.Registry, error) {
	reg := lanes.NewRegistry()
	for i, seg := range c.Segments {
		if err := reg.Add(seg.Name, seg.LengthKm); err != nil {
			return nil, apperrors.WrapError(apperrors.ErrCodeConfigInvalid,
				fmt.Sprintf("segments[%d] 无效", i), err)
		}
		if seg.Status != "" {
			if err := reg.UpdateStatus(seg.Name, seg.Status); err != nil {
				return nil, apperrors.WrapError(apperrors.ErrCodeConfigInvalid,
					fmt.Sprintf("segments[%d] 状态无效", i), err)
			}
		}
	}
	return reg, nil
}

// 获取当前配置
func GetConfig() *AppConfig {
	return Config
}
