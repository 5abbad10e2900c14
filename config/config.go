// Package config 加载命令行运行配置。
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrConfig 配置错误
var ErrConfig = errors.New("config error")

// DefaultFile 默认配置文件
const DefaultFile = "kirchhoff.yaml"

// 输出格式
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatHTML = "html"
	FormatPNG  = "png"
	FormatSVG  = "svg"
)

// Config 运行配置
type Config struct {
	Input  string    `yaml:"input" validate:"required"`                      // 网表文件
	Format string    `yaml:"format" validate:"oneof=text json html png svg"` // 输出格式
	Output string    `yaml:"output"`                                         // 输出文件,为空输出到标准输出
	Log    LogConfig `yaml:"log"`                                            // 日志
	Plot   Plot      `yaml:"plot"`                                           // 图像
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"` // 日志级别
	Color bool   `yaml:"color"`                                        // 彩色输出
}

// Plot 图像配置,单位厘米
type Plot struct {
	Width  float64 `yaml:"width" validate:"gt=0"`  // 宽度
	Height float64 `yaml:"height" validate:"gt=0"` // 高度
}

// Default 默认配置
func Default() *Config {
	return &Config{
		Input:  "./input.txt",
		Format: FormatText,
		Log:    LogConfig{Level: "info", Color: true},
		Plot:   Plot{Width: 16, Height: 12},
	}
}

// Load 读取配置文件,文件不存在时使用默认配置
func Load(filename string) (*Config, error) {
	config := Default()
	data, err := os.ReadFile(filename)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return config, nil
	case err != nil:
		return nil, fmt.Errorf("%w: 读取 %s 失败: %v", ErrConfig, filename, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: 解析 %s 失败: %v", ErrConfig, filename, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate 校验配置
func (config *Config) Validate() error {
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return nil
}

// Level 日志级别
func (config *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(config.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
