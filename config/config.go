package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Server   *Server   `json:"server" yaml:"server"`
	Upstream *Upstream `json:"upstream" yaml:"upstream"`
	Session  *Session  `json:"session" yaml:"session"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
	Address  *Address  `json:"address" yaml:"address"`
	Catalog  *Catalog  `json:"catalog" yaml:"catalog"`
}

type Server struct {
	Http    int `json:"http" yaml:"http"`
	Metrics int `json:"metrics" yaml:"metrics"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}

	return &conf
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
