package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile = "chessrules/config.json"
)

// ListenEnv overrides Server.Listen when set.
const ListenEnv = "CHESSRULES_LISTEN"

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ServerConfig struct {
	Listen         string   `json:"listen"`
	AllowedOrigins []string `json:"allowed_origins"`
	WSReadBuffer   int      `json:"ws_read_buffer"`
	WSWriteBuffer  int      `json:"ws_write_buffer"`
}

type LogConfig struct {
	Level       string `json:"level"`
	Development bool   `json:"development"`
}

type Config struct {
	Server ServerConfig `json:"server"`
	Log    LogConfig    `json:"log"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	config.Server.AllowedOrigins = append([]string(nil), DefaultConfig.Server.AllowedOrigins...)

	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if listen := os.Getenv(ListenEnv); listen != "" {
		config.Server.Listen = listen
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return &InvalidConfig{"server.listen must not be empty"}
	}
	if c.Server.WSReadBuffer <= 0 || c.Server.WSWriteBuffer <= 0 {
		return &InvalidConfig{"websocket buffer sizes must be positive"}
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return nil
}

// Origins is the comma separated form the CORS middleware expects.
func (c *Config) Origins() string {
	return strings.Join(c.Server.AllowedOrigins, ", ")
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
