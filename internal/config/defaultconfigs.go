package config

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		Server: ServerConfig{
			Listen:         ":3000",
			AllowedOrigins: []string{"http://localhost:5173"},
			WSReadBuffer:   1024,
			WSWriteBuffer:  1024,
		},
		Log: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
