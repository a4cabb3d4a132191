package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Server Server `mapstructure:"server"`
	Game   Game   `mapstructure:"game"`
	Replay Replay `mapstructure:"replay"`
}

type Server struct {
	Port  int  `mapstructure:"port"`
	Debug bool `mapstructure:"debug"`
}

type Game struct {
	MapWidth           int   `mapstructure:"map_width"`
	MapHeight          int   `mapstructure:"map_height"`
	MaxRooms           int   `mapstructure:"max_rooms"`
	RoomMinSize        int   `mapstructure:"room_min_size"`
	RoomMaxSize        int   `mapstructure:"room_max_size"`
	MaxMonstersPerRoom int   `mapstructure:"max_monsters_per_room"`
	Seed               int64 `mapstructure:"seed"` // 0 — сид берется из времени запуска
}

type Replay struct {
	Enabled bool   `mapstructure:"enabled"`
	SaveDir string `mapstructure:"save_dir"`
}

// Load reads config from the given YAML file path. A missing file is not an
// error: the defaults describe a fully playable dungeon on their own.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.debug", false)
	v.SetDefault("game.map_width", 80)
	v.SetDefault("game.map_height", 45)
	v.SetDefault("game.max_rooms", 30)
	v.SetDefault("game.room_min_size", 6)
	v.SetDefault("game.room_max_size", 10)
	v.SetDefault("game.max_monsters_per_room", 2)
	v.SetDefault("game.seed", 0)
	v.SetDefault("replay.enabled", true)
	v.SetDefault("replay.save_dir", "./replays")

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			// Файла нет — работаем на дефолтах.
		} else {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
