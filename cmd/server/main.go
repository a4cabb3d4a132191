package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mizzalini/roguelike/internal/config"
	"github.com/Mizzalini/roguelike/internal/engine"
	"github.com/Mizzalini/roguelike/internal/infrastructure/storage"
	"github.com/Mizzalini/roguelike/internal/server"
	"github.com/Mizzalini/roguelike/internal/version"
	"github.com/Mizzalini/roguelike/pkg/dungeon"
	"github.com/Mizzalini/roguelike/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var configPath string
	var seed int64
	var replayPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to YAML config")
	flag.Int64Var(&seed, "seed", 0, "World seed override (0 - take from config or clock)")
	flag.StringVar(&replayPath, "replay", "", "Path to .rgrp replay file to simulate")
	flag.Parse()

	logger.Log.Info("Starting dungeon server...")
	logger.Log.Info(version.String())

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Log.Fatal("Config error:", err)
	}

	// РЕЖИМ РЕПЛЕЯ: мир пересоздается из файла и проигрывается без сети.
	if replayPath != "" {
		logger.Log.Info("💿 Mode: Replay Simulation")

		svc := storage.NewReplayService(cfg.Replay.SaveDir)
		session, err := svc.Load(replayPath)
		if err != nil {
			logger.Log.Fatal("Failed to load replay:", err)
		}

		g := engine.Resimulate(session)
		fmt.Printf("seed=%d turns=%d status=%s\n", session.Seed, g.Turn, g.Status.String())
		return
	}

	// Формируем параметры генерации
	params := dungeon.Params{
		MapWidth:           cfg.Game.MapWidth,
		MapHeight:          cfg.Game.MapHeight,
		MaxRooms:           cfg.Game.MaxRooms,
		RoomMinSize:        cfg.Game.RoomMinSize,
		RoomMaxSize:        cfg.Game.RoomMaxSize,
		MaxMonstersPerRoom: cfg.Game.MaxMonstersPerRoom,
		Seed:               cfg.Game.Seed,
	}
	if seed != 0 {
		params.Seed = seed
		logger.Log.Infof("🎲 Using explicit seed: %d", seed)
	} else if params.Seed == 0 {
		params.Seed = time.Now().UnixNano()
		logger.Log.Infof("🎲 Using clock seed: %d", params.Seed)
	}

	var replays *storage.ReplayService
	if cfg.Replay.Enabled {
		replays = storage.NewReplayService(cfg.Replay.SaveDir)
	}

	port := os.Getenv("RG_PORT")
	if port == "" {
		port = fmt.Sprintf("%d", cfg.Server.Port)
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 2. Запуск сервера
	srv := server.New(params, replays, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Infof("Shutting down, %d session(s) active...", srv.Sessions.Count())
	logger.Log.Info("Done.")
}
