package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Mizzalini/roguelike/internal/domain"
)

const (
	MagicHeader string = `RGRP` // 4 байта
	Version1    uint32 = 1
)

// ReplayFileHeader — это точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type ReplayFileHeader struct {
	Magic              [4]byte // 4 байта
	Version            uint32  // 4 байта
	Seed               int64   // 8 байт
	Timestamp          int64   // 8 байт
	MapWidth           int32   // 4 байта
	MapHeight          int32   // 4 байта
	MaxRooms           int32   // 4 байта
	RoomMinSize        int32   // 4 байта
	RoomMaxSize        int32   // 4 байта
	MaxMonstersPerRoom int32   // 4 байта
	ActionCount        int32   // 4 байта
}

// ActionRecord — запись каждого намерения игрока. Полностью фиксированного
// размера: у намерений нет динамического тела, весь смысл в типе и смещении.
type ActionRecord struct {
	Turn       int32 // 4
	ActionType uint8 // 1
	Dx         int8  // 1
	Dy         int8  // 1
	_          uint8 // 1, выравнивание
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) *ReplayService {
	// Создаем папку если нет
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.Mkdir(dir, 0755)
	}
	return &ReplayService{SaveDir: dir}
}

func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	filename := fmt.Sprintf("replay_%d_%d.rgrp", session.Seed, session.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeBinary(f, session); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	// 1. Подготавливаем и пишем ГЛОБАЛЬНЫЙ ЗАГОЛОВОК
	header := ReplayFileHeader{
		Version:            Version1,
		Seed:               s.Seed,
		Timestamp:          s.Timestamp,
		MapWidth:           int32(s.MapWidth),
		MapHeight:          int32(s.MapHeight),
		MaxRooms:           int32(s.MaxRooms),
		RoomMinSize:        int32(s.RoomMinSize),
		RoomMaxSize:        int32(s.RoomMaxSize),
		MaxMonstersPerRoom: int32(s.MaxMonstersPerRoom),
		ActionCount:        int32(len(s.Actions)),
	}
	copy(header.Magic[:], MagicHeader) // Копируем строку в массив [4]byte

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Пишем действия одним проходом, каждая запись фиксированного размера.
	for _, act := range s.Actions {
		rec := ActionRecord{
			Turn:       int32(act.Turn),
			ActionType: uint8(act.Action),
			Dx:         int8(act.Dx),
			Dy:         int8(act.Dy),
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return err
		}
	}

	return nil
}
