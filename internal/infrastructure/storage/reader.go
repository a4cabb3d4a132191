package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/Mizzalini/roguelike/internal/domain"
)

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Читаем заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	session := &domain.ReplaySession{
		Seed:               header.Seed,
		Timestamp:          header.Timestamp,
		MapWidth:           int(header.MapWidth),
		MapHeight:          int(header.MapHeight),
		MaxRooms:           int(header.MaxRooms),
		RoomMinSize:        int(header.RoomMinSize),
		RoomMaxSize:        int(header.RoomMaxSize),
		MaxMonstersPerRoom: int(header.MaxMonstersPerRoom),
		Actions:            make([]domain.ReplayAction, header.ActionCount),
	}

	// 2. Читаем Actions
	for i := 0; i < int(header.ActionCount); i++ {
		var rec ActionRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, fmt.Errorf("truncated replay: expected %d actions, got %d", header.ActionCount, i)
			}
			return nil, err
		}

		session.Actions[i] = domain.ReplayAction{
			Turn:   int(rec.Turn),
			Action: domain.ActionType(rec.ActionType),
			Dx:     int(rec.Dx),
			Dy:     int(rec.Dy),
		}
	}

	return session, nil
}
