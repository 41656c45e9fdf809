package config

import "os"

type Logging struct {
	Level      string // logrus level name, empty for the default
	File       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

func NewLogging() (*Logging, error) {
	maxSize, err := lookupInt("MINES_LOG_MAX_SIZE", 10)
	if err != nil {
		return nil, err
	}

	maxBackups, err := lookupInt("MINES_LOG_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}

	maxAge, err := lookupInt("MINES_LOG_MAX_AGE", 28)
	if err != nil {
		return nil, err
	}

	logging := &Logging{
		Level:      os.Getenv("MINES_LOG_LEVEL"),
		File:       os.Getenv("MINES_LOG_FILE"),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	}

	return logging, nil
}
