package config

import (
	"time"

	"go.uber.org/zap"
)

type Config struct {
	BaseURL               string
	AuthToken             string
	Engine                string
	Size                  int
	RequestTimeout        time.Duration
	DialTimeout           time.Duration
	TlsTimeout            time.Duration
	IdleConnTimeout       time.Duration
	MaxConnsPerHost       int
	InsecureSkipVerify    bool
	ResponseHeaderTimeout time.Duration
	Logger                *zap.Logger
}

const (
	EngineResty = "resty"
	EngineFiber = "fiber"
)

func DefaultConfig() Config {
	return Config{
		BaseURL:               "",
		AuthToken:             "",
		Engine:                EngineResty,
		Size:                  8,
		RequestTimeout:        10 * time.Second,
		DialTimeout:           5 * time.Second,
		TlsTimeout:            2 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxConnsPerHost:       1,
		InsecureSkipVerify:    false,
		ResponseHeaderTimeout: 0,
	}
}
