package main

import (
	"fmt"
	"time"
)

const (
	BackendBadger = "badger"
	BackendMemory = "memory"
)

type Config struct {
	LogLevel            string        `env:"LOG_LEVEL,default=INFO"`
	StorageBackend      string        `env:"STORAGE_BACKEND,default=badger"`
	BadgerFilepath      string        `env:"BADGER_FILEPATH,default=./data/meet-lab"`
	Host                string        `env:"HOST,default=localhost"`
	Port                int           `env:"PORT,default=8080"`
	PublicOrigin        string        `env:"PUBLIC_ORIGIN"`
	LoginDelay          time.Duration `env:"LOGIN_DELAY,default=500ms"`
	SignupDelay         time.Duration `env:"SIGNUP_DELAY,default=1s"`
	LoginRedirectDelay  time.Duration `env:"LOGIN_REDIRECT_DELAY,default=1s"`
	SignupRedirectDelay time.Duration `env:"SIGNUP_REDIRECT_DELAY,default=1500ms"`
	AuthTokenDuration   time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	JWTSecret           string        `env:"JWT_SECRET,required=true"`
	SubmitTimeout       time.Duration `env:"SUBMIT_TIMEOUT,default=5s"`
}

func (c Config) Validate() error {
	if c.StorageBackend != BackendBadger && c.StorageBackend != BackendMemory {
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", BackendBadger, BackendMemory, c.StorageBackend)
	}
	if c.SubmitTimeout <= c.LoginDelay || c.SubmitTimeout <= c.SignupDelay {
		return fmt.Errorf("SUBMIT_TIMEOUT (%s) must exceed the simulated auth delays", c.SubmitTimeout)
	}
	return nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Origin is the base of shared meeting links.
func (c Config) Origin() string {
	if c.PublicOrigin != "" {
		return c.PublicOrigin
	}
	return "http://" + c.Address()
}
