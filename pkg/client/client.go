package client

import (
	"fmt"

	"webhookclient/pkg/application"
	"webhookclient/pkg/config"
	"webhookclient/pkg/executor"
	"webhookclient/pkg/fiberexec"
	"webhookclient/pkg/restyexec"
)

// Client bundles the resource APIs over one executor pool.
type Client struct {
	Application *application.API

	exec executor.Executor
}

func New(cfg config.Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	var exec executor.Executor
	switch cfg.Engine {
	case "", config.EngineResty:
		exec = restyexec.New(cfg)
	case config.EngineFiber:
		exec = fiberexec.New(cfg)
	default:
		return nil, fmt.Errorf("unknown engine %q", cfg.Engine)
	}

	return &Client{
		Application: application.New(exec),
		exec:        exec,
	}, nil
}

func (c *Client) Close() {
	c.exec.Close()
}
