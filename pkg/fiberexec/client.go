package fiberexec

import (
	"crypto/tls"
	"net"

	"webhookclient/pkg/config"

	fibercli "github.com/gofiber/fiber/v3/client"
	"github.com/valyala/fasthttp"
)

func newFiberBase(cfg config.Config) *fasthttp.Client {
	return &fasthttp.Client{
		Dial:                func(addr string) (net.Conn, error) { return fasthttp.DialTimeout(addr, cfg.DialTimeout) },
		TLSConfig:           &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
		ReadTimeout:         cfg.RequestTimeout,
		WriteTimeout:        cfg.RequestTimeout,
		MaxIdleConnDuration: cfg.IdleConnTimeout,
		MaxConnsPerHost:     cfg.MaxConnsPerHost,
		MaxConnWaitTimeout:  cfg.RequestTimeout,
	}
}

func newFiberClient(cfg config.Config, base *fasthttp.Client) *fibercli.Client {
	c := fibercli.NewWithClient(base).
		SetTimeout(cfg.RequestTimeout).
		SetBaseURL(cfg.BaseURL)
	if cfg.AuthToken != "" {
		c.SetHeader("Authorization", "Bearer "+cfg.AuthToken)
	}
	return c
}
