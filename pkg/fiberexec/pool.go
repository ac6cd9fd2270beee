package fiberexec

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"webhookclient/pkg/config"
	"webhookclient/pkg/executor"
	"webhookclient/pkg/rr"

	fibercli "github.com/gofiber/fiber/v3/client"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var _ executor.Executor = (*Pool)(nil)

// Pool executes request descriptors over a fixed set of fiber clients on
// fasthttp bases, dispatched round-robin.
type Pool struct {
	clients   []*fibercli.Client
	bases     []*fasthttp.Client
	spin      rr.RR
	cfg       config.Config
	log       *zap.Logger
	closeOnce sync.Once
}

func New(cfg config.Config) *Pool {
	if cfg.Size <= 0 {
		cfg.Size = config.DefaultConfig().Size
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	cs := make([]*fibercli.Client, 0, cfg.Size)
	bases := make([]*fasthttp.Client, 0, cfg.Size)
	for i := 0; i < cfg.Size; i++ {
		base := newFiberBase(cfg)
		bases = append(bases, base)
		cs = append(cs, newFiberClient(cfg, base))
	}
	return &Pool{clients: cs, bases: bases, cfg: cfg, log: log}
}

func (p *Pool) Execute(ctx context.Context, req executor.Request) (executor.Response, error) {
	path := executor.ExpandPath(req.Path, req.PathParams)

	c := p.clients[p.spin.Next(len(p.clients))]
	r := c.R().SetContext(ctx)
	if len(req.QueryParams) > 0 {
		r.SetParams(req.QueryParams)
	}
	if len(req.HeaderParams) > 0 {
		r.SetHeaders(req.HeaderParams)
	}
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		// SetRawBody keeps the bytes as-is; SetJSON would re-encode them.
		r.SetHeader("Content-Type", "application/json").SetRawBody(b)
	}

	var (
		res *fibercli.Response
		err error
	)
	switch req.Method {
	case http.MethodGet:
		res, err = r.Get(path)
	case http.MethodPost:
		res, err = r.Post(path)
	case http.MethodPut:
		res, err = r.Put(path)
	case http.MethodPatch:
		res, err = r.Patch(path)
	case http.MethodDelete:
		res, err = r.Delete(path)
	default:
		return nil, fmt.Errorf("unsupported method %q", req.Method)
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, path, err)
	}

	resp := newFiberResp(res)
	p.log.Debug("request executed",
		zap.String("method", req.Method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()))

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &executor.StatusError{
			Method:       req.Method,
			Path:         path,
			Code:         resp.StatusCode(),
			ResponseBody: resp.Body(),
		}
	}
	return resp, nil
}

func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		for _, b := range p.bases {
			b.CloseIdleConnections()
		}
	})
}
