package restyexec

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"webhookclient/pkg/config"
	"webhookclient/pkg/executor"
	"webhookclient/pkg/rr"

	"go.uber.org/zap"
	resty "resty.dev/v3"
)

var _ executor.Executor = (*Pool)(nil)

// Pool executes request descriptors over a fixed set of resty clients,
// dispatched round-robin.
type Pool struct {
	clients   []*resty.Client
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

	cs := make([]*resty.Client, 0, cfg.Size)
	for i := 0; i < cfg.Size; i++ {
		cs = append(cs, newRestyClient(cfg))
	}
	return &Pool{clients: cs, cfg: cfg, log: log}
}

func (p *Pool) Execute(ctx context.Context, req executor.Request) (executor.Response, error) {
	path := executor.ExpandPath(req.Path, req.PathParams)

	i := p.spin.Next(len(p.clients))
	r := p.clients[i].R().SetContext(ctx)
	if len(req.QueryParams) > 0 {
		r.SetQueryParams(req.QueryParams)
	}
	if len(req.HeaderParams) > 0 {
		r.SetHeaders(req.HeaderParams)
	}
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		r.SetHeader("Content-Type", "application/json").SetBody(b)
	}

	res, err := r.Execute(req.Method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, path, err)
	}
	resp := newRestyResp(res)
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
		for _, c := range p.clients {
			_ = c.Close()
		}
	})
}
