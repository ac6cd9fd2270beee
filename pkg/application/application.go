package application

import (
	"context"
	"net/http"

	"webhookclient/pkg/async"
	"webhookclient/pkg/executor"
)

const basePath = "/api/v1/app"

// API issues application resource calls through an executor. Each call
// builds its own request descriptor; the API itself holds no mutable state.
type API struct {
	exec executor.Executor
}

func New(exec executor.Executor) *API {
	return &API{exec: exec}
}

func headerParams(opts Options) map[string]string {
	if opts == nil {
		return map[string]string{}
	}
	return opts.HeaderParams()
}

// createRequest is the single source of the creation wire contract. The
// getIfExists flag is what turns plain creation into get-or-create.
func createRequest(in ApplicationIn, opts Options, getIfExists bool) executor.Request {
	query := map[string]string{}
	if getIfExists {
		query["get_if_exists"] = "true"
	}
	return executor.Request{
		Method:       http.MethodPost,
		Path:         basePath,
		PathParams:   map[string]string{},
		QueryParams:  query,
		HeaderParams: headerParams(opts),
		Body:         in,
	}
}

func (a *API) execute(ctx context.Context, req executor.Request) (*ApplicationOut, error) {
	res, err := a.exec.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	var out ApplicationOut
	if err := res.JSON(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create creates a new application.
func (a *API) Create(ctx context.Context, in ApplicationIn, opts Options) (*ApplicationOut, error) {
	return a.execute(ctx, createRequest(in, opts, false))
}

// GetOrCreate creates the application, or returns the existing one when the
// service already holds a matching resource. Calling it repeatedly with
// equivalent payloads yields the same resource rather than duplicates; that
// contract is the service's, not enforced locally.
func (a *API) GetOrCreate(ctx context.Context, in ApplicationIn, opts Options) (*ApplicationOut, error) {
	return a.execute(ctx, createRequest(in, opts, true))
}

// GetOrCreateAsync is GetOrCreate without occupying the caller: the request
// runs on its own goroutine and the returned promise resolves on completion.
// Both variants build the identical request descriptor.
func (a *API) GetOrCreateAsync(ctx context.Context, in ApplicationIn, opts Options) *async.Promise[*ApplicationOut] {
	req := createRequest(in, opts, true)
	return async.Go(func() (*ApplicationOut, error) {
		return a.execute(ctx, req)
	})
}

// Get fetches an application by ID or UID.
func (a *API) Get(ctx context.Context, appID string) (*ApplicationOut, error) {
	return a.execute(ctx, executor.Request{
		Method:     http.MethodGet,
		Path:       basePath + "/{app_id}",
		PathParams: map[string]string{"app_id": appID},
	})
}
