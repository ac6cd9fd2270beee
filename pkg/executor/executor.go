package executor

import (
	"context"
	"fmt"
	"strings"
)

// Request describes one API call independently of the HTTP library that
// will carry it. A descriptor is built fresh per call and never shared.
type Request struct {
	Method       string
	Path         string
	PathParams   map[string]string
	QueryParams  map[string]string
	HeaderParams map[string]string
	Body         any
}

// Executor issues a Request against the remote service. Implementations own
// transport, auth headers, timeouts and status-code handling; callers get
// either a successful Response or an error.
type Executor interface {
	Execute(ctx context.Context, req Request) (Response, error)
	Close()
}

type Response interface {
	StatusCode() int
	Body() []byte
	JSON(v any) error
}

// ExpandPath substitutes {name} segments in path with values from params.
// Placeholders without a matching param are left as-is.
func ExpandPath(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}
	for k, v := range params {
		path = strings.ReplaceAll(path, "{"+k+"}", v)
	}
	return path
}

// StatusError is returned by executors when the service replies with a
// status outside the 2xx range.
type StatusError struct {
	Method       string
	Path         string
	Code         int
	ResponseBody []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.ResponseBody)
}
