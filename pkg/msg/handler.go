package msg

import "context"

type Handler interface {
	Handle(ctx context.Context, req *Request) (*Response, error)
	CanHandle(ctx context.Context, req *Request) (bool, error)
}

// Middleware may enrich the request or stop the processing by returning a non nil response.
type Middleware interface {
	Handle(ctx context.Context, req *Request) (*Response, error)
}
