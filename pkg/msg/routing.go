package msg

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Router struct {
	Handlers    []Handler
	middlewares []Middleware
}

func (r *Router) UseMiddleware(m Middleware) {
	r.middlewares = append(r.middlewares, m)
}

func (r *Router) Route(ctx context.Context, req *Request) (*Response, error) {
	log := logrus.WithContext(ctx)

	if req.Meta == nil {
		req.Meta = map[string]interface{}{}
	}

	for _, m := range r.middlewares {
		resp, err := m.Handle(ctx, req)
		if err != nil {
			return nil, err
		}

		if resp != nil {
			log.Debugf("middleware %T stopped the processing of message %q", m, req.ID)
			return resp, nil
		}
	}

	for _, h := range r.Handlers {
		canHandle, err := h.CanHandle(ctx, req)
		if err != nil {
			return nil, err
		}

		if canHandle {
			log.Debugf("message %q is handled by %T", req.ID, h)
			return h.Handle(ctx, req)
		}
	}

	return nil, errors.Errorf("no matching handler found for the message %q", req.Message)
}
