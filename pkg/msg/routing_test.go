package msg

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type prefixHandler struct {
	prefix string
	answer string
}

func (h prefixHandler) CanHandle(_ context.Context, req *Request) (bool, error) {
	return strings.HasPrefix(req.Message, h.prefix), nil
}

func (h prefixHandler) Handle(_ context.Context, _ *Request) (*Response, error) {
	return NewSuccessResponse(h.answer, nil), nil
}

type blockingMiddleware struct {
	block bool
}

func (m blockingMiddleware) Handle(_ context.Context, req *Request) (*Response, error) {
	req.Meta["seen"] = true
	if m.block {
		return NewErrorResponse("blocked"), nil
	}

	return nil, nil
}

func TestRouterPicksFirstMatchingHandler(t *testing.T) {
	r := &Router{
		Handlers: []Handler{
			prefixHandler{prefix: "/start", answer: "started"},
			prefixHandler{prefix: "/", answer: "command"},
		},
	}
	r.UseMiddleware(blockingMiddleware{})

	req := &Request{Message: "/start"}
	resp, err := r.Route(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "started", resp.Messages[0].Message)
	require.Equal(t, true, req.Meta["seen"])

	resp, err = r.Route(context.Background(), &Request{Message: "/perfume"})
	require.NoError(t, err)
	require.Equal(t, "command", resp.Messages[0].Message)

	_, err = r.Route(context.Background(), &Request{Message: "hello"})
	require.Error(t, err)
}

func TestRouterMiddlewareStopsProcessing(t *testing.T) {
	r := &Router{
		Handlers: []Handler{prefixHandler{prefix: "", answer: "any"}},
	}
	r.UseMiddleware(blockingMiddleware{block: true})

	resp, err := r.Route(context.Background(), &Request{Message: "hi"})
	require.NoError(t, err)
	require.Equal(t, Error, resp.Messages[0].Type)
	require.Equal(t, "blocked", resp.Messages[0].Message)
}

func TestOptionsNilSafe(t *testing.T) {
	var o *Options
	require.False(t, o.IsResponseToHiddenMessage())
	require.Nil(t, o.GetPredefinedResponses())
	require.False(t, o.ShouldRemoveKeyboard())

	o = (&Options{}).WithPredefinedResponse("male", "female")
	require.Equal(t, []PredefinedResponse{{Text: "male"}, {Text: "female"}}, o.GetPredefinedResponses())
}
