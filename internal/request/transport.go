package request

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/yousseftechdev/postmaker/internal/httpc"
)

// Response is the transport-level view of a completed exchange.
type Response struct {
	Status  int
	Reason  string
	Headers map[string]string
	RawBody []byte
}

// Transport performs the actual HTTP call. Implementations are synchronous;
// a transport failure aborts only the current iteration.
type Transport interface {
	Send(ctx context.Context, method, url string, headers map[string]string, body interface{}) (*Response, error)
}

// TransportError wraps a network/connection/timeout failure from the HTTP call.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type restyTransport struct {
	h *httpc.Httpc
}

// NewTransport returns the resty-backed Transport used for real dispatch.
func NewTransport(h *httpc.Httpc) Transport {
	if h == nil {
		h = &httpc.Httpc{}
	}
	return &restyTransport{h: h}
}

func (t *restyTransport) Send(ctx context.Context, method, url string, headers map[string]string, body interface{}) (*Response, error) {
	client := t.h.New()
	req := client.R().SetContext(ctx).SetHeaders(headers)
	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}
	resp, err := execByMethod(req, method, url)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	return &Response{
		Status:  resp.StatusCode(),
		Reason:  reasonPhrase(resp),
		Headers: flattenHeader(resp.Header()),
		RawBody: resp.Body(),
	}, nil
}

func execByMethod(req *resty.Request, method, url string) (*resty.Response, error) {
	switch method {
	case http.MethodGet:
		return req.Get(url)
	case http.MethodPost:
		return req.Post(url)
	case http.MethodPut:
		return req.Put(url)
	case http.MethodPatch:
		return req.Patch(url)
	case http.MethodDelete:
		return req.Delete(url)
	case http.MethodHead:
		return req.Head(url)
	case http.MethodOptions:
		return req.Options(url)
	default:
		return nil, fmt.Errorf("unsupported method: %s", method)
	}
}

// reasonPhrase strips the numeric code from resty's "200 OK" status line,
// falling back to the stdlib's canonical text.
func reasonPhrase(resp *resty.Response) string {
	s := strings.TrimSpace(strings.TrimPrefix(resp.Status(), strconv.Itoa(resp.StatusCode())))
	if s == "" {
		s = http.StatusText(resp.StatusCode())
	}
	return s
}

func flattenHeader(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
