package clients

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = time.Second * 15

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPClient is the outbound client shared by integrations such as the
// Telegram Bot API. It logs every call at debug level.
type HTTPClient struct {
	client HTTPClientI
}

func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	started := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		zap.L().Warn("Outbound request failed",
			zap.String("method", req.Method),
			zap.String("host", req.URL.Host),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err),
		)
		return nil, err
	}
	zap.L().Debug("Outbound request",
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)
	return resp, nil
}

func (h *HTTPClient) SetClient(client HTTPClientI) {
	h.client = client
}
