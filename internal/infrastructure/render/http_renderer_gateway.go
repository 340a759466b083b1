package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"farmagest/internal/domain/entities"
	"farmagest/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var (
	ErrMissingRendererURL    = errors.New("missing renderer url")
	ErrRendererEmptyDocument = errors.New("renderer rejected an empty document")
	ErrRendererEmptyResponse = errors.New("renderer returned an empty document")
	ErrRendererNotConfigured = errors.New("renderer gateway not configured")
)

// HTTPRendererGateway sends assembled documents to an external rendering
// service that flows the blocks onto A4 pages and returns the PDF bytes.
type HTTPRendererGateway struct {
	url      string
	client   *http.Client
	logger   zerolog.Logger
	mockMode bool
}

var _ interfaces.IDocumentoRenderer = (*HTTPRendererGateway)(nil)

func NewHTTPRendererGateway(url string, timeout time.Duration, logger zerolog.Logger) (*HTTPRendererGateway, error) {
	if isRendererMockEnabled() {
		logger.Info().Msg("renderer mock mode enabled")
		return &HTTPRendererGateway{mockMode: true, logger: logger}, nil
	}

	if url == "" {
		return nil, ErrMissingRendererURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPRendererGateway{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}, nil
}

func (g *HTTPRendererGateway) Renderizar(ctx context.Context, doc entities.Documento) ([]byte, error) {
	if len(doc.Blocos) == 0 {
		return nil, ErrRendererEmptyDocument
	}

	if g != nil && g.mockMode {
		// A single-byte placeholder keeps download paths exercisable
		// without a running renderer.
		return []byte("%PDF-1.4\n%mock\n"), nil
	}
	if g == nil || g.client == nil {
		return nil, ErrRendererNotConfigured
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error().Err(err).Str("arquivo", doc.NomeArquivo).Msg("renderer request failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		g.logger.Error().Int("status", resp.StatusCode).Str("arquivo", doc.NomeArquivo).Msg("renderer returned non-200")
		return nil, fmt.Errorf("renderer status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(pdf) == 0 {
		return nil, ErrRendererEmptyResponse
	}
	return pdf, nil
}

func isRendererMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("RENDERER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
