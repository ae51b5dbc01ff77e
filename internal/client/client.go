package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/sya_logistica/internal/apperrors"
	"github.com/SscSPs/sya_logistica/internal/core/domain"
	"github.com/SscSPs/sya_logistica/internal/dto"
)

// Client calls the requirements server on behalf of the desktop utility and the mobile form.
// Transport failures are reported as apperrors.ErrConnectivity, server failures as
// apperrors.ErrRemoteProcessing. A failed call is never treated as partially applied.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListMaterials fetches the materials catalog.
// It returns apperrors.ErrNotFound when the server has no catalog file.
func (c *Client) ListMaterials(ctx context.Context) ([]dto.MaterialResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/logistica/materiales", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("materials catalog: %w", apperrors.ErrNotFound)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var materials []dto.MaterialResponse
	if err := json.NewDecoder(resp.Body).Decode(&materials); err != nil {
		return nil, fmt.Errorf("decode materials: %w: %w", apperrors.ErrRemoteProcessing, err)
	}
	return materials, nil
}

// SubmitRequirements sends one submission.
func (c *Client) SubmitRequirements(ctx context.Context, req dto.SubmitRequirementsRequest) (*dto.SubmitRequirementsResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/logistica/enviar-requerimientos", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out dto.SubmitRequirementsResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&out)
	if resp.StatusCode != http.StatusOK || out.Status != dto.StatusSuccess {
		msg := out.Message
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("submit requirements: %w: %s", apperrors.ErrRemoteProcessing, msg)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode submission response: %w: %w", apperrors.ErrRemoteProcessing, decodeErr)
	}
	return &out, nil
}

// DownloadLedger saves the ledger into dir under a name stamped with now and returns its path.
func (c *Client) DownloadLedger(ctx context.Context, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download directory %s: %w", dir, err)
	}

	resp, err := c.do(ctx, http.MethodGet, "/api/descargar-requerimientos", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	target := filepath.Join(dir, DownloadName(now))
	tmp, err := os.CreateTemp(dir, ".download-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create download file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("download ledger: %w: %w", apperrors.ErrConnectivity, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close download file: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("save download to %s: %w", target, err)
	}
	return target, nil
}

// DownloadName is the local file name of a ledger downloaded at t.
func DownloadName(t time.Time) string {
	base := strings.TrimSuffix(domain.LedgerFilename, filepath.Ext(domain.LedgerFilename))
	return fmt.Sprintf("%s_%s%s", base, t.Format("20060102_150405"), filepath.Ext(domain.LedgerFilename))
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%s %s: %w: %w", method, path, apperrors.ErrConnectivity, err)
	}
	return resp, nil
}

// checkStatus maps any non-2xx answer to apperrors.ErrRemoteProcessing.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	var errBody struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64*1024)).Decode(&errBody)
	msg := errBody.Error
	if msg == "" {
		msg = errBody.Message
	}
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("%w: %s", apperrors.ErrRemoteProcessing, msg)
}
