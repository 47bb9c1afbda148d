package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cadastro/internal/model"
)

var (
	ErrCEPNotFound = errors.New("CEP não encontrado")
	ErrInvalidCEP  = errors.New("CEP inválido")
)

// ViaCEPClient looks addresses up on a ViaCEP compatible service.
type ViaCEPClient struct {
	baseURL string
	client  *http.Client
}

func NewViaCEPClient(baseURL string, timeout time.Duration) *ViaCEPClient {
	return &ViaCEPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Lookup expects cep to be already normalized to 8 digits.
func (c *ViaCEPClient) Lookup(ctx context.Context, cep string) (*model.Address, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var addr model.Address
		if err := json.NewDecoder(resp.Body).Decode(&addr); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		if addr.Erro {
			return nil, ErrCEPNotFound
		}
		return &addr, nil
	case http.StatusBadRequest:
		return nil, ErrInvalidCEP
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status: %d, body: %s", resp.StatusCode, string(body))
	}
}
