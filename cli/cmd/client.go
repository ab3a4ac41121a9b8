package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"walletapi/internal/types"

	"github.com/spf13/viper"
	"github.com/zeromicro/go-zero/rest/httpc"
)

type apiClient struct {
	base string
}

func newApiClient() *apiClient {
	return &apiClient{base: strings.TrimRight(viper.GetString("api"), "/")}
}

func (c *apiClient) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *apiClient) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *apiClient) do(ctx context.Context, method, path string, body, out any) error {
	resp, err := httpc.Do(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr types.ErrorResp
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s (%d): %s", apiErr.Kind, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("api error %d: %s", resp.StatusCode, string(data))
	}

	return json.Unmarshal(data, out)
}

func segment(s string) string {
	return url.PathEscape(strings.TrimSpace(s))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
