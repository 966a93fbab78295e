package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-user-directory/internal/domain"
)

// APIError 服务端返回的 4xx/5xx，带解析后的 {"error": ...} 文案
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client 用户目录 REST 接口的调用方
type Client struct {
	base string
	hc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWithHTTPClient 测试或需要自定义传输时使用
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{base: strings.TrimRight(baseURL, "/"), hc: hc}
}

func (c *Client) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) Create(ctx context.Context, in domain.UserInput) (domain.User, error) {
	var u domain.User
	err := c.do(ctx, http.MethodPost, "/api/users", &in, &u)
	return u, err
}

func (c *Client) Update(ctx context.Context, id int, in domain.UserInput) (domain.User, error) {
	var u domain.User
	err := c.do(ctx, http.MethodPut, "/api/users/"+strconv.Itoa(id), &in, &u)
	return u, err
}

func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in *domain.UserInput, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return decodeError(res)
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func decodeError(res *http.Response) error {
	var eb struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(res.Body).Decode(&eb)
	if eb.Error == "" {
		eb.Error = http.StatusText(res.StatusCode)
	}
	return &APIError{Status: res.StatusCode, Message: eb.Error}
}
