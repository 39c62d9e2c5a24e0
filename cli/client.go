package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ApiClient talks to the food-sense API server.
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewApiClient creates a client for the configured server address.
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("FOODSENSE_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 30,
		},
		BaseURL: baseURL,
	}
}

// CheckHealth reports whether the API server is reachable.
func (c *ApiClient) CheckHealth() bool {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// ParseResult is the server's answer for one order request.
type ParseResult struct {
	Summary    string  `json:"summary"`
	Restaurant string  `json:"restaurant"`
	Confidence float64 `json:"confidence"`
	ParserUsed string  `json:"parser_used"`
	ElapsedMS  int64   `json:"elapsed_ms"`
}

// ParseOrder sends order text to the server and returns the parse result.
func (c *ApiClient) ParseOrder(text, parser string) (*ParseResult, error) {
	body, err := json.Marshal(map[string]string{"text": text, "parser": parser})
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(c.BaseURL+"/api/v1/orders/parse", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, data)
	}

	var result ParseResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RestaurantInfo is one entry of the restaurant listing.
type RestaurantInfo struct {
	Name      string `json:"name"`
	ItemCount int    `json:"item_count"`
}

// ListRestaurants fetches the restaurants the catalog covers.
func (c *ApiClient) ListRestaurants() ([]RestaurantInfo, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/api/v1/restaurants")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}

	var infos []RestaurantInfo
	if err := json.NewDecoder(resp.Body).Decode(&infos); err != nil {
		return nil, err
	}
	return infos, nil
}
