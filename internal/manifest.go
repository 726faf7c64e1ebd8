package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/rm-hull/raster-tools/internal/models"
)

type FeedClient interface {
	GetManifest(feedId string) (*models.ManifestResponse, error)
	GetImage(feedId, fileId string) (io.ReadCloser, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type FeedManager struct {
	baseUrl string
	apiKey  string
	client  httpDoer
}

func NewFeedClient(baseUrl, apiKey string) FeedClient {
	return &FeedManager{
		baseUrl: baseUrl,
		apiKey:  apiKey,
		client:  &http.Client{},
	}
}

func (mgr *FeedManager) GetManifest(feedId string) (*models.ManifestResponse, error) {
	url := fmt.Sprintf("%s/feeds/%s/manifest", mgr.baseUrl, feedId)
	body, err := mgr.get(url, "application/json")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var resp models.ManifestResponse
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &resp, nil
}

func (mgr *FeedManager) GetImage(feedId, fileId string) (io.ReadCloser, error) {
	url := fmt.Sprintf("%s/feeds/%s/files/%s/data", mgr.baseUrl, feedId, fileId)
	return mgr.get(url, "image/png")
}

func (mgr *FeedManager) get(url string, acceptHeader string) (io.ReadCloser, error) {
	log.Printf("Retrieving: %s", url)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if mgr.apiKey != "" {
		req.Header.Set("apikey", mgr.apiKey)
	}
	req.Header.Set("Accept", acceptHeader)

	res, err := mgr.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from %s: %w", url, err)
	}

	if res.StatusCode > 299 {
		res.Body.Close()
		return nil, fmt.Errorf("http status response from %s: %s", url, res.Status)
	}

	return res.Body, nil
}
