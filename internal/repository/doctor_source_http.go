package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-doctor-appointment/internal/domain/entity"
	domainRepo "go-doctor-appointment/internal/domain/repository"

	"github.com/goccy/go-json"
)

// ErrSourceUnavailable wraps every failure to obtain the raw schedule document
var ErrSourceUnavailable = errors.New("doctor source unavailable")

// maxSourceBody caps how much of the remote document is read
const maxSourceBody = 8 << 20

type httpDoctorSource struct {
	client *http.Client
	url    string
}

func NewHTTPDoctorSource(url string, timeout time.Duration) domainRepo.DoctorSource {
	return &httpDoctorSource{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

func (s *httpDoctorSource) FetchRawSchedules(ctx context.Context) ([]entity.DoctorRaw, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrSourceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrSourceUnavailable, err)
	}

	var records []entity.DoctorRaw
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrSourceUnavailable, err)
	}

	return records, nil
}
