package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-swiper/internal/dto/request"
	"movie-swiper/internal/dto/response"
	"movie-swiper/internal/usecase"

	"go.uber.org/zap"
)

var errStub = errors.New("boom")

type stubSeedService struct {
	resp *response.SeedResponse
	err  error

	lastReq *request.SeedRequest
}

func (s *stubSeedService) Run(ctx context.Context, req *request.SeedRequest) (*response.SeedResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func postSeed(t *testing.T, service usecase.SeedService, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewSeedHandler(service, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.SeedMovies(rec, req)
	return rec
}

func TestSeedHandlerSuccess(t *testing.T) {
	service := &stubSeedService{resp: response.NewSeedResponse(60, 3)}

	rec := postSeed(t, service, `{"pagesToFetch": 3}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if service.lastReq.PagesToFetch != 3 {
		t.Errorf("pagesToFetch = %d, want 3", service.lastReq.PagesToFetch)
	}

	var body response.SeedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.TotalProcessed != 60 {
		t.Errorf("totalProcessed = %d, want 60", body.TotalProcessed)
	}
	if !strings.Contains(body.Message, "60 movies across 3 pages") {
		t.Errorf("message = %q", body.Message)
	}
}

func TestSeedHandlerEmptyBodyUsesDefaults(t *testing.T) {
	service := &stubSeedService{resp: response.NewSeedResponse(0, 10)}

	rec := postSeed(t, service, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if service.lastReq == nil || service.lastReq.PagesToFetch != 0 {
		t.Errorf("empty body must reach the service with zero pagesToFetch, got %+v", service.lastReq)
	}
}

func TestSeedHandlerRejectsOutOfRangePages(t *testing.T) {
	service := &stubSeedService{}

	rec := postSeed(t, service, `{"pagesToFetch": -2}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if service.lastReq != nil {
		t.Error("service must not run for invalid input")
	}
}

func TestSeedHandlerRunFailure(t *testing.T) {
	service := &stubSeedService{err: errStub}

	rec := postSeed(t, service, `{"pagesToFetch": 1}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error"`) {
		t.Errorf("body = %s, want error field", rec.Body.String())
	}
}
