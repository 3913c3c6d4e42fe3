package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raphael0002/graphics-garage-api/internal/dto"
	"github.com/raphael0002/graphics-garage-api/internal/service"
)

type fakeContactService struct {
	sent []dto.ContactRequest
	err  error
}

func (f *fakeContactService) Send(ctx context.Context, input dto.ContactRequest) error {
	f.sent = append(f.sent, input)
	return f.err
}

func TestContactSend(t *testing.T) {
	fake := &fakeContactService{}
	r := newTestRouter(t, &service.Service{Contact: fake})

	body := bytes.NewBufferString(`{"name":"Jane","email":"jane@example.com","message":"hi there"}`)
	req := httptest.NewRequest(http.MethodPost, "/contact", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	if len(fake.sent) != 1 || fake.sent[0].Email != "jane@example.com" {
		t.Errorf("sent = %+v", fake.sent)
	}
}

func TestContactSend_MissingFields(t *testing.T) {
	cases := []string{
		`{"email":"jane@example.com","message":"hi"}`,
		`{"name":"Jane","message":"hi"}`,
		`{"name":"Jane","email":"jane@example.com"}`,
		`{"name":"  ","email":"jane@example.com","message":"hi"}`,
	}

	for _, body := range cases {
		fake := &fakeContactService{}
		r := newTestRouter(t, &service.Service{Contact: fake})

		req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
		if len(fake.sent) != 0 {
			t.Errorf("body %s: message must not be sent", body)
		}
	}
}

func TestContactSend_MailFailure(t *testing.T) {
	fake := &fakeContactService{err: service.ErrMailNotSent}
	r := newTestRouter(t, &service.Service{Contact: fake})

	body := bytes.NewBufferString(`{"name":"Jane","email":"jane@example.com","message":"hi"}`)
	req := httptest.NewRequest(http.MethodPost, "/contact", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestContact_MethodNotAllowed(t *testing.T) {
	r := newTestRouter(t, &service.Service{Contact: &fakeContactService{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contact", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
}
