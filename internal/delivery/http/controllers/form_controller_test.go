package controllers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"eventmanagement/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactService struct {
	err  error
	last domain.ContactInput
}

func (f *fakeContactService) Submit(_ context.Context, in domain.ContactInput) (*domain.Contact, error) {
	f.last = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Contact{ID: "c-1", Name: in.Name}, nil
}

type fakeInvitationService struct {
	err  error
	last domain.InvitationInput
}

func (f *fakeInvitationService) Submit(_ context.Context, in domain.InvitationInput) (*domain.Invitation, error) {
	f.last = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Invitation{ID: "i-1", Name: in.Name, Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}, nil
}

func TestContactController_Submit(t *testing.T) {
	tests := []struct {
		name         string
		serviceErr   error
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{"success", nil, http.StatusFound, "/", ""},
		{"missing field", &domain.ValidationError{Missing: []string{"message"}}, http.StatusInternalServerError, "", "Error saving contact form data"},
		{"store error", assert.AnError, http.StatusInternalServerError, "", "Error saving contact form data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeContactService{err: tt.serviceErr}
			ctrl := NewContactController(testLogger, fake)
			req := formRequest("/submitContactForm", url.Values{
				"name": {"Bob"}, "email": {"b@x.io"}, "number": {"555"}, "subject": {"Hi"}, "message": {"Hello"},
			})
			rr := httptest.NewRecorder()

			ctrl.Submit(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
			assert.Equal(t, domain.ContactInput{Name: "Bob", Email: "b@x.io", Number: "555", Subject: "Hi", Message: "Hello"}, fake.last)
		})
	}
}

func TestInvitationController_Submit(t *testing.T) {
	tests := []struct {
		name         string
		serviceErr   error
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{"success", nil, http.StatusFound, "/", ""},
		{"invalid date", &domain.ValidationError{Invalid: []string{"date"}}, http.StatusInternalServerError, "", "Error saving invitation form data"},
		{"store error", assert.AnError, http.StatusInternalServerError, "", "Error saving invitation form data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeInvitationService{err: tt.serviceErr}
			ctrl := NewInvitationController(testLogger, fake)

			var body bytes.Buffer
			mw := multipart.NewWriter(&body)
			fields := [][2]string{
				{"name", "Carol"}, {"email", "c@x.io"}, {"venue", "Hall A"},
				{"date", "2025-06-01"}, {"time", "18:00"}, {"subject", "Launch"},
			}
			for _, f := range fields {
				require.NoError(t, mw.WriteField(f[0], f[1]))
			}
			require.NoError(t, mw.Close())
			req := httptest.NewRequest(http.MethodPost, "http://test/invi", &body)
			req.Header.Set("Content-Type", mw.FormDataContentType())
			rr := httptest.NewRecorder()

			ctrl.Submit(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
			assert.Equal(t, domain.InvitationInput{
				Name: "Carol", Email: "c@x.io", Venue: "Hall A", Date: "2025-06-01", Time: "18:00", Subject: "Launch",
			}, fake.last)
		})
	}
}
