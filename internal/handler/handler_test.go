package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/MrBrad8989/gta-events-bot/internal/handler/dto"
	hmocks "github.com/MrBrad8989/gta-events-bot/internal/handler/mocks"
	"github.com/MrBrad8989/gta-events-bot/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testAPIKey = "secret"

func setupRouter(t *testing.T) (*hmocks.MockSubmissionSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	submissionSvc := hmocks.NewMockSubmissionSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(submissionSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api", middleware.APIKey(testAPIKey))
	{
		api.POST("/events", h.SubmitEvent)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/notify", h.NotifyModerators)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
	}

	return submissionSvc, userSvc, r
}

func do(r http.Handler, method, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-API-Key", testAPIKey)
	req.Header.Set("X-Discord-User-ID", "111")
	r.ServeHTTP(w, req)
	return w
}

type formFile struct {
	field, name, content string
}

func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"title":                "Carrera nocturna",
		"description":          "Vuelta por Vinewood",
		"event_date":           "2026-11-01T20:00:00Z",
		"needs_vehicles":       "true",
		"vehicles_description": "5 motos",
	}
}

// --- Events ---

func TestHandler_SubmitEvent_Success(t *testing.T) {
	submissionSvc, _, r := setupRouter(t)

	created := &domain.EventRecord{
		ID:        7,
		CreatorID: "u1",
		Title:     "Carrera nocturna",
		EventDate: time.Date(2026, 11, 1, 20, 0, 0, 0, time.UTC),
		Status:    domain.EventStatusPending,
		Support:   domain.SupportRequest{NeedsVehicles: true, VehiclesDescription: "5 motos"},
		CreatedAt: time.Now(),
	}

	submissionSvc.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(in domain.SubmitEventInput) bool {
		return in.DiscordUserID == "111" &&
			in.Title == "Carrera nocturna" &&
			in.Support.NeedsVehicles &&
			in.Flyer != nil && in.Flyer.Name == "flyer.png" &&
			len(in.MappingImages) == 2
	})).Return(created, nil)

	body, ct := multipartBody(t, validFields(),
		formFile{"flyer", "flyer.png", "png"},
		formFile{"mapping_images", "a.png", "a"},
		formFile{"mapping_images", "b.png", "b"},
	)

	w := do(r, http.MethodPost, "/api/events", body, ct)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, 0, resp.Interested)
	assert.NotNil(t, resp.Subscribers)
}

func TestHandler_SubmitEvent_MissingFlyer(t *testing.T) {
	_, _, r := setupRouter(t)

	body, ct := multipartBody(t, validFields())

	w := do(r, http.MethodPost, "/api/events", body, ct)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SubmitEvent_BadDate(t *testing.T) {
	_, _, r := setupRouter(t)

	fields := validFields()
	fields["event_date"] = "01/11/2026"
	body, ct := multipartBody(t, fields, formFile{"flyer", "flyer.png", "png"})

	w := do(r, http.MethodPost, "/api/events", body, ct)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "RFC3339")
}

func TestHandler_SubmitEvent_UnknownCaller(t *testing.T) {
	submissionSvc, _, r := setupRouter(t)

	submissionSvc.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, domain.ErrUnauthorized)

	body, ct := multipartBody(t, validFields(), formFile{"flyer", "flyer.png", "png"})

	w := do(r, http.MethodPost, "/api/events", body, ct)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_SubmitEvent_ValidationError(t *testing.T) {
	submissionSvc, _, r := setupRouter(t)

	submissionSvc.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	body, ct := multipartBody(t, validFields(), formFile{"flyer", "flyer.exe", "x"})

	w := do(r, http.MethodPost, "/api/events", body, ct)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	submissionSvc, _, r := setupRouter(t)

	pub := "pub-1"
	submissionSvc.EXPECT().Get(mock.Anything, int64(3)).Return(&domain.EventRecord{
		ID:              3,
		Status:          domain.EventStatusApproved,
		PublicMessageID: &pub,
		Subscribers:     []string{"a", "b"},
	}, nil)

	w := do(r, http.MethodGet, "/api/events/3", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "APPROVED", resp.Status)
	assert.Equal(t, 2, resp.Interested)
	require.NotNil(t, resp.PublicMessageID)
	assert.Equal(t, "pub-1", *resp.PublicMessageID)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	for _, id := range []string{"abc", "0", "-4"} {
		w := do(r, http.MethodGet, "/api/events/"+id, nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
	}
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	submissionSvc, _, r := setupRouter(t)

	submissionSvc.EXPECT().Get(mock.Anything, int64(99)).Return(nil, domain.ErrEventNotFound)

	w := do(r, http.MethodGet, "/api/events/99", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_NotifyModerators(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"success", nil, http.StatusOK},
		{"not found", domain.ErrEventNotFound, http.StatusNotFound},
		{"already reviewed", domain.ErrInvalidTransition, http.StatusConflict},
		{"delivery failed", domain.ErrDeliveryFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submissionSvc, _, r := setupRouter(t)

			submissionSvc.EXPECT().NotifyModerators(mock.Anything, int64(5)).Return(tt.err)

			w := do(r, http.MethodPost, "/api/events/notify",
				bytes.NewBufferString(`{"eventId":5,"title":"ignored"}`), "application/json")

			assert.Equal(t, tt.status, w.Code)
			if tt.err == nil {
				assert.JSONEq(t, `{"success":true}`, w.Body.String())
			}
		})
	}
}

func TestHandler_NotifyModerators_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/events/notify", bytes.NewBufferString(`{}`), "application/json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Link(mock.Anything, domain.CreateUserInput{Username: "alice", DiscordID: "111"}).
		Return(&domain.User{ID: "u1", Username: "alice", DiscordID: "111", CreatedAt: time.Now()}, nil)

	w := do(r, http.MethodPost, "/api/users",
		bytes.NewBufferString(`{"username":"alice","discord_id":"111"}`), "application/json")

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "111", resp.DiscordID)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/users", bytes.NewBufferString(`{"username":"alice"}`), "application/json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers(t *testing.T) {
	_, userSvc, r := setupRouter(t)

	userSvc.EXPECT().List(mock.Anything).Return([]*domain.User{{ID: "u1"}, {ID: "u2"}}, nil)

	w := do(r, http.MethodGet, "/api/users", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, strings.Count(w.Body.String(), `"id"`))
}

func TestHandler_RequiresAPIKey(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("X-API-Key", "wrong")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
