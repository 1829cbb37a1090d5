package backend_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nclexfront/internal/frontend/domain"
)

func buildMultipartForm(t *testing.T) (string, []byte) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("title", "Pharmacology"))
	require.NoError(t, writer.WriteField("description", "NCLEX pharmacology review"))

	part, err := writer.CreateFormFile("video_file", "lecture.mp4")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake video bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return writer.FormDataContentType(), buf.Bytes()
}

func TestUploadCourse_ForwardsMultipartBodyVerbatim(t *testing.T) {
	contentType, formBody := buildMultipartForm(t)

	var gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/courses/", r.URL.Path)

		gotContentType = r.Header.Get("Content-Type")
		var err error
		gotBody, err = io.ReadAll(r.Body)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Course{ID: "c1", Title: "Pharmacology"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	store := newTestStore(t, domain.CredentialPair{AccessToken: "access", RefreshToken: "refresh"})

	course, err := client.UploadCourse(context.Background(), store, contentType, bytes.NewReader(formBody))

	require.NoError(t, err)
	assert.Equal(t, "c1", course.ID)
	// Content-Type с boundary и байты формы уходят без изменений.
	assert.Equal(t, contentType, gotContentType)
	assert.Equal(t, formBody, gotBody)
}

func TestUploadCourse_ResendsIdenticalBytesAfterRefresh(t *testing.T) {
	contentType, formBody := buildMultipartForm(t)

	var bodies [][]byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh/":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"access_token":  "access-new",
				"refresh_token": "refresh-new",
			})
		default:
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			bodies = append(bodies, body)

			if r.Header.Get("Authorization") != "Bearer access-new" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(domain.Course{ID: "c1"})
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	store := newTestStore(t, domain.CredentialPair{AccessToken: "access-old", RefreshToken: "refresh-old"})

	course, err := client.UploadCourse(context.Background(), store, contentType, bytes.NewReader(formBody))

	require.NoError(t, err)
	assert.Equal(t, "c1", course.ID)
	// Повтор после обновления токена отправляет те же байты формы.
	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, formBody, bodies[1])
}

func TestDeleteCourse_ClassifiesFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Course not found."}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	store := newTestStore(t, domain.CredentialPair{AccessToken: "access", RefreshToken: "refresh"})

	err := client.DeleteCourse(context.Background(), store, "missing")

	require.Error(t, err)
	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindGeneric, apiErr.Kind)
	assert.Equal(t, "Course not found.", apiErr.Message)
}
