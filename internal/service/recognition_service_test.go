package service

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/signlearn/signbridge/config"
	"github.com/signlearn/signbridge/internal/errs"
	"github.com/signlearn/signbridge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recognizerConfig(aslURL, mslURL string) *config.Config {
	return &config.Config{
		Recognizer: config.Recognizer{
			ASLEndpoint: aslURL,
			MSLEndpoint: mslURL,
			Timeout:     5 * time.Second,
		},
	}
}

func TestRecognizeInvalidLanguageNoDispatch(t *testing.T) {
	var calls atomic.Int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer upstream.Close()

	svc := NewRecognitionService(recognizerConfig(upstream.URL, upstream.URL))

	_, err := svc.Recognize(t.Context(), []byte("img"), model.Language("FRA"))
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	assert.Zero(t, calls.Load(), "validation failure must not reach the upstream")
}

func TestRecognizeEmptyImage(t *testing.T) {
	svc := NewRecognitionService(recognizerConfig("http://recognizer.invalid", ""))

	_, err := svc.Recognize(t.Context(), nil, model.LanguageASL)
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestRecognizePassesUpstreamResponseThrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict-image/", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, _, err := r.FormFile("image")
		require.NoError(t, err)
		file.Close()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"word":"gracias","confidence":0.93,"imageUrl":"https://cdn.example.com/signs/gracias.png"}`))
	}))
	defer upstream.Close()

	svc := NewRecognitionService(recognizerConfig("", upstream.URL))

	got, err := svc.Recognize(t.Context(), []byte("raw-image-bytes"), model.LanguageMSL)
	require.NoError(t, err)
	assert.Equal(t, "gracias", got.Word)
	assert.InDelta(t, 0.93, got.Confidence, 1e-9)
	assert.Equal(t, "https://cdn.example.com/signs/gracias.png", got.ImageURL)
	assert.False(t, got.Placeholder)
}

func TestRecognizeUpstreamRejection(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unrecognized gesture"}`, http.StatusUnprocessableEntity)
	}))
	defer upstream.Close()

	svc := NewRecognitionService(recognizerConfig(upstream.URL, ""))

	_, err := svc.Recognize(t.Context(), []byte("img"), model.LanguageASL)
	require.Error(t, err)
	assert.Equal(t, errs.KindUpstream, errs.KindOf(err))

	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, http.StatusUnprocessableEntity, e.UpstreamStatus)
	assert.Contains(t, e.UpstreamBody, "unrecognized gesture")
}

func TestRecognizeUpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // connection refused from here on

	svc := NewRecognitionService(recognizerConfig(upstream.URL, ""))

	_, err := svc.Recognize(t.Context(), []byte("img"), model.LanguageASL)
	require.Error(t, err)
	assert.Equal(t, errs.KindUnavailable, errs.KindOf(err))
}

func TestRecognizePlaceholderWhenUnconfigured(t *testing.T) {
	svc := NewRecognitionService(recognizerConfig("", ""))

	got, err := svc.Recognize(t.Context(), []byte("img"), model.LanguageASL)
	require.NoError(t, err)
	assert.True(t, got.Placeholder, "fallback result must be marked as a placeholder")
	assert.Equal(t, PlaceholderWord, got.Word)
	assert.InDelta(t, PlaceholderConfidence, got.Confidence, 1e-9)
}

func TestRecognizeMalformedUpstreamJSON(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer upstream.Close()

	svc := NewRecognitionService(recognizerConfig(upstream.URL, ""))

	_, err := svc.Recognize(t.Context(), []byte("img"), model.LanguageASL)
	require.Error(t, err)
	assert.Equal(t, errs.KindUpstream, errs.KindOf(err))
}
