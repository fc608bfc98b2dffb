package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/signlearn/signbridge/config"
	"github.com/signlearn/signbridge/internal/dto"
	"github.com/signlearn/signbridge/internal/errs"
	"github.com/signlearn/signbridge/internal/model"
)

// Placeholder result returned when no upstream is configured for a
// language. The values are fixed sentinels and the response carries
// Placeholder=true, so it can never pass as a genuine prediction.
const (
	PlaceholderWord       = "hello"
	PlaceholderConfidence = 0.42
)

// upstreamBodyLimit caps how much of an upstream error body is retained
// for diagnostics.
const upstreamBodyLimit = 4 << 10

// RecognitionService routes a captured gesture image to the upstream
// model endpoint for its language and passes the upstream's JSON answer
// through unmodified. Its contract is routing, not interpretation: the
// upstream model format is authoritative.
type RecognitionService interface {
	Recognize(ctx context.Context, image []byte, language model.Language) (*dto.RecognitionResponse, error)
}

type recognitionService struct {
	endpoints map[model.Language]string
	client    *http.Client
}

func NewRecognitionService(cfg *config.Config) RecognitionService {
	endpoints := map[model.Language]string{
		model.LanguageASL: cfg.Recognizer.ASLEndpoint,
		model.LanguageMSL: cfg.Recognizer.MSLEndpoint,
	}
	for lang, url := range endpoints {
		if url == "" {
			log.Warn().Str("language", string(lang)).Msg("No recognizer endpoint configured; placeholder results will be served")
		}
	}
	return &recognitionService{
		endpoints: endpoints,
		client:    &http.Client{Timeout: cfg.Recognizer.Timeout},
	}
}

func (s *recognitionService) Recognize(ctx context.Context, image []byte, language model.Language) (*dto.RecognitionResponse, error) {
	if !language.Valid() {
		return nil, errs.Validation("unsupported language %q", language)
	}
	if len(image) == 0 {
		return nil, errs.Validation("image must not be empty")
	}

	endpoint := s.endpoints[language]
	if endpoint == "" {
		log.Info().Str("language", string(language)).Msg("Recognizer not configured, returning placeholder result")
		return &dto.RecognitionResponse{
			Word:        PlaceholderWord,
			Confidence:  PlaceholderConfidence,
			Placeholder: true,
		}, nil
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", "capture.jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart request: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("failed to write image payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart request: %w", err)
	}

	url := endpoint + "/predict-image/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		// Transport failure or cancellation: no partial result, a
		// caller may retry. Distinct from an upstream rejection.
		log.Error().Err(err).Str("url", url).Msg("Recognizer unreachable")
		return nil, errs.Unavailable(err, "recognizer for %s is unreachable", language)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, upstreamBodyLimit))
		log.Error().Int("status", resp.StatusCode).Str("body", string(raw)).Str("url", url).Msg("Recognizer rejected the request")
		return nil, errs.Upstream(resp.StatusCode, string(raw), "recognizer for %s rejected the request", language)
	}

	var result dto.RecognitionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Error().Err(err).Str("url", url).Msg("Recognizer returned malformed JSON")
		return nil, errs.Upstream(resp.StatusCode, "", "recognizer for %s returned a malformed response", language)
	}
	return &result, nil
}
