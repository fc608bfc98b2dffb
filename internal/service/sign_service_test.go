package service

import (
	"testing"

	"github.com/signlearn/signbridge/internal/errs"
	"github.com/signlearn/signbridge/internal/model"
	"github.com/signlearn/signbridge/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignLookup(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&model.Sign{
		Word:     "Hello",
		Language: model.LanguageASL,
		ImageURL: "https://cdn.example.com/signs/hello.png",
	}).Error)

	svc := NewSignService(repository.NewSignRepository(db))

	got, err := svc.Lookup(t.Context(), "hello", model.LanguageASL)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Word)
	assert.Equal(t, "ASL", got.Language)
	assert.Equal(t, "https://cdn.example.com/signs/hello.png", got.ImageURL)
}

func TestSignLookupFailures(t *testing.T) {
	db := newTestDB(t)
	svc := NewSignService(repository.NewSignRepository(db))

	_, err := svc.Lookup(t.Context(), "", model.LanguageASL)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	_, err = svc.Lookup(t.Context(), "hello", model.Language("FRA"))
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	_, err = svc.Lookup(t.Context(), "hello", model.LanguageMSL)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}
