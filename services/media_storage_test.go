package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trickhub/apperror"
)

func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestLocalMediaStorage_SaveAndRemove(t *testing.T) {
	root := t.TempDir()
	storage := NewLocalMediaStorage(root)

	relPath, err := storage.Save(newFileHeader(t, "Cover.PNG", []byte("png-bytes")))
	require.NoError(t, err)
	assert.Regexp(t, `^articles/[0-9a-v]{20}\.png$`, relPath)

	stored, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(stored))

	require.NoError(t, storage.Remove(relPath))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(relPath)))
	assert.True(t, os.IsNotExist(err))

	// removing twice is fine
	assert.NoError(t, storage.Remove(relPath))
}

func TestLocalMediaStorage_RejectsNonImages(t *testing.T) {
	storage := NewLocalMediaStorage(t.TempDir())

	_, err := storage.Save(newFileHeader(t, "script.sh", []byte("#!/bin/sh")))
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestLocalMediaStorage_RemoveRefusesEscapes(t *testing.T) {
	storage := NewLocalMediaStorage(t.TempDir())

	assert.Error(t, storage.Remove("../outside.png"))
	assert.NoError(t, storage.Remove(""))
}
