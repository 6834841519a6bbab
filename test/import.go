package test

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

// LoadTestFile wraps a fixture from the testdata directory into a
// multipart form body, returning the body together with the headers
// needed to post it.
func LoadTestFile(t *testing.T, filePath string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	file, err := os.Open(path.Join("../../../testdata", filePath))
	require.NoError(t, err)
	defer file.Close()

	w, err := mw.CreateFormFile("file", filePath)
	require.NoError(t, err)

	_, err = io.Copy(w, file)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
