package images

import (
	"context"
	"errors"
	"mime/multipart"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	mu     sync.Mutex
	calls  int
	failOn string
}

func (f *fakeUploader) Upload(_ context.Context, file *multipart.FileHeader) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if file.Filename == f.failOn {
		return "", errors.New("upload rejected")
	}
	return "https://img.example.com/" + file.Filename, nil
}

func headers(names ...string) []*multipart.FileHeader {
	files := make([]*multipart.FileHeader, 0, len(names))
	for _, name := range names {
		files = append(files, &multipart.FileHeader{Filename: name})
	}
	return files
}

func TestUploadAll_OrderPreserved(t *testing.T) {
	uploader := &fakeUploader{}

	urls, err := UploadAll(context.Background(), uploader, headers("a.jpg", "b.png", "c.webp"))

	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://img.example.com/a.jpg",
		"https://img.example.com/b.png",
		"https://img.example.com/c.webp",
	}, urls)
	assert.Equal(t, 3, uploader.calls)
}

func TestUploadAll_AllOrNothing(t *testing.T) {
	uploader := &fakeUploader{failOn: "b.png"}

	urls, err := UploadAll(context.Background(), uploader, headers("a.jpg", "b.png", "c.webp"))

	require.Error(t, err)
	assert.Nil(t, urls)
}

func TestUploadAll_Empty(t *testing.T) {
	uploader := &fakeUploader{}

	urls, err := UploadAll(context.Background(), uploader, nil)

	require.NoError(t, err)
	assert.Empty(t, urls)
	assert.Equal(t, 0, uploader.calls)
}
