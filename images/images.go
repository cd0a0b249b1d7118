// Package images is the boundary to the image store.
package images

import (
	"context"
	"mime/multipart"

	"golang.org/x/sync/errgroup"
)

type Uploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// UploadAll uploads every file concurrently and waits for the whole
// batch. The join is all-or-nothing: the first failure cancels the
// rest and the caller gets no partial url list. Result order matches
// the input order.
func UploadAll(ctx context.Context, uploader Uploader, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			url, err := uploader.Upload(ctx, file)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
