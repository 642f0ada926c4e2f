package source

import (
	"context"
	"io"
	"net/http"
	neturl "net/url"
	"os"
	"path"
	"time"

	"github.com/samber/oops"
	"golang.org/x/sync/errgroup"
	"resty.dev/v3"

	"github.com/g5becks/solcco/internal/weave"
)

const (
	defaultMaxParallel = 4
	downloadTimeout    = 30 * time.Second
)

// Reader fetches resolved inputs, at most parallel at a time.
type Reader struct {
	parallel int
	client   *resty.Client
}

func NewReader(parallel int) *Reader {
	if parallel <= 0 {
		parallel = defaultMaxParallel
	}

	return &Reader{
		parallel: parallel,
		client:   resty.New().SetTimeout(downloadTimeout),
	}
}

// Read returns the contents of refs in the order given. The first failure
// cancels the remaining reads.
func (r *Reader) Read(ctx context.Context, refs []Ref) ([]weave.Input, error) {
	inputs := make([]weave.Input, len(refs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.parallel)

	for i, ref := range refs {
		group.Go(func() error {
			content, err := r.fetch(groupCtx, ref)
			if err != nil {
				return err
			}

			text, err := decode(ref, content)
			if err != nil {
				return err
			}

			inputs[i] = weave.Input{File: ref.Label, Content: text}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return inputs, nil
}

func (r *Reader) fetch(ctx context.Context, ref Ref) ([]byte, error) {
	if ref.Kind == KindURL {
		return r.download(ctx, ref.Location)
	}

	content, err := os.ReadFile(ref.Location)
	if err != nil {
		return nil, oops.
			Code("READ_FAILED").
			With("path", ref.Location).
			Wrapf(err, "reading %s", ref.Location)
	}

	return content, nil
}

func (r *Reader) download(ctx context.Context, url string) ([]byte, error) {
	response, err := r.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, oops.
			Code("DOWNLOAD_FAILED").
			With("url", url).
			Wrapf(err, "downloading %s", url)
	}

	if response.StatusCode() < http.StatusOK || response.StatusCode() >= http.StatusMultipleChoices {
		return nil, oops.
			Code("DOWNLOAD_FAILED").
			With("url", url).
			With("status", response.StatusCode()).
			Errorf("%s returned non-success status %d", url, response.StatusCode())
	}

	content, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, oops.
			Code("DOWNLOAD_FAILED").
			With("url", url).
			Wrapf(err, "reading response body")
	}

	return content, nil
}

func filenameFromURL(rawURL string) string {
	parsed, err := neturl.Parse(rawURL)
	if err == nil {
		baseName := path.Base(parsed.Path)
		if baseName != "" && baseName != "." && baseName != "/" {
			return baseName
		}
	}

	return rawURL
}
