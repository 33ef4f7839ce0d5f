package membercrm

import (
	"context"
	"fmt"
	"log/slog"
)

// DefaultPageSize is used when a list request does not set a page size.
const DefaultPageSize = 20

// PageQuery is what a single step of a walk asks the CRM for.
type PageQuery struct {
	PageSize int
	Cursor   string
}

// PageFetchFunc fetches and resolves one page.
type PageFetchFunc func(ctx context.Context, q PageQuery) (*Envelope, *Response, error)

// WalkRequest selects the page a walk should end on.
type WalkRequest struct {
	// Page is the 1-based page number to reach. Values below 1 mean the
	// first page.
	Page int

	// PageSize is held for every step of the walk, because cursors are only
	// valid for the page size they were issued under. Zero selects the
	// walker's default.
	PageSize int

	// Cursor, when set, is fetched directly and Page is ignored.
	Cursor string
}

// PageWalker reaches arbitrary page numbers on an API that only hands out
// "next page" cursors.
//
// Reaching page N costs N sequential fetches: each cursor is only known once
// the previous page has arrived, so the steps cannot run in parallel. No
// cursors are cached between walks; callers that revisit a page should keep
// the result themselves.
type PageWalker struct {
	fetch           PageFetchFunc
	defaultPageSize int
	logger          *slog.Logger
}

// WalkerOption configures a PageWalker.
type WalkerOption func(*PageWalker)

// WithWalkerLogger sets the logger used for per-step debug output.
func WithWalkerLogger(logger *slog.Logger) WalkerOption {
	return func(w *PageWalker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithWalkerPageSize sets the page size used when a request leaves it zero.
func WithWalkerPageSize(size int) WalkerOption {
	return func(w *PageWalker) {
		if size > 0 {
			w.defaultPageSize = size
		}
	}
}

// NewPageWalker returns a walker that fetches pages with fetch.
func NewPageWalker(fetch PageFetchFunc, opts ...WalkerOption) *PageWalker {
	w := &PageWalker{
		fetch:           fetch,
		defaultPageSize: DefaultPageSize,
		logger:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk returns the envelope for the requested page.
//
// If the CRM runs out of pages first, because a page comes back empty or
// without a next cursor, the walk stops there and returns the last page that
// had records. Callers detect this by the number of records or by the
// envelope's CurrentPage. A fetch error or an error envelope aborts the walk.
func (w *PageWalker) Walk(ctx context.Context, req WalkRequest) (*Envelope, *Response, error) {
	pageSize := req.PageSize
	if pageSize < 0 {
		return nil, nil, fmt.Errorf("page size must not be negative, got %d", pageSize)
	}
	if pageSize == 0 {
		pageSize = w.defaultPageSize
	}

	if req.Cursor != "" {
		w.logger.Debug("fetching page by cursor", "page_size", pageSize)
		return w.step(ctx, PageQuery{PageSize: pageSize, Cursor: req.Cursor})
	}

	target := max(req.Page, 1)

	env, resp, err := w.step(ctx, PageQuery{PageSize: pageSize})
	if err != nil {
		return nil, resp, err
	}

	lastEnv, lastResp := env, resp
	for page := 1; page < target; page++ {
		next := env.NextCursor()
		if len(env.Records) == 0 || next == "" {
			w.logger.Debug("pages exhausted before target",
				"target_page", target, "last_page", page, "page_size", pageSize)
			return lastEnv, lastResp, nil
		}

		w.logger.Debug("advancing page", "page", page+1, "target_page", target, "page_size", pageSize)
		env, resp, err = w.step(ctx, PageQuery{PageSize: pageSize, Cursor: next})
		if err != nil {
			return nil, resp, err
		}
		if len(env.Records) > 0 {
			lastEnv, lastResp = env, resp
		}
	}

	if len(env.Records) == 0 {
		return lastEnv, lastResp, nil
	}
	return env, resp, nil
}

// step performs one fetch and turns error envelopes into errors.
func (w *PageWalker) step(ctx context.Context, q PageQuery) (*Envelope, *Response, error) {
	env, resp, err := w.fetch(ctx, q)
	if err != nil {
		return nil, resp, err
	}
	if err := env.Err(); err != nil {
		return nil, resp, withResponse(err, resp)
	}
	return env, resp, nil
}
