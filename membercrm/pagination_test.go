package membercrm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

// fakeUpstream serves pages numbered from 1. The cursor for page n is
// "p<n>:<pageSize>", so a cursor used under another page size is detectable.
type fakeUpstream struct {
	pages     int
	perPage   int
	failPage  int
	errorPage int

	mu    sync.Mutex
	calls []PageQuery
}

func (u *fakeUpstream) fetch(_ context.Context, q PageQuery) (*Envelope, *Response, error) {
	u.mu.Lock()
	u.calls = append(u.calls, q)
	u.mu.Unlock()

	page := 1
	if q.Cursor != "" {
		num, size, ok := strings.Cut(strings.TrimPrefix(q.Cursor, "p"), ":")
		if !ok || size != strconv.Itoa(q.PageSize) {
			return nil, nil, fmt.Errorf("cursor %q is not valid for page size %d", q.Cursor, q.PageSize)
		}
		page, _ = strconv.Atoi(num)
	}

	if page == u.failPage {
		return nil, nil, errors.New("connection reset")
	}
	if page == u.errorPage {
		return &Envelope{Records: []json.RawMessage{}, Message: "query timeout"}, &Response{}, nil
	}

	env := &Envelope{Records: []json.RawMessage{}, Success: true, Pagination: &PageInfo{CurrentPage: Int(page)}}
	if page <= u.pages {
		for i := range u.perPage {
			env.Records = append(env.Records, json.RawMessage(fmt.Sprintf(`{"id":"%d-%d"}`, page, i)))
		}
	}
	if page < u.pages {
		env.Pagination.NextCursor = String(fmt.Sprintf("p%d:%d", page+1, q.PageSize))
	}
	return env, &Response{}, nil
}

func (u *fakeUpstream) callCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.calls)
}

type PageWalkerSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *PageWalkerSuite) SetupTest() {
	s.ctx = context.Background()
}

func TestPageWalkerSuite(t *testing.T) {
	suite.Run(t, new(PageWalkerSuite))
}

func currentPage(env *Envelope) int {
	return IntValue(env.Pagination.CurrentPage)
}

// TestSequentialWalk verifies that page N costs exactly N fetches.
func (s *PageWalkerSuite) TestSequentialWalk() {
	s.Run("first page is a single fetch without cursor", func() {
		up := &fakeUpstream{pages: 5, perPage: 3}
		env, _, err := NewPageWalker(up.fetch).Walk(s.ctx, WalkRequest{Page: 1})
		s.Require().NoError(err)
		s.Equal(1, currentPage(env))
		s.Require().Len(up.calls, 1)
		s.Empty(up.calls[0].Cursor)
	})

	s.Run("page zero means the first page", func() {
		up := &fakeUpstream{pages: 5, perPage: 3}
		env, _, err := NewPageWalker(up.fetch).Walk(s.ctx, WalkRequest{})
		s.Require().NoError(err)
		s.Equal(1, currentPage(env))
		s.Equal(1, up.callCount())
	})

	s.Run("page four follows three cursors", func() {
		up := &fakeUpstream{pages: 5, perPage: 3}
		env, _, err := NewPageWalker(up.fetch).Walk(s.ctx, WalkRequest{Page: 4})
		s.Require().NoError(err)
		s.Equal(4, currentPage(env))
		s.Len(env.Records, 3)
		s.Require().Len(up.calls, 4)
		s.Equal("p4:20", up.calls[3].Cursor)
	})
}

// TestExhaustion verifies that walks past the end stop after k fetches.
func (s *PageWalkerSuite) TestExhaustion() {
	s.Run("target beyond last page", func() {
		up := &fakeUpstream{pages: 3, perPage: 2}
		env, _, err := NewPageWalker(up.fetch).Walk(s.ctx, WalkRequest{Page: 10})
		s.Require().NoError(err)
		s.Equal(3, up.callCount())
		s.Equal(3, currentPage(env))
		s.Len(env.Records, 2)
	})

	s.Run("empty page returns the last page with records", func() {
		up := &emptyTailUpstream{fakeUpstream: fakeUpstream{pages: 2, perPage: 2}}
		env, _, err := NewPageWalker(up.fetch).Walk(s.ctx, WalkRequest{Page: 6})
		s.Require().NoError(err)
		s.Equal(3, up.callCount())
		s.Equal(2, currentPage(env))
		s.Len(env.Records, 2)
	})

	s.Run("no pages at all", func() {
		up := &fakeUpstream{pages: 0, perPage: 2}
		env, _, err := NewPageWalker(up.fetch).Walk(s.ctx, WalkRequest{Page: 3})
		s.Require().NoError(err)
		s.Equal(1, up.callCount())
		s.Empty(env.Records)
	})
}

// emptyTailUpstream keeps handing out a cursor after its last page, then
// answers that cursor with an empty page.
type emptyTailUpstream struct {
	fakeUpstream
}

func (u *emptyTailUpstream) fetch(ctx context.Context, q PageQuery) (*Envelope, *Response, error) {
	env, resp, err := u.fakeUpstream.fetch(ctx, q)
	if err == nil && currentPage(env) <= u.pages {
		env.Pagination.NextCursor = String(fmt.Sprintf("p%d:%d", currentPage(env)+1, q.PageSize))
	}
	return env, resp, err
}

// TestCursorPriority verifies that an explicit cursor skips the walk.
func (s *PageWalkerSuite) TestCursorPriority() {
	up := &fakeUpstream{pages: 9, perPage: 1}
	env, _, err := NewPageWalker(up.fetch).Walk(s.ctx, WalkRequest{Page: 2, Cursor: "p7:20"})
	s.Require().NoError(err)
	s.Equal(7, currentPage(env))
	s.Require().Len(up.calls, 1)
	s.Equal("p7:20", up.calls[0].Cursor)
}

// TestConstantPageSize verifies every step uses the size resolved up front.
func (s *PageWalkerSuite) TestConstantPageSize() {
	s.Run("explicit size", func() {
		up := &fakeUpstream{pages: 5, perPage: 1}
		_, _, err := NewPageWalker(up.fetch).Walk(s.ctx, WalkRequest{Page: 5, PageSize: 7})
		s.Require().NoError(err)
		for _, call := range up.calls {
			s.Equal(7, call.PageSize)
		}
	})

	s.Run("walker default", func() {
		up := &fakeUpstream{pages: 5, perPage: 1}
		_, _, err := NewPageWalker(up.fetch, WithWalkerPageSize(50)).Walk(s.ctx, WalkRequest{Page: 3})
		s.Require().NoError(err)
		for _, call := range up.calls {
			s.Equal(50, call.PageSize)
		}
	})

	s.Run("negative size is rejected before fetching", func() {
		up := &fakeUpstream{pages: 5, perPage: 1}
		_, _, err := NewPageWalker(up.fetch).Walk(s.ctx, WalkRequest{Page: 3, PageSize: -1})
		s.Require().Error(err)
		s.Zero(up.callCount())
	})
}

// TestErrors verifies that failures abort the walk immediately.
func (s *PageWalkerSuite) TestErrors() {
	s.Run("fetch error", func() {
		up := &fakeUpstream{pages: 5, perPage: 1, failPage: 2}
		_, _, err := NewPageWalker(up.fetch).Walk(s.ctx, WalkRequest{Page: 4})
		s.Require().EqualError(err, "connection reset")
		s.Equal(2, up.callCount())
	})

	s.Run("error envelope", func() {
		up := &fakeUpstream{pages: 5, perPage: 1, errorPage: 3}
		_, _, err := NewPageWalker(up.fetch).Walk(s.ctx, WalkRequest{Page: 4})

		var envErr *EnvelopeError
		s.Require().ErrorAs(err, &envErr)
		s.Equal("query timeout", envErr.Message)
		s.Equal(3, up.callCount())
	})
}

// TestConcurrentWalks verifies that independent walks do not share cursors.
func (s *PageWalkerSuite) TestConcurrentWalks() {
	up := &fakeUpstream{pages: 12, perPage: 2}
	walker := NewPageWalker(up.fetch)

	targets := []int{1, 3, 5, 8, 12, 12, 20}
	results := make([]int, len(targets))

	g, ctx := errgroup.WithContext(s.ctx)
	for i, target := range targets {
		g.Go(func() error {
			env, _, err := walker.Walk(ctx, WalkRequest{Page: target, PageSize: 4 + i%2})
			if err != nil {
				return err
			}
			results[i] = currentPage(env)
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	s.Equal([]int{1, 3, 5, 8, 12, 12, 12}, results)
}

// TestLogging verifies the walker reports its steps at debug level.
func (s *PageWalkerSuite) TestLogging() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	up := &fakeUpstream{pages: 2, perPage: 1}
	_, _, err := NewPageWalker(up.fetch, WithWalkerLogger(logger)).Walk(s.ctx, WalkRequest{Page: 5})
	s.Require().NoError(err)

	s.Contains(buf.String(), "advancing page")
	s.Contains(buf.String(), "pages exhausted before target")
}
