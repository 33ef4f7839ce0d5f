package membercrm

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const seekersPath = "seekers"

// List retrieves one page of seekers. Paging works as for
// MembersService.List.
func (s *SeekersService) List(ctx context.Context, opts *SeekerListOptions) ([]*Seeker, *Response, error) {
	reqOpts := &SeekerListOptions{}
	if opts != nil {
		*reqOpts = *opts
	}

	walker := s.client.newWalker(func(ctx context.Context, q PageQuery) (*Envelope, *Response, error) {
		stepOpts := *reqOpts
		stepOpts.PageSize = q.PageSize
		stepOpts.Cursor = q.Cursor
		return s.client.fetchEnvelope(ctx, seekersPath, &stepOpts, legacySeekerKey)
	})

	env, resp, err := walker.Walk(ctx, WalkRequest{
		Page:     reqOpts.Page,
		PageSize: reqOpts.PageSize,
		Cursor:   reqOpts.Cursor,
	})
	if err != nil {
		return nil, resp, err
	}

	seekers := make([]*Seeker, 0, len(env.Records))
	for i, raw := range env.Records {
		sk, err := DecodeSeeker(raw)
		if err != nil {
			return nil, resp, fmt.Errorf("decode seeker %d: %w", i, err)
		}
		seekers = append(seekers, sk.Project(reqOpts.Expand))
	}

	return seekers, resp, nil
}

// Get retrieves a seeker by record ID.
func (s *SeekersService) Get(ctx context.Context, seekerID string, opts *GetOptions) (*Seeker, *Response, error) {
	seekerID = strings.TrimSpace(seekerID)
	if seekerID == "" {
		return nil, nil, errors.New("seeker id must not be empty")
	}

	u := fmt.Sprintf("%s/%s", seekersPath, url.PathEscape(seekerID))
	u, err := addOptions(u, opts)
	if err != nil {
		return nil, nil, err
	}

	raw, resp, err := s.client.Fetch(ctx, &FetchRequest{Endpoint: u})
	if err != nil {
		return nil, resp, err
	}

	rec, err := resolveSingle(raw, legacySeekerKey)
	if err != nil {
		return nil, resp, withResponse(err, resp)
	}

	sk, err := DecodeSeeker(rec)
	if err != nil {
		return nil, resp, err
	}

	var expand ExpansionRequest
	if opts != nil {
		expand = opts.Expand
	}
	return sk.Project(expand), resp, nil
}
