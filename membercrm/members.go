package membercrm

import (
	"context"
	"fmt"
	"net/url"
)

const membersPath = "members"

// List retrieves one page of members. Page numbers are reached by walking
// cursors from the first page, so opts.Page = N costs N requests; pass the
// previous response's NextCursor to move forward one page at a time.
//
// Only the expansion groups named in opts.Expand are populated.
func (s *MembersService) List(ctx context.Context, opts *MemberListOptions) ([]*Member, *Response, error) {
	reqOpts := &MemberListOptions{}
	if opts != nil {
		*reqOpts = *opts
	}

	walker := s.client.newWalker(func(ctx context.Context, q PageQuery) (*Envelope, *Response, error) {
		stepOpts := *reqOpts
		stepOpts.PageSize = q.PageSize
		stepOpts.Cursor = q.Cursor
		return s.client.fetchEnvelope(ctx, membersPath, &stepOpts, legacyMemberKey)
	})

	env, resp, err := walker.Walk(ctx, WalkRequest{
		Page:     reqOpts.Page,
		PageSize: reqOpts.PageSize,
		Cursor:   reqOpts.Cursor,
	})
	if err != nil {
		return nil, resp, err
	}

	members := make([]*Member, 0, len(env.Records))
	for i, raw := range env.Records {
		m, err := DecodeMember(raw)
		if err != nil {
			return nil, resp, fmt.Errorf("decode member %d: %w", i, err)
		}
		members = append(members, m.Project(reqOpts.Expand))
	}

	return members, resp, nil
}

// Get retrieves a member by member number, such as "TKT123456". The number
// is validated and normalized before any request is made; an invalid one
// returns an error wrapping ErrInvalidMemberID.
func (s *MembersService) Get(ctx context.Context, memberID string, opts *GetOptions) (*Member, *Response, error) {
	id, err := ParseMemberID(memberID)
	if err != nil {
		return nil, nil, err
	}

	u := fmt.Sprintf("%s/%s", membersPath, url.PathEscape(id.String()))
	u, err = addOptions(u, opts)
	if err != nil {
		return nil, nil, err
	}

	raw, resp, err := s.client.Fetch(ctx, &FetchRequest{Endpoint: u})
	if err != nil {
		return nil, resp, err
	}

	rec, err := resolveSingle(raw, legacyMemberKey)
	if err != nil {
		return nil, resp, withResponse(err, resp)
	}

	m, err := DecodeMember(rec)
	if err != nil {
		return nil, resp, err
	}

	var expand ExpansionRequest
	if opts != nil {
		expand = opts.Expand
	}
	return m.Project(expand), resp, nil
}
