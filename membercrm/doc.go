// Package membercrm provides a Go client library for a church member CRM's
// REST API.
//
// The CRM has changed shape several times over its life. Field names, enum
// spellings, date formats and response wrappers all differ between API
// versions and sometimes between endpoints of the same version. This
// package hides those differences: every response, whatever produced it, is
// decoded into the same Member and Seeker types.
//
// # Features
//
//   - Tolerant decoding of member and seeker records across API versions
//   - Normalized enums with case-insensitive matching where the CRM is
//     inconsistent
//   - Member number validation ("TKT" prefix) before any request is sent
//   - Optional expansion groups that are populated only when requested
//   - Page-number access on top of the CRM's cursor-only pagination
//   - Rate limit tracking from response headers
//   - Context support for all API calls
//
// # Authentication
//
// Requests carry a bearer token. Obtaining and refreshing it is outside the
// scope of this package; supply it directly, through a CredentialProvider,
// or through the environment:
//
//	client, err := membercrm.NewClient(nil, "https://crm.example.org/services/apexrest/crm/v1/", token)
//
//	client, err := membercrm.NewClientWithCredentials(ctx, nil, membercrm.StaticCredentials{
//		AccessToken: token,
//		InstanceURL: "https://crm.example.org",
//	})
//
//	// Reads MEMBERCRM_INSTANCE_URL, MEMBERCRM_ACCESS_TOKEN,
//	// MEMBERCRM_PAGE_SIZE, MEMBERCRM_USER_AGENT and MEMBERCRM_TIMEOUT.
//	client, err := membercrm.NewClientFromEnv(ctx)
//
// # Usage
//
// List members on the third page, with contact details:
//
//	members, resp, err := client.Members.List(ctx, &membercrm.MemberListOptions{
//		ListOptions: membercrm.ListOptions{Page: 3, PageSize: 50},
//		Campus:      membercrm.CampusDowntown,
//		Expand:      membercrm.Expand(membercrm.ExpandContactInformation),
//	})
//
// Move to the following page cheaply by passing the cursor back:
//
//	opts.Cursor = resp.NextCursor
//
// Get a single member:
//
//	member, _, err := client.Members.Get(ctx, "tkt123456", &membercrm.GetOptions{
//		Expand: membercrm.AllMemberGroups(),
//	})
//
// # Decoding without the client
//
// DecodeMember, DecodeSeeker and ResolveEnvelope work on raw payloads and
// can be used on their own, for example on webhook bodies.
//
// # Error Handling
//
// HTTP failures are reported as *ErrorResponse or *RateLimitError. A
// response that reports success=false becomes *EnvelopeError. A mandatory
// field that cannot be decoded yields *DecodeError:
//
//	var decErr *membercrm.DecodeError
//	if errors.As(err, &decErr) {
//		log.Printf("bad %s field %s", decErr.Entity, decErr.Field)
//	}
package membercrm
