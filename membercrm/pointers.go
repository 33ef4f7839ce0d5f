package membercrm

// Pointer helper functions for working with optional fields.
//
// Entity fields are pointers so that a value the CRM did not send (nil) can
// be told apart from one it sent as zero. These helpers build and read
// such pointers:
//
//	opts := &membercrm.MemberListOptions{
//	    ModifiedSince: membercrm.Ptr(time.Now().AddDate(0, 0, -7)),
//	}
//
//	fmt.Println(membercrm.StringValue(member.FirstName))

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// String returns a pointer to the provided string value.
func String(v string) *string {
	return &v
}

// StringValue returns the value of the string pointer passed in or
// "" if the pointer is nil.
func StringValue(v *string) string {
	if v != nil {
		return *v
	}
	return ""
}

// Int returns a pointer to the provided int value.
func Int(v int) *int {
	return &v
}

// IntValue returns the value of the int pointer passed in or
// 0 if the pointer is nil.
func IntValue(v *int) int {
	if v != nil {
		return *v
	}
	return 0
}
