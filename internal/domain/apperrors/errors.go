package apperrors

// Kind classifies a domain failure. The delivery layer maps kinds to HTTP
// status codes; the domain layer only ever deals in kinds.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindForbidden
)

// Error is a typed domain failure. Subject names the entity or field the
// broken rule is about ("member", "post", "follow", "email", "nickname").
type Error struct {
	Kind    Kind
	Subject string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches two domain errors by kind and subject, so callers can use
// errors.Is against the predefined errors below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Subject == t.Subject
}

func NotFound(subject, message string) *Error {
	return &Error{Kind: KindNotFound, Subject: subject, Message: message}
}

func Conflict(subject, message string) *Error {
	return &Error{Kind: KindConflict, Subject: subject, Message: message}
}

func Forbidden(subject, message string) *Error {
	return &Error{Kind: KindForbidden, Subject: subject, Message: message}
}

var (
	ErrMemberNotFound = NotFound("member", "member does not exist")
	ErrPostNotFound   = NotFound("post", "post does not exist")
	ErrFollowNotFound = NotFound("follow", "not following this member")

	ErrEmailTaken       = Conflict("email", "email is already in use")
	ErrNicknameTaken    = Conflict("nickname", "nickname is already in use")
	ErrAlreadyFollowing = Conflict("follow", "already following this member")

	ErrNotPostCreator = Forbidden("post", "only the creator can modify this post")
	ErrSelfFollow     = Forbidden("follow", "cannot follow yourself")
)
