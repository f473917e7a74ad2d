package store

// Kind classifies store errors into the closed taxonomy callers branch on.
type Kind int

const (
	// KindValidation marks malformed input: bad email, short password,
	// unknown role or status.
	KindValidation Kind = iota + 1
	// KindAuth marks operations that need a current session and have none,
	// plus failed sign-in.
	KindAuth
	// KindAuthz marks operations forbidden for the caller's role.
	KindAuthz
	// KindConflict marks uniqueness violations: duplicate email, duplicate
	// review.
	KindConflict
	// KindNotFound marks absent referenced entities.
	KindNotFound
	// KindExpired marks reset tokens past their expiry.
	KindExpired
)

// Error is a store error with a kind and a caller-facing message. Match the
// kind with errors.Is against the exported sentinels:
//
//	if errors.Is(err, store.ErrConflict) { ... }
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is reports kind equality against a bare sentinel, so wrapped messages
// still match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Message == ""
}

// Sentinels for errors.Is matching. Never returned directly; operations
// return an *Error carrying the same kind plus a message.
var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrAuth       = &Error{Kind: KindAuth}
	ErrAuthz      = &Error{Kind: KindAuthz}
	ErrConflict   = &Error{Kind: KindConflict}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrExpired    = &Error{Kind: KindExpired}
)

func validationErr(msg string) error { return &Error{Kind: KindValidation, Message: msg} }
func authErr(msg string) error       { return &Error{Kind: KindAuth, Message: msg} }
func authzErr(msg string) error      { return &Error{Kind: KindAuthz, Message: msg} }
func conflictErr(msg string) error   { return &Error{Kind: KindConflict, Message: msg} }
func notFoundErr(msg string) error   { return &Error{Kind: KindNotFound, Message: msg} }
func expiredErr(msg string) error    { return &Error{Kind: KindExpired, Message: msg} }
