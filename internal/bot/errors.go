package bot

import "errors"

// ErrEmptyToken indicates that no token was provided and no session was injected via WithSession.
var ErrEmptyToken = errors.New("token must be set or a session must be provided via WithSession")

// ErrUnknownComponent indicates a component interaction whose custom ID
// does not decode to a known tag.
var ErrUnknownComponent = errors.New("unknown component tag")
