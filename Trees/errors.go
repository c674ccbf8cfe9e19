package Trees

import "github.com/cockroachdb/errors"

// ErrEmptyTree is returned by accessors that need at least one value.
var ErrEmptyTree = errors.New("Trees: empty tree")

// ErrCorrupt marks every error returned by Validate.
var ErrCorrupt = errors.New("Trees: corrupt tree")
