package materialize

import "errors"

var (
	ErrNotInDirectory  = errors.New("entry not found in directory")
	ErrContainerExists = errors.New("container name already taken")
)
