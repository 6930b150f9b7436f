package core

import (
	"errors"
	"strconv"
)

var ErrNonPositiveIndex = errors.New("index must be a positive integer")

// Index points into a displayed contact list. It is stored zero-based;
// users type and read one-based values.
type Index struct {
	zeroBased int
}

// IndexFromOneBased converts a user-facing position.
func IndexFromOneBased(n int) (Index, error) {
	if n < 1 {
		return Index{}, ErrNonPositiveIndex
	}
	return Index{zeroBased: n - 1}, nil
}

// IndexFromZeroBased panics on negative input; it is meant for internal
// callers that already hold a slice position.
func IndexFromZeroBased(n int) Index {
	if n < 0 {
		panic("core: negative index")
	}
	return Index{zeroBased: n}
}

func (i Index) ZeroBased() int { return i.zeroBased }

func (i Index) OneBased() int { return i.zeroBased + 1 }

func (i Index) String() string {
	return strconv.Itoa(i.OneBased())
}
