package server

import (
	"fmt"
)

type ErrMarshalResponse struct {
	Source error
}

func (e ErrMarshalResponse) Error() string {
	return fmt.Sprintf("failed to marshal response: %v", e.Source)
}

func (e ErrMarshalResponse) Unwrap() error {
	return e.Source
}
