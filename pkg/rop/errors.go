package rop

import "errors"

var (
	ErrNoneValue = errors.New("called on a None value")
	ErrErrValue  = errors.New("called on an Err value")
	ErrOkValue   = errors.New("called on an Ok value")
	ErrNilError  = errors.New("result: nil error")
)
