package service

import "errors"

// ErrInvalidUpload marks upload rejections the caller should report as
// a 400 rather than a server error.
var ErrInvalidUpload = errors.New("invalid upload")
