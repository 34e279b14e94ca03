package repository

import "errors"

// ErrNoRows is returned by Save and Delete when the target row does not exist.
var ErrNoRows = errors.New("no rows affected")
