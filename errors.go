// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package fileattrs

import "errors"

// ErrWrongType is returned (wrapped) when an argument doesn't have the shape
// an operation requires, such as an attribute record without any fields, or a
// record whose first field isn't a string.
var ErrWrongType = errors.New("wrong type argument")

// ErrWrongArity is returned (wrapped) when an operation gets passed arguments
// it doesn't accept, such as the “users” command being called with
// arguments.
var ErrWrongArity = errors.New("wrong number of arguments")
