package resutils

import "github.com/pkg/errors"

// InvalidDescriptorError is the error marked on all errors returned when a resource descriptor cannot be
// satisfied by any device, before the device is ever contacted
var InvalidDescriptorError error = errors.New("invalid resource descriptor")

// InvalidRangeError is the error marked on all errors returned when a subresource range is empty or
// has a negative base
var InvalidRangeError error = errors.New("invalid subresource range")

// PowerOfTwoError is the error returned from CheckPow2 if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")
