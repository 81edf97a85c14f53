package bounds

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrInvalidArgument is returned if a range membership test receives an absent operand.
	ErrInvalidArgument = ierrors.New("invalid argument")

	// ErrParseBytesFailed is returned if information can not be parsed from a sequence of bytes.
	ErrParseBytesFailed = ierrors.New("failed to parse bytes")
)
