package bounds

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// BoundMode indicates which of the two bounds of a range membership test contain their boundary value. The lower and
// the upper bound can be included ("closed") or excluded ("open") independently of each other, which yields the four
// modes enumerated below.
type BoundMode uint8

const (
	// BoundModeInclusive includes both the lower and the upper bound ("[lower .. upper]").
	BoundModeInclusive BoundMode = iota

	// BoundModeExclusive excludes both the lower and the upper bound ("(lower .. upper)").
	BoundModeExclusive

	// BoundModeExcludeLower excludes the lower and includes the upper bound ("(lower .. upper]").
	BoundModeExcludeLower

	// BoundModeExcludeUpper includes the lower and excludes the upper bound ("[lower .. upper)").
	BoundModeExcludeUpper
)

// BoundModeNames contains a dictionary of the names of BoundModes.
var BoundModeNames = [...]string{
	"BoundModeInclusive",
	"BoundModeExclusive",
	"BoundModeExcludeLower",
	"BoundModeExcludeUpper",
}

// BoundModeFromBytes unmarshals a BoundMode from a sequence of bytes.
func BoundModeFromBytes(boundModeBytes []byte) (boundMode BoundMode, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(boundModeBytes)
	if boundMode, err = BoundModeFromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse BoundMode from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// BoundModeFromMarshalUtil unmarshals a BoundMode using a MarshalUtil (for easier unmarshalling).
func BoundModeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (boundMode BoundMode, err error) {
	boundModeByte, err := marshalUtil.ReadByte()
	if err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read BoundMode: %w", err)

		return
	}

	if boundMode = BoundMode(boundModeByte); boundMode > BoundModeExcludeUpper {
		err = ierrors.Wrapf(ErrParseBytesFailed, "unsupported BoundMode (%X)", boundMode)

		return
	}

	return
}

// Bytes returns a marshaled version of the BoundMode.
func (b BoundMode) Bytes() []byte {
	return []byte{byte(b)}
}

// String returns a human-readable version of the BoundMode.
func (b BoundMode) String() string {
	if int(b) >= len(BoundModeNames) {
		return fmt.Sprintf("BoundMode(%X)", uint8(b))
	}

	return BoundModeNames[b]
}
