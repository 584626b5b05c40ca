package nostr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindRange(t *testing.T) {
	require.True(t, Kind(1).IsRegular())
	require.True(t, Kind(9).IsRegular())
	require.True(t, Kind(1111).IsRegular())
	require.True(t, Kind(0).IsReplaceable())
	require.True(t, Kind(3).IsReplaceable())
	require.True(t, Kind(10002).IsReplaceable())
	require.True(t, Kind(10050).IsReplaceable())
	require.True(t, Kind(22242).IsEphemeral())
	require.True(t, Kind(30023).IsAddressable())
	require.True(t, Kind(39000).IsAddressable())

	require.False(t, Kind(0).IsRegular())
	require.False(t, Kind(3).IsRegular())
	require.False(t, Kind(20000).IsReplaceable())
	require.False(t, Kind(40000).IsAddressable())

	for _, tc := range []struct {
		kind Kind
		want Range
	}{
		{KindProfileMetadata, Replaceable},
		{KindTextNote, Regular},
		{KindContactList, Replaceable},
		{KindReaction, Regular},
		{45, Regular},
		{999, Regular},
		{KindZap, Regular},
		{KindMuteList, Replaceable},
		{19999, Replaceable},
		{KindNostrConnect, Ephemeral},
		{29999, Ephemeral},
		{KindArticle, Addressable},
		{39999, Addressable},
		{40000, Regular},
		{math.MaxUint16, Regular},
	} {
		require.Equal(t, tc.want, tc.kind.Range(), "kind %d", tc.kind)
	}
}

func TestKindRangeIsExclusive(t *testing.T) {
	for c := 0; c <= math.MaxUint16; c++ {
		k := Kind(c)
		n := 0
		for _, in := range []bool{k.IsRegular(), k.IsReplaceable(), k.IsEphemeral(), k.IsAddressable()} {
			if in {
				n++
			}
		}
		require.LessOrEqual(t, n, 1, "kind %d is in %d ranges", c, n)
	}
}

func TestRangeString(t *testing.T) {
	require.Equal(t, "regular", Regular.String())
	require.Equal(t, "replaceable", Replaceable.String())
	require.Equal(t, "ephemeral", Ephemeral.String())
	require.Equal(t, "addressable", Addressable.String())
	require.Equal(t, "range(9)", Range(9).String())
}

func TestKindCodeRoundTrip(t *testing.T) {
	for c := 0; c <= math.MaxUint16; c++ {
		require.Equal(t, uint16(c), FromCode(uint16(c)).Code())
	}
}

func TestKindFromInteger(t *testing.T) {
	k, err := KindFromInteger(1)
	require.NoError(t, err)
	require.Equal(t, KindTextNote, k)

	k, err = KindFromInteger(uint64(65535))
	require.NoError(t, err)
	require.Equal(t, Kind(65535), k)

	k, err = KindFromInteger(int8(-1))
	require.ErrorIs(t, err, ErrKindOutOfRange)
	require.Zero(t, k)

	_, err = KindFromInteger(65536)
	require.ErrorIs(t, err, ErrKindOutOfRange)

	_, err = KindFromInteger(uint32(math.MaxUint32))
	require.ErrorIs(t, err, ErrKindOutOfRange)

	_, err = KindFromInteger(int64(math.MinInt64))
	require.ErrorIs(t, err, ErrKindOutOfRange)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "1 (text_note)", KindTextNote.String())
	require.Equal(t, "0 (metadata)", KindProfileMetadata.String())
	require.Equal(t, "1337 (custom(1337))", Kind(1337).String())
}
