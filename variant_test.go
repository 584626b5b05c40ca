package nostr

import (
	"encoding/json"
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKnownVariantsRoundTrip(t *testing.T) {
	for _, v := range Variants() {
		require.Equal(t, Variant(v), FromVariant(v).Variant(), "variant %s", v)
		require.False(t, FromVariant(v).IsCustom())
	}
}

func TestVariantFixedPoints(t *testing.T) {
	require.Equal(t, Variant(VariantTextNote), FromCode(1).Variant())
	require.Equal(t, Variant(VariantMetadata), FromCode(0).Variant())
	require.Equal(t, Variant(VariantContactList), FromCode(3).Variant())

	require.Equal(t, Kind(1), FromVariant(VariantTextNote))
	require.Equal(t, Kind(0), FromVariant(VariantMetadata))
	require.Equal(t, Kind(3), FromVariant(VariantContactList))
}

func TestCustomVariant(t *testing.T) {
	k := FromCode(1337)
	v := k.Variant()
	require.Equal(t, Variant(CustomVariant(1337)), v)
	require.True(t, k.IsCustom())
	require.Equal(t, uint16(1337), FromVariant(v).Code())
	require.Equal(t, "custom(1337)", v.String())
	require.Equal(t, "Custom 1337", v.Title())
}

func TestEveryCodeClassifies(t *testing.T) {
	known := make(map[Kind]KnownVariant)
	for _, v := range Variants() {
		known[v.Kind()] = v
	}

	for c := 0; c <= math.MaxUint16; c++ {
		k := FromCode(uint16(c))
		v := k.Variant()
		require.Equal(t, k, v.Kind())

		if kv, ok := known[k]; ok {
			require.Equal(t, Variant(kv), v)
		} else {
			require.Equal(t, Variant(CustomVariant(c)), v)
		}
	}
}

func TestVariantsTable(t *testing.T) {
	vs := Variants()
	require.Len(t, vs, int(numKnownVariants))

	require.True(t, slices.IsSortedFunc(vs, func(a, b KnownVariant) int {
		return int(a.Kind()) - int(b.Kind())
	}), "variants should come in code order")

	names := make(map[string]bool)
	for _, v := range vs {
		require.NotEmpty(t, v.String())
		require.False(t, names[v.String()], "duplicate name %s", v)
		names[v.String()] = true
	}

	// mutating the returned slice must not leak into the registry
	vs[0] = VariantZap
	require.Equal(t, VariantMetadata, Variants()[0])
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants() {
		parsed, err := ParseVariant(v.String())
		require.NoError(t, err)
		require.Equal(t, Variant(v), parsed)
	}

	v, err := ParseVariant("  Text_Note ")
	require.NoError(t, err)
	require.Equal(t, Variant(VariantTextNote), v)

	v, err = ParseVariant("custom(1337)")
	require.NoError(t, err)
	require.Equal(t, Variant(CustomVariant(1337)), v)

	v, err = ParseVariant("custom(3)")
	require.NoError(t, err)
	require.Equal(t, Variant(VariantContactList), v)

	_, err = ParseVariant("custom(70000)")
	require.Error(t, err)

	_, err = ParseVariant("custom(x)")
	require.Error(t, err)

	_, err = ParseVariant("textnote")
	require.ErrorIs(t, err, ErrUnknownVariant)

	_, err = ParseVariant("")
	require.ErrorIs(t, err, ErrUnknownVariant)
}

func TestVariantTitle(t *testing.T) {
	require.Equal(t, "Text Note", VariantTextNote.Title())
	require.Equal(t, "Metadata", VariantMetadata.Title())
	require.Equal(t, "Contact List", VariantContactList.Title())
	require.Equal(t, "Simple Group Join Request", VariantSimpleGroupJoinRequest.Title())
	require.Equal(t, "NWC Wallet Info", VariantNWCWalletInfo.Title())
	require.Equal(t, "NWC Wallet Request", VariantNWCWalletRequest.Title())
	require.Equal(t, "NWC Wallet Response", VariantNWCWalletResponse.Title())

	for _, v := range Variants() {
		require.NotContains(t, v.Title(), "Nwc", "variant %s", v)
	}
}

func TestUndefinedKnownVariant(t *testing.T) {
	bogus := KnownVariant(250)
	require.Equal(t, "variant(250)", bogus.String())
	require.Panics(t, func() { bogus.Kind() })

	_, err := bogus.MarshalText()
	require.Error(t, err)
}

func TestVariantText(t *testing.T) {
	b, err := json.Marshal(map[string]Variant{
		"a": VariantTextNote,
		"b": CustomVariant(1337),
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"a":"text_note","b":"custom(1337)"}`, string(b))

	var decoded struct {
		V KnownVariant `json:"v"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"v":"contact_list"}`), &decoded))
	require.Equal(t, VariantContactList, decoded.V)

	require.Error(t, json.Unmarshal([]byte(`{"v":"custom(1337)"}`), &decoded))
	require.Error(t, json.Unmarshal([]byte(`{"v":"nope"}`), &decoded))
}

func TestVariantConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for c := offset; c <= math.MaxUint16; c += 8 {
				k := Kind(c)
				if k.Variant().Kind() != k {
					t.Errorf("kind %d did not round trip", c)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}
