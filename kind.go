package nostr

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

type (
	Kind  uint16
	Range uint8
)

const (
	// Ranges.
	Regular Range = iota
	Replaceable
	Ephemeral
	Addressable

	// Deprecated: use Addressable
	ParameterizedReplaceable = Addressable
)

const (
	KindProfileMetadata             Kind = 0
	KindTextNote                    Kind = 1
	KindRecommendServer             Kind = 2
	KindContactList                 Kind = 3
	KindEncryptedDirectMessage      Kind = 4
	KindDeletion                    Kind = 5
	KindRepost                      Kind = 6
	KindReaction                    Kind = 7
	KindSimpleGroupChatMessage      Kind = 9
	KindSimpleGroupThread           Kind = 11
	KindSimpleGroupReply            Kind = 12
	KindChannelCreation             Kind = 40
	KindChannelMetadata             Kind = 41
	KindChannelMessage              Kind = 42
	KindChannelHideMessage          Kind = 43
	KindChannelMuteUser             Kind = 44
	KindFileMetadata                Kind = 1063
	KindPatch                       Kind = 1617
	KindSimpleGroupAddUser          Kind = 9000
	KindSimpleGroupRemoveUser       Kind = 9001
	KindSimpleGroupEditMetadata     Kind = 9002
	KindSimpleGroupAddPermission    Kind = 9003
	KindSimpleGroupRemovePermission Kind = 9004
	KindSimpleGroupDeleteEvent      Kind = 9005
	KindSimpleGroupEditGroupStatus  Kind = 9006
	KindSimpleGroupCreateGroup      Kind = 9007
	KindSimpleGroupDeleteGroup      Kind = 9008
	KindSimpleGroupJoinRequest      Kind = 9021
	KindSimpleGroupLeaveRequest     Kind = 9022
	KindZapRequest                  Kind = 9734
	KindZap                         Kind = 9735
	KindMuteList                    Kind = 10000
	KindPinList                     Kind = 10001
	KindRelayListMetadata           Kind = 10002
	KindNWCWalletInfo               Kind = 13194
	KindClientAuthentication        Kind = 22242
	KindNWCWalletRequest            Kind = 23194
	KindNWCWalletResponse           Kind = 23195
	KindNostrConnect                Kind = 24133
	KindCategorizedPeopleList       Kind = 30000
	KindCategorizedBookmarksList    Kind = 30001
	KindProfileBadges               Kind = 30008
	KindBadgeDefinition             Kind = 30009
	KindStallDefinition             Kind = 30017
	KindProductDefinition           Kind = 30018
	KindArticle                     Kind = 30023
	KindApplicationSpecificData     Kind = 30078
	KindRepositoryAnnouncement      Kind = 30617
	KindRepositoryState             Kind = 30618
	KindSimpleGroupMetadata         Kind = 39000
	KindSimpleGroupAdmins           Kind = 39001
	KindSimpleGroupMembers          Kind = 39002
)

var ErrKindOutOfRange = errors.New("kind out of range")

// FromCode wraps a raw numeric code. Every uint16 is a valid kind.
func FromCode(code uint16) Kind { return Kind(code) }

// KindFromInteger converts any integer into a Kind, failing only when the value
// doesn't fit in 16 bits.
func KindFromInteger[I constraints.Integer](v I) (Kind, error) {
	if v < 0 || uint64(v) > 65535 {
		return 0, fmt.Errorf("%w: %d", ErrKindOutOfRange, v)
	}
	return Kind(v), nil
}

// Code returns the raw numeric value.
func (k Kind) Code() uint16 { return uint16(k) }

func (k Kind) String() string {
	return fmt.Sprintf("%d (%s)", uint16(k), k.Variant())
}

// IsRegular checks if the given kind is in Regular range.
func (k Kind) IsRegular() bool {
	return (1000 <= k && k < 10000) || (4 <= k && k < 45) || k == 1 || k == 2
}

// IsReplaceable checks if the given kind is in Replaceable range.
func (k Kind) IsReplaceable() bool {
	return (10000 <= k && k < 20000) || k == 0 || k == 3
}

// IsEphemeral checks if the given kind is in Ephemeral range.
func (k Kind) IsEphemeral() bool {
	return 20000 <= k && k < 30000
}

// IsAddressable checks if the given kind is in Addressable range.
func (k Kind) IsAddressable() bool {
	return 30000 <= k && k < 40000
}

// Range returns the kind range based on NIP-01.
// Kinds outside every defined range are treated as regular.
func (k Kind) Range() Range {
	switch {
	case k.IsReplaceable():
		return Replaceable
	case k.IsEphemeral():
		return Ephemeral
	case k.IsAddressable():
		return Addressable
	}
	return Regular
}

func (r Range) String() string {
	switch r {
	case Regular:
		return "regular"
	case Replaceable:
		return "replaceable"
	case Ephemeral:
		return "ephemeral"
	case Addressable:
		return "addressable"
	}
	return fmt.Sprintf("range(%d)", uint8(r))
}
