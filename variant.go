package nostr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Variant is the semantic category of a Kind. It is either a KnownVariant,
// bound to a code reserved by some NIP, or a CustomVariant carrying a code
// the library has no name for.
type Variant interface {
	Kind() Kind
	String() string
	Title() string

	isVariant()
}

type (
	KnownVariant  uint8
	CustomVariant Kind
)

const (
	VariantMetadata KnownVariant = iota
	VariantTextNote
	VariantRecommendServer
	VariantContactList
	VariantEncryptedDirectMessage
	VariantDeletion
	VariantRepost
	VariantReaction
	VariantSimpleGroupChatMessage
	VariantSimpleGroupThread
	VariantSimpleGroupReply
	VariantChannelCreation
	VariantChannelMetadata
	VariantChannelMessage
	VariantChannelHideMessage
	VariantChannelMuteUser
	VariantFileMetadata
	VariantPatch
	VariantSimpleGroupAddUser
	VariantSimpleGroupRemoveUser
	VariantSimpleGroupEditMetadata
	VariantSimpleGroupAddPermission
	VariantSimpleGroupRemovePermission
	VariantSimpleGroupDeleteEvent
	VariantSimpleGroupEditGroupStatus
	VariantSimpleGroupCreateGroup
	VariantSimpleGroupDeleteGroup
	VariantSimpleGroupJoinRequest
	VariantSimpleGroupLeaveRequest
	VariantZapRequest
	VariantZap
	VariantMuteList
	VariantPinList
	VariantRelayListMetadata
	VariantNWCWalletInfo
	VariantClientAuthentication
	VariantNWCWalletRequest
	VariantNWCWalletResponse
	VariantNostrConnect
	VariantCategorizedPeopleList
	VariantCategorizedBookmarksList
	VariantProfileBadges
	VariantBadgeDefinition
	VariantStallDefinition
	VariantProductDefinition
	VariantArticle
	VariantApplicationSpecificData
	VariantRepositoryAnnouncement
	VariantRepositoryState
	VariantSimpleGroupMetadata
	VariantSimpleGroupAdmins
	VariantSimpleGroupMembers

	numKnownVariants
)

var knownVariants = [numKnownVariants]struct {
	kind Kind
	name string
}{
	VariantMetadata:                    {KindProfileMetadata, "metadata"},
	VariantTextNote:                    {KindTextNote, "text_note"},
	VariantRecommendServer:             {KindRecommendServer, "recommend_server"},
	VariantContactList:                 {KindContactList, "contact_list"},
	VariantEncryptedDirectMessage:      {KindEncryptedDirectMessage, "encrypted_direct_message"},
	VariantDeletion:                    {KindDeletion, "deletion"},
	VariantRepost:                      {KindRepost, "repost"},
	VariantReaction:                    {KindReaction, "reaction"},
	VariantSimpleGroupChatMessage:      {KindSimpleGroupChatMessage, "simple_group_chat_message"},
	VariantSimpleGroupThread:           {KindSimpleGroupThread, "simple_group_thread"},
	VariantSimpleGroupReply:            {KindSimpleGroupReply, "simple_group_reply"},
	VariantChannelCreation:             {KindChannelCreation, "channel_creation"},
	VariantChannelMetadata:             {KindChannelMetadata, "channel_metadata"},
	VariantChannelMessage:              {KindChannelMessage, "channel_message"},
	VariantChannelHideMessage:          {KindChannelHideMessage, "channel_hide_message"},
	VariantChannelMuteUser:             {KindChannelMuteUser, "channel_mute_user"},
	VariantFileMetadata:                {KindFileMetadata, "file_metadata"},
	VariantPatch:                       {KindPatch, "patch"},
	VariantSimpleGroupAddUser:          {KindSimpleGroupAddUser, "simple_group_add_user"},
	VariantSimpleGroupRemoveUser:       {KindSimpleGroupRemoveUser, "simple_group_remove_user"},
	VariantSimpleGroupEditMetadata:     {KindSimpleGroupEditMetadata, "simple_group_edit_metadata"},
	VariantSimpleGroupAddPermission:    {KindSimpleGroupAddPermission, "simple_group_add_permission"},
	VariantSimpleGroupRemovePermission: {KindSimpleGroupRemovePermission, "simple_group_remove_permission"},
	VariantSimpleGroupDeleteEvent:      {KindSimpleGroupDeleteEvent, "simple_group_delete_event"},
	VariantSimpleGroupEditGroupStatus:  {KindSimpleGroupEditGroupStatus, "simple_group_edit_group_status"},
	VariantSimpleGroupCreateGroup:      {KindSimpleGroupCreateGroup, "simple_group_create_group"},
	VariantSimpleGroupDeleteGroup:      {KindSimpleGroupDeleteGroup, "simple_group_delete_group"},
	VariantSimpleGroupJoinRequest:      {KindSimpleGroupJoinRequest, "simple_group_join_request"},
	VariantSimpleGroupLeaveRequest:     {KindSimpleGroupLeaveRequest, "simple_group_leave_request"},
	VariantZapRequest:                  {KindZapRequest, "zap_request"},
	VariantZap:                         {KindZap, "zap"},
	VariantMuteList:                    {KindMuteList, "mute_list"},
	VariantPinList:                     {KindPinList, "pin_list"},
	VariantRelayListMetadata:           {KindRelayListMetadata, "relay_list_metadata"},
	VariantNWCWalletInfo:               {KindNWCWalletInfo, "nwc_wallet_info"},
	VariantClientAuthentication:        {KindClientAuthentication, "client_authentication"},
	VariantNWCWalletRequest:            {KindNWCWalletRequest, "nwc_wallet_request"},
	VariantNWCWalletResponse:           {KindNWCWalletResponse, "nwc_wallet_response"},
	VariantNostrConnect:                {KindNostrConnect, "nostr_connect"},
	VariantCategorizedPeopleList:       {KindCategorizedPeopleList, "categorized_people_list"},
	VariantCategorizedBookmarksList:    {KindCategorizedBookmarksList, "categorized_bookmarks_list"},
	VariantProfileBadges:               {KindProfileBadges, "profile_badges"},
	VariantBadgeDefinition:             {KindBadgeDefinition, "badge_definition"},
	VariantStallDefinition:             {KindStallDefinition, "stall_definition"},
	VariantProductDefinition:           {KindProductDefinition, "product_definition"},
	VariantArticle:                     {KindArticle, "article"},
	VariantApplicationSpecificData:     {KindApplicationSpecificData, "application_specific_data"},
	VariantRepositoryAnnouncement:      {KindRepositoryAnnouncement, "repository_announcement"},
	VariantRepositoryState:             {KindRepositoryState, "repository_state"},
	VariantSimpleGroupMetadata:         {KindSimpleGroupMetadata, "simple_group_metadata"},
	VariantSimpleGroupAdmins:           {KindSimpleGroupAdmins, "simple_group_admins"},
	VariantSimpleGroupMembers:          {KindSimpleGroupMembers, "simple_group_members"},
}

// display titles for names that don't survive plain title casing
var variantTitles = map[KnownVariant]string{
	VariantNWCWalletInfo:     "NWC Wallet Info",
	VariantNWCWalletRequest:  "NWC Wallet Request",
	VariantNWCWalletResponse: "NWC Wallet Response",
}

var (
	ErrUnknownVariant = errors.New("unknown kind variant")

	// read-only after init
	variantsByKind = make(map[Kind]KnownVariant, numKnownVariants)
	variantsByName = make(map[string]KnownVariant, numKnownVariants)
)

func init() {
	for v, entry := range knownVariants {
		if entry.name == "" {
			panic(fmt.Sprintf("kind variant %d has no table entry", v))
		}
		if prev, ok := variantsByKind[entry.kind]; ok {
			panic(fmt.Sprintf("kind %d bound to both %s and %s", entry.kind, prev, entry.name))
		}
		variantsByKind[entry.kind] = KnownVariant(v)
		variantsByName[entry.name] = KnownVariant(v)
	}
	debugLog("kind registry built with %d variants", len(variantsByKind))
}

// FromVariant returns the code bound to the given variant.
func FromVariant(v Variant) Kind { return v.Kind() }

// Variant classifies the kind. Codes without a known name come back as a
// CustomVariant carrying the same code, so this never fails.
func (k Kind) Variant() Variant {
	if v, ok := variantsByKind[k]; ok {
		return v
	}
	return CustomVariant(k)
}

// IsCustom reports whether the kind has no known name.
func (k Kind) IsCustom() bool {
	_, ok := variantsByKind[k]
	return !ok
}

// Variants returns every known variant in the order of their codes.
func Variants() []KnownVariant {
	list := make([]KnownVariant, numKnownVariants)
	for i := range list {
		list[i] = KnownVariant(i)
	}
	return list
}

// ParseVariant is the inverse of Variant.String(). Known names are matched
// case-insensitively. "custom(<code>)" is classified like any other code, so
// "custom(1)" gives back VariantTextNote.
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if v, ok := variantsByName[name]; ok {
		return v, nil
	}

	if inner, ok := strings.CutPrefix(name, "custom("); ok {
		if inner, ok = strings.CutSuffix(inner, ")"); ok {
			code, err := strconv.ParseUint(inner, 10, 16)
			if err != nil {
				return nil, fmt.Errorf("invalid custom kind %q: %w", inner, err)
			}
			return Kind(code).Variant(), nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Kind panics if v is not one of the declared variant constants.
func (v KnownVariant) Kind() Kind {
	if v >= numKnownVariants {
		panic(fmt.Sprintf("undefined kind variant %d", uint8(v)))
	}
	return knownVariants[v].kind
}

func (v KnownVariant) String() string {
	if v >= numKnownVariants {
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
	return knownVariants[v].name
}

func (v KnownVariant) Title() string {
	if title, ok := variantTitles[v]; ok {
		return title
	}
	return cases.Title(language.English).String(strings.ReplaceAll(v.String(), "_", " "))
}

func (v KnownVariant) MarshalText() ([]byte, error) {
	if v >= numKnownVariants {
		return nil, fmt.Errorf("undefined kind variant %d", uint8(v))
	}
	return []byte(v.String()), nil
}

func (v *KnownVariant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	known, ok := parsed.(KnownVariant)
	if !ok {
		return fmt.Errorf("%w: %q is a custom kind", ErrUnknownVariant, text)
	}
	*v = known
	return nil
}

func (KnownVariant) isVariant() {}

func (c CustomVariant) Kind() Kind { return Kind(c) }

func (c CustomVariant) String() string {
	return "custom(" + strconv.FormatUint(uint64(c), 10) + ")"
}

func (c CustomVariant) Title() string {
	return "Custom " + strconv.FormatUint(uint64(c), 10)
}

func (c CustomVariant) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (CustomVariant) isVariant() {}
