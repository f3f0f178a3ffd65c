package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

// CardType identifies a payment card brand.
type CardType uint8

const (
	CardUnknown CardType = iota
	CardMasterCard
	CardVisa
	CardAmericanExpress
	CardDinersClub
	CardCarteBlanche
	CardDiscover
	CardEnRoute
	CardJCB
	CardSolo
	CardSwitch
	CardVisaElectron
)

var cardTypeCodes = [...]string{
	CardUnknown:         "Unknown",
	CardMasterCard:      "CCT_MASTERCARD",
	CardVisa:            "CCT_VISA",
	CardAmericanExpress: "CCT_AMERICANEXPRESS",
	CardDinersClub:      "CCT_DINERSCLUB",
	CardCarteBlanche:    "CCT_CARTEBLANCHE",
	CardDiscover:        "CCT_DISCOVER",
	CardEnRoute:         "CCT_ENROUTE",
	CardJCB:             "CCT_JCB",
	CardSolo:            "CCT_SOLO",
	CardSwitch:          "CCT_SWITCH",
	CardVisaElectron:    "CCT_VISAELECTRON",
}

var cardTypeAliases = map[string]CardType{
	"CCT_AMEX":   CardAmericanExpress,
	"CCT_DINERS": CardDinersClub,
}

// String returns the payment processor code, e.g. "CCT_VISA".
func (t CardType) String() string {
	if int(t) < len(cardTypeCodes) {
		return cardTypeCodes[t]
	}
	return cardTypeCodes[CardUnknown]
}

func (t CardType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *CardType) UnmarshalText(text []byte) error {
	parsed := ParseCardType(string(text))
	if parsed == CardUnknown && !strings.EqualFold(string(text), CardUnknown.String()) {
		return fmt.Errorf("%w: unknown card type %q", ErrMalformedInput, text)
	}
	*t = parsed
	return nil
}

// ParseCardType maps a processor code to a CardType, ignoring case.
// Unrecognized codes yield CardUnknown.
func ParseCardType(code string) CardType {
	upper := strings.ToUpper(code)
	if t, ok := cardTypeAliases[upper]; ok {
		return t
	}
	for i, c := range cardTypeCodes {
		if c == upper && CardType(i) != CardUnknown {
			return CardType(i)
		}
	}
	return CardUnknown
}

// prefixRange matches numbers whose leading len(lo) digits fall in [lo, hi].
type prefixRange struct {
	lo, hi string
}

type cardPattern struct {
	lengths  []int
	prefixes []string
	ranges   []prefixRange
}

func (p cardPattern) matches(n string) bool {
	if !slices.Contains(p.lengths, len(n)) {
		return false
	}
	for _, prefix := range p.prefixes {
		if strings.HasPrefix(n, prefix) {
			return true
		}
	}
	for _, r := range p.ranges {
		if len(n) < len(r.lo) {
			continue
		}
		if head := n[:len(r.lo)]; head >= r.lo && head <= r.hi {
			return true
		}
	}
	return false
}

var cardPatterns = map[CardType][]cardPattern{
	CardMasterCard: {
		{lengths: []int{16}, ranges: []prefixRange{{"51", "55"}, {"2221", "2720"}}},
	},
	CardVisa: {
		{lengths: []int{13, 16}, prefixes: []string{"4"}},
	},
	CardAmericanExpress: {
		{lengths: []int{15}, prefixes: []string{"34", "37"}},
	},
	CardDinersClub: {
		{lengths: []int{14}, prefixes: []string{"30", "36", "38"}},
	},
	CardDiscover: {
		{lengths: []int{16}, prefixes: []string{"6011", "65"}},
	},
	CardEnRoute: {
		{lengths: []int{15}, prefixes: []string{"2014", "2149"}},
	},
	CardJCB: {
		{lengths: []int{16}, prefixes: []string{"35"}},
		{lengths: []int{15}, prefixes: []string{"2131", "1800"}},
	},
	CardSolo: {
		{lengths: []int{16, 18, 19}, prefixes: []string{"63", "6767"}},
	},
	CardSwitch: {
		{lengths: []int{16, 18, 19}, prefixes: []string{"4903", "4905", "4911", "4936", "6333", "6759", "564182", "633110"}},
	},
	CardVisaElectron: {
		{lengths: []int{16}, prefixes: []string{"4917", "4913", "4508", "4844", "4027", "417500"}},
	},
}

// cardDetectionOrder decides ties between overlapping brands in CardTypeOf.
var cardDetectionOrder = []CardType{
	CardMasterCard,
	CardVisa,
	CardAmericanExpress,
	CardDinersClub,
	CardDiscover,
	CardEnRoute,
	CardJCB,
	CardSolo,
	CardSwitch,
	CardVisaElectron,
}

// MatchesCardType reports whether number has a length and prefix issued by
// brand t and passes the Luhn check. Carte Blanche shares the Diners Club
// rules. Spaces and dashes in number are ignored.
func MatchesCardType(t CardType, number string) bool {
	if t == CardCarteBlanche {
		t = CardDinersClub
	}
	n := sanitizer.NormalizeCreditCard(number)
	for _, p := range cardPatterns[t] {
		if p.matches(n) {
			return IsCreditCard(n)
		}
	}
	return false
}

func IsMasterCard(cc string) bool      { return MatchesCardType(CardMasterCard, cc) }
func IsVisa(cc string) bool            { return MatchesCardType(CardVisa, cc) }
func IsAmericanExpress(cc string) bool { return MatchesCardType(CardAmericanExpress, cc) }
func IsDinersClub(cc string) bool      { return MatchesCardType(CardDinersClub, cc) }
func IsCarteBlanche(cc string) bool    { return MatchesCardType(CardCarteBlanche, cc) }
func IsDiscover(cc string) bool        { return MatchesCardType(CardDiscover, cc) }
func IsEnRoute(cc string) bool         { return MatchesCardType(CardEnRoute, cc) }
func IsJCB(cc string) bool             { return MatchesCardType(CardJCB, cc) }
func IsSolo(cc string) bool            { return MatchesCardType(CardSolo, cc) }
func IsSwitch(cc string) bool          { return MatchesCardType(CardSwitch, cc) }
func IsVisaElectron(cc string) bool    { return MatchesCardType(CardVisaElectron, cc) }

// CardTypeOf returns the first brand, in detection order, that number
// matches. Numbers failing the Luhn check are CardUnknown.
func CardTypeOf(number string) CardType {
	n := sanitizer.NormalizeCreditCard(number)
	if n == "" || !IsCreditCard(n) {
		return CardUnknown
	}
	for _, t := range cardDetectionOrder {
		if MatchesCardType(t, n) {
			return t
		}
	}
	return CardUnknown
}

// IsAnyCard reports whether number is a Luhn-valid card of a known brand.
func IsAnyCard(number string) bool {
	if number == "" {
		return EmptyOK
	}
	return CardTypeOf(number) != CardUnknown
}

// IsCardMatch reports whether number belongs to the brand named by code,
// e.g. IsCardMatch("CCT_VISA", "4111111111111111"). An unknown code never
// matches.
func IsCardMatch(code, number string) bool {
	if code == "" || number == "" {
		return EmptyOK
	}
	t := ParseCardType(code)
	if t == CardUnknown {
		return false
	}
	return MatchesCardType(t, number)
}
