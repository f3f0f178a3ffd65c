package validator

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/dmitrymomot/inputkit/pkg/validate"
)

// Factory builds a rule from string arguments, as read from a command line
// or a batch file.
type Factory func(field, value string, args []string) (Rule, error)

var registry = map[string]Factory{
	"required":     plain(Required),
	"min_length":   withInt(MinLen),
	"max_length":   withInt(MaxLen),
	"length":       withInt(Len),
	"alphabetic":   plain(Alphabetic),
	"alphanumeric": plain(Alphanumeric),

	"integer":             plain(Integer),
	"signed_integer":      plain(SignedInteger),
	"positive_integer":    plain(PositiveInteger),
	"nonnegative_integer": plain(NonnegativeInteger),
	"negative_integer":    plain(NegativeInteger),
	"nonpositive_integer": plain(NonpositiveInteger),
	"integer_range":       integerRange,
	"float":               plain(Float),
	"decimal":             decimal,

	"ssn":                   plain(SSN),
	"zip_code":              plain(ZipCode),
	"contiguous_zip_code":   plain(ContiguousZipCode),
	"state_code":            plain(StateCode),
	"contiguous_state_code": plain(ContiguousStateCode),
	"email":                 plain(Email),
	"email_list":            plain(EmailList),
	"url":                   plain(URL),
	"us_phone":              plain(USPhone),
	"international_phone":   plain(InternationalPhone),
	"not_po_box":            plain(NotPoBox),
	"boolean":               plain(Boolean),
	"indicator":             plain(Indicator),

	"date":              plain(Date),
	"time":              plain(Time),
	"date_after_today":  plain(DateAfterToday),
	"date_before_today": plain(DateBeforeToday),

	"credit_card": plain(CreditCard),
	"any_card":    plain(AnyCard),
	"card_match":  cardMatch,
	"gift_card":   plain(GiftCard),
	"upc":         plain(UPC),
	"ean":         plain(EAN),

	"database_id": plain(DatabaseID),
	"uuid":        plain(UUID),
}

// RuleFor builds the rule registered under kind. Kinds that take parameters
// read them from args, e.g. RuleFor("integer_range", "qty", "5", "1", "10").
func RuleFor(kind, field, value string, args ...string) (Rule, error) {
	factory, ok := registry[kind]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	rule, err := factory(field, value, args)
	if err != nil {
		return Rule{}, fmt.Errorf("%s: %w", kind, err)
	}
	return rule, nil
}

// Kinds returns the registered kind names in sorted order.
func Kinds() []string {
	return slices.Sorted(maps.Keys(registry))
}

// HasKind reports whether kind has a registered rule.
func HasKind(kind string) bool {
	_, ok := registry[kind]
	return ok
}

func plain(fn func(field, value string) Rule) Factory {
	return func(field, value string, _ []string) (Rule, error) {
		return fn(field, value), nil
	}
}

func withInt(fn func(field, value string, n int) Rule) Factory {
	return func(field, value string, args []string) (Rule, error) {
		n, err := intArg(args, 0)
		if err != nil {
			return Rule{}, err
		}
		return fn(field, value, n), nil
	}
}

func integerRange(field, value string, args []string) (Rule, error) {
	lo, err := intArg(args, 0)
	if err != nil {
		return Rule{}, err
	}
	hi, err := intArg(args, 1)
	if err != nil {
		return Rule{}, err
	}
	return IntegerInRange(field, value, lo, hi), nil
}

// decimal takes no arguments (any sign, any precision) or exactly four:
// allow_negative allow_positive min_decimals max_decimals.
func decimal(field, value string, args []string) (Rule, error) {
	d := validate.Decimal{AllowNegative: true, AllowPositive: true, MinDecimals: -1, MaxDecimals: -1}
	if len(args) == 0 {
		return Decimal(field, value, d), nil
	}
	if len(args) != 4 {
		return Rule{}, fmt.Errorf("%w: want 0 or 4 arguments, got %d", ErrMissingArgument, len(args))
	}

	var err error
	if d.AllowNegative, err = boolArg(args, 0); err != nil {
		return Rule{}, err
	}
	if d.AllowPositive, err = boolArg(args, 1); err != nil {
		return Rule{}, err
	}
	if d.MinDecimals, err = intArg(args, 2); err != nil {
		return Rule{}, err
	}
	if d.MaxDecimals, err = intArg(args, 3); err != nil {
		return Rule{}, err
	}
	return Decimal(field, value, d), nil
}

func cardMatch(field, value string, args []string) (Rule, error) {
	if len(args) == 0 {
		return Rule{}, fmt.Errorf("%w: card type code", ErrMissingArgument)
	}
	if validate.ParseCardType(args[0]) == validate.CardUnknown {
		return Rule{}, fmt.Errorf("%w: unknown card type %q", ErrInvalidArgument, args[0])
	}
	return CardMatch(field, value, args[0]), nil
}

func intArg(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%w: argument %d", ErrMissingArgument, i+1)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidArgument, args[i])
	}
	return n, nil
}

func boolArg(args []string, i int) (bool, error) {
	if i >= len(args) {
		return false, fmt.Errorf("%w: argument %d", ErrMissingArgument, i+1)
	}
	v, ok := validate.ParseVersatile(args[i])
	if !ok {
		return false, fmt.Errorf("%w: %q is not true/false or Y/N", ErrInvalidArgument, args[i])
	}
	return v, nil
}
