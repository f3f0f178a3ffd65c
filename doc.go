// Package inputkit validates and normalizes user-entered form data.
//
// The work is split across packages under pkg/:
//
//   - validate: string predicates for characters, numbers, US formats
//     (SSN, ZIP, state, phone), email and URL, dates and times, payment
//     cards, gift cards, UPC/EAN checksums, booleans and database ids.
//     Empty input is accepted by field predicates; use Required to demand a
//     value.
//   - sanitizer: character-bag stripping and formatting helpers such as
//     NormalizeCreditCard and FoldWidth.
//   - validator: Rule values with translation keys, aggregated into
//     ValidationErrors by Apply or ApplyConcurrent, plus a registry that
//     builds rules by kind name.
//   - i18n: message catalogs for the validation keys in English, German and
//     Spanish, with language negotiation.
//   - config, logger, environment: settings, structured logging and run
//     environment for the inputcheck command.
//
// Basic usage:
//
//	err := validator.Apply(
//		validator.Required("email", form.Email),
//		validator.Email("email", form.Email),
//		validator.ZipCode("zip", form.Zip),
//		validator.CardMatch("card", form.Card, "CCT_VISA"),
//	)
//	if errs := validator.ExtractValidationErrors(err); !errs.IsEmpty() {
//		for _, e := range errs {
//			fmt.Println(e.Field, tr.T(lang, e.TranslationKey, e.TranslationValues))
//		}
//	}
//
// The cmd/inputcheck command exposes the same rules on the command line.
package inputkit
