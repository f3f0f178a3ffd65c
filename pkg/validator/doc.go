// Package validator turns the predicates of package validate into
// field-level rules with translation-friendly error metadata.
//
// A Rule couples a Check func with the ValidationError to report when the
// check fails. Apply evaluates rules and aggregates the failures into a
// ValidationErrors slice that satisfies the error interface, so one call
// can report every problem with a form.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("zip", zip),
//	    validator.ContiguousZipCode("zip", zip),
//	    validator.StateCode("state", state),
//	    validator.CardMatch("card", number, cardType),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    for _, e := range errs {
//	        // e.TranslationKey is "validation.<kind>", e.g. "validation.zip_code"
//	    }
//	}
//
// Format rules accept empty input. Combine them with Required when a value
// must be present.
//
// # Kinds
//
// Every rule is also registered under a kind name so that checks can be
// described as data. RuleFor builds a rule from a kind and string arguments;
// Kinds lists the registered names:
//
//	rule, err := validator.RuleFor("integer_range", "quantity", "12", "1", "10")
//
// # Checksums
//
// UPC and EAN rules separate a wrong check digit ("validation.upc",
// "validation.ean") from input that is not a code at all
// ("validation.malformed"), such as a value of the wrong length.
//
// # Concurrency
//
// Rules are pure; ApplyConcurrent evaluates large batches on a bounded
// number of goroutines and reports failures in rule order.
package validator
