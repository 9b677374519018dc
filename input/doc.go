// Package input converts the raw text a user typed into the sequence of
// integers the tree builder consumes.
//
// Contract
//
//   - The whole text is trimmed; if nothing is left, Parse returns a
//     *ValidationError ("no numbers provided").
//   - Otherwise the text is split on commas, every token is trimmed and
//     parsed as a base-10 integer. The first token that is not an integer
//     aborts parsing with a *ParseError carrying the trimmed token text.
//   - No partial result is ever returned alongside an error.
//
// Errors
//
//   - ErrValidation: errors.Is(err, ErrValidation) holds for *ValidationError.
//   - ErrParse:      errors.Is(err, ErrParse) holds for *ParseError.
//
// Use errors.As to recover the offending token:
//
//	var pe *input.ParseError
//	if errors.As(err, &pe) {
//	    fmt.Println("bad token:", pe.Token)
//	}
package input
