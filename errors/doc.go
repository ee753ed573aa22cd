/*
Package errors provides semantic error types for the dataenum library.

Every failure of member construction or lookup is reported with a typed error
that matches one of the package sentinels through the standard errors.Is
function, or through the provided helper functions.

Common Errors:

	var (
	    ErrDuplicateKey          = errors.New("duplicate primary key")
	    ErrDuplicateSecondaryKey = errors.New("duplicate unique attribute value")
	    ErrUnknownAttribute      = errors.New("unknown attribute")
	    ErrMissingAttribute      = errors.New("missing attribute")
	    ErrMemberDoesNotExist    = errors.New("member does not exist")
	)

Usage:

	usd, err := Currency.Get("USD")
	if err != nil {
	    if errors.IsMemberDoesNotExist(err) {
	        return fmt.Errorf("currency %s is not supported", code)
	    }
	    return err
	}

	// Typed errors carry the offending type, attribute and value
	var dup *errors.DuplicateSecondaryKeyError
	if stderrors.As(err, &dup) {
	    log.Printf("symbol %v already used", dup.Value)
	}

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
