/*
Package errors provides semantic error types for shopstore.

Every outcome a caller is expected to handle has a sentinel and a typed error
that matches it through errors.Is:

	var (
	    ErrNotFound         = errors.New("entity not found")
	    ErrAlreadyExists    = errors.New("entity already exists")
	    ErrInvalidInput     = errors.New("invalid input")
	    ErrConditionFailed  = errors.New("condition check failed")
	    ErrMalformedKey     = errors.New("malformed key")
	    ErrStoreUnavailable = errors.New("store unavailable")
	)

ErrConditionFailed is the single signal an item store gives for a conditional
write whose guard did not hold. Repositories translate it into ErrNotFound or
ErrAlreadyExists depending on the operation.

Usage:

	product, err := products.Get(ctx, "42")
	if err != nil {
	    if errors.IsNotFound(err) {
	        return nil, fmt.Errorf("product %s does not exist", "42")
	    }
	    return nil, err
	}

	// Field-level detail for client diagnostics
	for _, issue := range errors.Issues(err) {
	    log.Printf("%s: %s", issue.Field, issue.Message)
	}
*/
package errors
