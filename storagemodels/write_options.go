package storagemodels

// WriteOptions configures a put.
type WriteOptions struct {
	ReturnOld bool // return the replaced item's attributes
}

// WriteOption is a functional option for configuring a put
type WriteOption func(*WriteOptions)

// WithReturnOld asks the store to hand back the attributes the write replaced.
func WithReturnOld() WriteOption {
	return func(opts *WriteOptions) {
		opts.ReturnOld = true
	}
}

// ApplyWriteOptions folds opts over the zero WriteOptions.
func ApplyWriteOptions(opts ...WriteOption) WriteOptions {
	var o WriteOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
