package binder

import "errors"

var (
	// ErrBinderNotApplicable tells handler.Wrap to skip a binder whose source
	// is absent from the request, e.g. Form on a GET.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidTarget        = errors.New("bind target must be a non-nil pointer to struct")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToParsePath    = errors.New("failed to parse path parameters")
	ErrFailedToParseSignals = errors.New("failed to parse datastar signals")
)
