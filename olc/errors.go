package olc

import "errors"

var (
	// ErrInvalidLength is returned by Encode for a length below 2, or an odd length below 8.
	ErrInvalidLength = errors.New("invalid code length")
	// ErrMalformedCode is returned when a full code was required.
	ErrMalformedCode = errors.New("not a valid full code")
	// ErrPaddedCode is returned by Shorten for codes containing padding.
	ErrPaddedCode = errors.New("cannot shorten padded code")
	// ErrCodeTooShort is returned by Shorten for codes with fewer than 6 digits.
	ErrCodeTooShort = errors.New("code too short to shorten")
	// ErrInvalidShortCode is returned by RecoverNearest for codes that are neither short nor full.
	ErrInvalidShortCode = errors.New("not a valid short code")
)
