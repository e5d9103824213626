package transfer

import (
	"errors"
	"fmt"
)

var (
	// Classes.
	ErrValidation = errors.New("validation error")
	ErrNetwork    = errors.New("network error")
	ErrChecksum   = errors.New("checksum error")

	// Validation errors, reported before any network call.
	ErrInvalidEmail       = fmt.Errorf("%w: invalid email address", ErrValidation)
	ErrDuplicateRecipient = fmt.Errorf("%w: recipient already added", ErrValidation)
	ErrEmptyFileList      = fmt.Errorf("%w: no files selected", ErrValidation)
	ErrEmptyRecipientList = fmt.Errorf("%w: no recipients", ErrValidation)
	ErrFileTooLarge       = fmt.Errorf("%w: file too large", ErrValidation)
	ErrInvalidRequest     = fmt.Errorf("%w: invalid transfer request", ErrValidation)
	ErrIndexOutOfRange    = fmt.Errorf("%w: index out of range", ErrValidation)

	// Network errors, one per protocol step.
	ErrTransferCreation = fmt.Errorf("%w: failed to create transfer", ErrNetwork)
	ErrSlotRequest      = fmt.Errorf("%w: failed to request upload slot", ErrNetwork)
	ErrUpload           = fmt.Errorf("%w: failed to upload file", ErrNetwork)
	ErrFinalize         = fmt.Errorf("%w: failed to finalize transfer", ErrNetwork)

	ErrIllegalTransition = errors.New("illegal task state transition")
)
