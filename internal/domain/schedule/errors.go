package schedule

import "errors"

var (
	// Override table errors
	ErrInvalidOverride     = errors.New("invalid schedule override")
	ErrDuplicateOverride   = errors.New("duplicate schedule override key")
	ErrOverrideTableFormat = errors.New("override table is not valid YAML")
)
