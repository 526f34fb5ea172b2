package sema

// Options configures per-unit binder behavior.
type Options struct {
	// RequireTopLevelTypes enables the finalization check that every
	// top-level value declaration carries an explicit type annotation.
	// When a declaration fails the check it gets an error and the
	// empty-tuple recovery type. Off by default.
	RequireTopLevelTypes bool
}
