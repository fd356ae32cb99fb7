// Package options holds the record of values a scaffold run fills into its
// templates. Fields start unset and are resolved lazily: a field is either
// supplied up front (flags, user settings, git), derived from another field,
// or asked for through a ValueSource. Each field is resolved at most once.
package options
