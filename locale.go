package fakesmith

// DefaultLocale is applied when a request omits the locale selector.
const DefaultLocale = "en"

// ResolveLocale maps a locale selector to a data source name. There is a
// single English data source today, so every selector (including unknown
// ones) resolves to it; the selector is accepted and never rejected so
// callers do not break when per-locale sources exist.
//
// TODO: wire per-locale data sets once a second locale is actually needed.
func ResolveLocale(string) string {
	return DefaultLocale
}
