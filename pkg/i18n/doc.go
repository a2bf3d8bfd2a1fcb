// Package i18n localizes user-facing messages.
//
// A Translator loads translations through a TranslationAdapter (MapAdapter
// for in-memory data, FSAdapter for a directory of JSON or YAML files in any
// fs.FS such as an embed.FS). Documents are keyed by language code at the top
// level; below that, keys may be nested maps addressed with dots:
//
//	en:
//	  registration:
//	    email:
//	      required: "Email address is required"
//
// T and Td substitute "%{name}" placeholders from key/value arguments.
// Match negotiates an Accept-Language header against the loaded languages
// with golang.org/x/text/language, and Middleware stores the result in the
// request context for Tc and Tdc.
//
// # Usage
//
//	//go:embed locales
//	var locales embed.FS
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales, "locales"))
//	if err != nil {
//	    return err
//	}
//	r.Use(i18n.Middleware(tr))
//
//	msg := tr.Tdc(ctx, "registration.phone.countryCode", fallback, "prefix", "+91")
//
// # Error Handling
//
// Loading errors wrap the sentinel values in errors.go (for example
// ErrFailedToParseFile joined with the parser error). Lookups never fail:
// missing keys fall back to the default language, then to the key or the
// supplied default.
package i18n
