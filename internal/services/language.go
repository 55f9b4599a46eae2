// Package services – language normalization
//
// Leads arrive from two frontend locales, English and Chinese. Clients send
// free-form language hints ("en", "en-US", "zh", "zh-Hans", the legacy "cn"),
// and this file collapses them onto the two codes the rest of the system
// stores and filters on.
package services

import "golang.org/x/text/language"

// Supported lead languages as stored in the database.
const (
	LangEnglish = "en"
	LangChinese = "cn"
)

var langMatcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.Chinese,
})

// NormalizeLanguage maps a client-supplied language hint onto "en" or "cn".
// Unparseable or unsupported hints fall back to English.
func NormalizeLanguage(hint string) string {
	if hint == "" {
		return LangEnglish
	}
	// "cn" is not a valid BCP 47 language subtag but is what the legacy
	// frontend sends; accept it directly.
	if hint == LangChinese {
		return LangChinese
	}
	tag, err := language.Parse(hint)
	if err != nil {
		return LangEnglish
	}
	_, idx, _ := langMatcher.Match(tag)
	if idx == 1 {
		return LangChinese
	}
	return LangEnglish
}
