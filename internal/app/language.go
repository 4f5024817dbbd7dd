package app

import (
	"path"
	"strings"

	"github.com/src-d/enry/v2"
)

// LanguageOther groups files whose language can't be detected by name.
const LanguageOther = "Other"

// DetectLanguage returns the programming language of a file, detected by its name only.
func DetectLanguage(p string) string {
	name := path.Base(strings.ReplaceAll(p, `\`, "/"))
	if name == "." || name == "/" {
		return LanguageOther
	}
	if lang := enry.GetLanguage(name, nil); lang != "" {
		return lang
	}

	return LanguageOther
}
