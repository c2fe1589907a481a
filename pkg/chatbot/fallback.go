package chatbot

import (
	"mentorlink-be/internal/constant"
	"mentorlink-be/pkg/locale"
)

// UnconfiguredMessage is returned when no generation backend is available.
func UnconfiguredMessage(loc locale.Locale) string {
	switch loc {
	case locale.Korean:
		return constant.ChatUnconfiguredMessageKR
	case locale.English:
		return constant.ChatUnconfiguredMessageEN
	case locale.Mongolian:
		return constant.ChatUnconfiguredMessageMN
	default:
		return constant.ChatUnconfiguredMessageKR
	}
}

// UnconfiguredMessageFor picks the notice for the unconfigured provider. The
// OpenAI wording names OPENAI_API_KEY, so other providers get a neutral text.
func UnconfiguredMessageFor(loc locale.Locale, provider string) string {
	if provider == "" || provider == "openai" {
		return UnconfiguredMessage(loc)
	}
	switch loc {
	case locale.English:
		return constant.ChatUnconfiguredGenericMessageEN
	case locale.Mongolian:
		return constant.ChatUnconfiguredGenericMessageMN
	default:
		return constant.ChatUnconfiguredGenericMessageKR
	}
}

// TemporaryErrorMessage is returned when a chat turn fails at runtime.
func TemporaryErrorMessage(loc locale.Locale) string {
	switch loc {
	case locale.Korean:
		return constant.ChatTemporaryErrorMessageKR
	case locale.English:
		return constant.ChatTemporaryErrorMessageEN
	case locale.Mongolian:
		return constant.ChatTemporaryErrorMessageMN
	default:
		return constant.ChatTemporaryErrorMessageKR
	}
}
