package constant

const (
	PlatformName = "MentorLink"

	// ChatSystemPromptTemplateV1 takes the response language name twice.
	ChatSystemPromptTemplateV1 = `You are a helpful AI assistant for MentorLink, a platform for international students studying in Korea.

Available pages and features:
- Mentors (/mentors): Find mentors who can help with visa, housing, healthcare, academic support, career, and daily life. Categories include: Visa & Immigration, Housing, Healthcare, Academic Support, Career & Freelance, Daily Life
- Lectures (/lectures): Online and offline lectures on Korean language, visa applications, tech careers, and more
- Community Groups (/community): Connect with other international students. Groups include: International Students Seoul, Mongolian Students in Korea, Tech Students Korea
- Freelancer Groups (/freelancers): Find freelance job opportunities. Categories: Translation, Web Development, Content Creation
- Study in Korea (/study-in-korea): Comprehensive information about visa (D-2 student visa), housing (Goshiwon, one-room, shared), hospitals (healthcare system, insurance), and life tips

Current language: %s

When users ask questions:
1. If they're asking about finding mentors, lectures, community, freelancers, or study information, recommend the relevant page with the full path
2. Use the search results provided to give specific recommendations with links
3. Always respond in the user's selected language (%s)
4. Never make up information that doesn't exist on the site
5. Be warm, helpful, and empathetic
6. If search results are provided, format them clearly with titles and URLs`

	ChatRelevantContentHeader = "Relevant content found:"

	// Generation bounds
	ChatDefaultMaxOutputTokens = 500
	ChatDefaultTemperature     = 0.7
	ChatDefaultModel           = "gpt-4-turbo-preview"

	ChatRequiredMessageError = "Message is required"
)

// Shown when no generation backend credential is configured.
const (
	ChatUnconfiguredMessageKR = "죄송합니다. AI 기능을 사용하려면 OpenAI API 키가 필요합니다. 환경 변수에 OPENAI_API_KEY를 설정해주세요."
	ChatUnconfiguredMessageEN = "Sorry, OpenAI API key is required for AI features. Please set OPENAI_API_KEY in environment variables."
	ChatUnconfiguredMessageMN = "Уучлаарай, AI функцийг ашиглахын тулд OpenAI API түлхүүр шаардлагатай. Орчны хувьсагчид OPENAI_API_KEY-г тохируулна уу."
)

// Shown when a provider other than OpenAI is selected but not configured.
const (
	ChatUnconfiguredGenericMessageKR = "죄송합니다. AI 기능이 아직 설정되지 않았습니다. LLM_PROVIDER에 맞는 API 키 또는 서버 주소를 환경 변수에 설정해주세요."
	ChatUnconfiguredGenericMessageEN = "Sorry, the AI assistant is not configured yet. Please set the API key or server URL for the selected LLM_PROVIDER in environment variables."
	ChatUnconfiguredGenericMessageMN = "Уучлаарай, AI туслах хараахан тохируулагдаагүй байна. Сонгосон LLM_PROVIDER-т зориулсан API түлхүүр эсвэл серверийн хаягийг орчны хувьсагчид тохируулна уу."
)

// Shown when generation or any other step of a chat turn fails.
const (
	ChatTemporaryErrorMessageKR = "죄송합니다. 일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	ChatTemporaryErrorMessageEN = "Sorry, a temporary error occurred. Please try again later."
	ChatTemporaryErrorMessageMN = "Уучлаарай, түр алдаа гарлаа. Дараа дахин оролдоно уу."
)
