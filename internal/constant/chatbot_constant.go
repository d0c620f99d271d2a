package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// Greeting seeded into any session that is read with zero messages.
	ChatGreetingMessage = "Hi! I'm your anime and manga companion. Ask me about any series, character, or recommendation and let's talk!"

	// System persona sent as the first message of every completion request.
	ChatSystemPromptV1 = `You are a specialized assistant for anime and manga discussion.

RULES:
1. SCOPE
   - Discuss anime, manga, light novels and related Japanese pop culture
   - Recommendations, plot explanations, character analysis, release info
   - If asked something unrelated, gently steer back to anime/manga topics

2. TONE
   - Friendly and enthusiastic, like a fellow fan
   - Always greet the user back when they greet you
   - Keep answers conversational, 2-5 sentences unless asked for detail

3. ACCURACY
   - Avoid spoilers unless the user explicitly asks for them
   - If unsure about a fact, say so instead of inventing one`

	// Fixed user-facing replies for upstream failure modes. These are stored as
	// ordinary assistant turns so the conversation itself carries the error.
	ChatReplyNotConfigured = "I'm not fully set up yet: the AI service credential is missing. Ask the site operator to configure the DeepSeek API key, then try again."
	ChatReplyTimeout       = "Sorry, that answer took too long to generate and I had to give up. Please try sending your message again."
	ChatReplyAuthError     = "I couldn't authenticate with my knowledge base (the API key may be invalid or out of credit). Ask the site operator to check the DeepSeek account and top it up if needed."
	ChatReplyRateLimited   = "My knowledge base is rate limiting us right now. Give it a short moment and send your message again."
	ChatReplyBadRequest    = "My request to the knowledge base was rejected (model or parameter mismatch). Ask the site operator to verify the configured model name."
	ChatReplyUnavailable   = "My knowledge base is unavailable at the moment. Please try again in a little while."
	ChatReplyNetworkError  = "I couldn't reach my knowledge base at all. Check the connection and try again."
	ChatReplyEmptyResponse = "I received an empty or invalid answer from my knowledge base. Please try rephrasing your message."

	// Default session title until the first user turn names it.
	ChatSessionDefaultTitle = "New chat"
	// Titles derived from the first user message are cut to this many runes.
	ChatSessionTitleMaxLen = 50

	// Trailing window of stored messages forwarded to the upstream model.
	// The system persona is prepended on top of this bound.
	ChatHistoryWindowDefault = 10

	// Fixed identity used by the no-auth deployment. Created lazily, upsert is
	// idempotent so every entrypoint may call it.
	DefaultUserId        = "a0e6bd0c-0c3c-49d8-b6dd-0ff1b3a1f001"
	DefaultUserEmail     = "guest@anichat.local"
	DefaultUserFirstName = "Guest"
	DefaultUserLastName  = "Otaku"
)
