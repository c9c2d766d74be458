// Package translation provides document translation to English via remote
// chat-completion APIs (OpenAI-compatible and Gemini). It builds the system
// prompt carrying the glossary, applies glossary substitution around the
// call, and shields the endpoint with a circuit breaker.
package translation
