// Package models lists the chat-completion models available to the
// configured API key, so users can pick a model identifier for translation.
package models
