package memory

import (
	"github.com/anthropics/anthropic-sdk-go"
)

// Conversation is the ordered, append-only transcript passed to the model on
// every call.
type Conversation struct {
	msgs []anthropic.MessageParam
}

// AppendUserText appends one user message containing a single text block.
func (c *Conversation) AppendUserText(text string) {
	c.msgs = append(c.msgs, anthropic.NewUserMessage(anthropic.NewTextBlock(text)))
}

// AppendAssistant appends a received assistant message as-is, preserving its
// text and tool_use blocks.
func (c *Conversation) AppendAssistant(msg *anthropic.Message) {
	c.msgs = append(c.msgs, msg.ToParam())
}

// AppendToolResults appends one user message carrying the tool_result blocks
// for the immediately preceding assistant message's tool_use blocks.
func (c *Conversation) AppendToolResults(results []anthropic.ContentBlockParamUnion) {
	c.msgs = append(c.msgs, anthropic.NewUserMessage(results...))
}

// Messages returns the transcript in order. Callers must not mutate it.
func (c *Conversation) Messages() []anthropic.MessageParam {
	return c.msgs
}

// Len returns the number of messages appended so far.
func (c *Conversation) Len() int { return len(c.msgs) }
