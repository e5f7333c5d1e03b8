package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dok4everak47/aicoder/internal/logging"
	"github.com/dok4everak47/aicoder/internal/provider"
	"github.com/dok4everak47/aicoder/memory"
	"github.com/dok4everak47/aicoder/tools"
)

// DefaultMaxToolRounds caps tool round trips per user turn when the caller
// does not set its own limit.
const DefaultMaxToolRounds = 16

// ErrTurnLimit reports that the model kept requesting tools past the
// configured cap for a single user turn.
var ErrTurnLimit = errors.New("turn limit exceeded")

// Runner owns the conversation transcript and drives the request/execute/
// append cycle for each user turn.
type Runner struct {
	Client        *anthropic.Client
	Tools         []tools.ToolDefinition
	Logger        *zap.Logger
	Model         anthropic.Model
	MaxToolRounds int

	conv memory.Conversation
}

func New(client *anthropic.Client, toolDefs []tools.ToolDefinition, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		Client:        client,
		Tools:         toolDefs,
		Logger:        logger,
		Model:         provider.DefaultModel,
		MaxToolRounds: DefaultMaxToolRounds,
	}
}

// TranscriptLen reports how many messages the transcript holds.
func (r *Runner) TranscriptLen() int { return r.conv.Len() }

// RunTurn appends user input to the transcript and alternates model calls
// with tool executions until the model produces a response with no tool_use
// blocks, returning that response's first text block (empty when there is
// none).
//
// A model-call failure aborts the turn without disturbing what was already
// appended. Tool failures never abort the turn; their outcome text goes back
// to the model as tool_result content.
func (r *Runner) RunTurn(ctx context.Context, user string) (string, error) {
	turnID := uuid.NewString()
	r.Logger.Info("user input",
		zap.String("turn_id", turnID),
		zap.String("text", user),
	)
	r.conv.AppendUserText(user)

	toolRounds := 0
	for {
		msg, err := r.send(ctx)
		if err != nil {
			r.Logger.Error("model call failed",
				zap.String("turn_id", turnID),
				zap.Error(err),
			)
			return "", fmt.Errorf("model call: %w", err)
		}
		r.conv.AppendAssistant(msg)

		uses := toolUses(msg)
		if len(uses) == 0 {
			return firstText(msg), nil
		}

		toolRounds++
		if toolRounds > r.MaxToolRounds {
			// Pair every pending tool_use with an error result so the
			// transcript stays well-formed for later turns, then fail.
			results := make([]anthropic.ContentBlockParamUnion, 0, len(uses))
			for _, u := range uses {
				results = append(results, anthropic.NewToolResultBlock(u.ID, "Turn limit exceeded; tool call not executed.", true))
			}
			r.conv.AppendToolResults(results)
			r.Logger.Warn("turn limit exceeded",
				zap.String("turn_id", turnID),
				zap.Int("max_tool_rounds", r.MaxToolRounds),
			)
			return "", fmt.Errorf("%w: model requested tools after %d round trips", ErrTurnLimit, r.MaxToolRounds)
		}

		results := make([]anthropic.ContentBlockParamUnion, 0, len(uses))
		for _, u := range uses {
			input := json.RawMessage(u.JSON.Input.Raw())
			r.Logger.Info("tool call",
				zap.String("turn_id", turnID),
				zap.String("tool", u.Name),
				zap.String("input", string(input)),
			)
			out := tools.Execute(r.Tools, u.Name, input)
			r.Logger.Info("tool result",
				zap.String("turn_id", turnID),
				zap.String("tool", u.Name),
				zap.Bool("is_error", out.IsError()),
				zap.String("preview", logging.Preview(out.Content)),
			)
			results = append(results, anthropic.NewToolResultBlock(u.ID, out.Content, out.IsError()))
		}
		r.conv.AppendToolResults(results)
	}
}

// send performs one synchronous round trip with the full transcript and the
// tool catalog.
func (r *Runner) send(ctx context.Context) (*anthropic.Message, error) {
	return r.Client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     r.Model,
		MaxTokens: int64(provider.MaxTokens),
		System:    []anthropic.TextBlockParam{{Text: provider.SystemPrompt}},
		Messages:  r.conv.Messages(),
		Tools:     r.anthropicTools(),
	})
}

func (r *Runner) anthropicTools() []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(r.Tools))
	for _, t := range r.Tools {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: t.InputSchema,
		}})
	}
	return out
}

// toolUses extracts tool_use blocks in response order.
func toolUses(msg *anthropic.Message) []anthropic.ToolUseBlock {
	var uses []anthropic.ToolUseBlock
	for _, block := range msg.Content {
		if u, ok := block.AsAny().(anthropic.ToolUseBlock); ok {
			uses = append(uses, u)
		}
	}
	return uses
}

// firstText returns the first text block of a message, or "".
func firstText(msg *anthropic.Message) string {
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			return tb.Text
		}
	}
	return ""
}
