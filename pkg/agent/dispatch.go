package agent

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"
)

// Result is the outcome of one tool dispatch. Exactly one of Output or Err
// carries meaning; Text() flattens both into what the agent should say.
type Result struct {
	Output string `json:"output,omitempty"`
	Err    *Error `json:"error,omitempty"`
}

// Text returns the conversational string for this result. Recoverable
// domain errors surface as their spoken form, never as a failure.
func (r Result) Text() string {
	if r.Err != nil {
		return r.Err.Spoken()
	}
	return r.Output
}

// Dispatcher executes an agent's tool calls one at a time. The hosted
// runtime guarantees calls are sequential within a session, so there is
// no internal locking.
type Dispatcher struct {
	agent   *Agent
	logger  *slog.Logger
	metrics *Metrics
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the dispatcher's logger.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.logger = l }
}

// WithMetrics enables Prometheus recording for each dispatch.
func WithMetrics(m *Metrics) DispatcherOption {
	return func(d *Dispatcher) { d.metrics = m }
}

// NewDispatcher creates a Dispatcher for the given agent.
func NewDispatcher(a *Agent, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		agent:  a,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Agent returns the agent definition this dispatcher serves.
func (d *Dispatcher) Agent() *Agent {
	return d.agent
}

// Dispatch looks up the named tool and runs it. Unexpected (non-*Error)
// handler failures are wrapped as invalid_input so nothing escapes the
// boundary as a plain error.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, input json.RawMessage) Result {
	start := time.Now()

	handler, ok := d.agent.Tools.Handler(name)
	if !ok {
		err := NewInvalidToolError(name)
		d.logger.Warn("unknown tool", "agent", d.agent.Name, "tool", name)
		d.record(name, string(err.Type), start)
		return Result{Err: err}
	}

	output, err := handler(ctx, input)
	if err != nil {
		var ae *Error
		if !errors.As(err, &ae) {
			ae = NewInvalidInputError(name, err)
		}
		d.logger.Warn("tool failed",
			"agent", d.agent.Name,
			"tool", name,
			"error_type", string(ae.Type),
			"error", ae.Message,
		)
		d.record(name, string(ae.Type), start)
		return Result{Err: ae}
	}

	d.logger.Info("tool ok", "agent", d.agent.Name, "tool", name, "duration", time.Since(start))
	d.record(name, "ok", start)
	return Result{Output: output}
}

func (d *Dispatcher) record(tool, status string, start time.Time) {
	if d.metrics != nil {
		d.metrics.RecordToolCall(d.agent.Name, tool, status, time.Since(start))
	}
}
