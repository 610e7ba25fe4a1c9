package events

import "github.com/atomicstack/toolbar-commands/internal/logging"

type CommandTracer struct{}

type SessionTracer struct{}

type RenderTracer struct{}

var (
	Command = CommandTracer{}
	Session = SessionTracer{}
	Render  = RenderTracer{}
)

func (CommandTracer) Invoke(id, kind, label string, changed bool) {
	logging.Trace("command.invoke", map[string]interface{}{
		"id":      id,
		"kind":    kind,
		"label":   label,
		"changed": changed,
	})
}

func (CommandTracer) Attach(id, kind, label string) {
	logging.Trace("command.attach", map[string]interface{}{"id": id, "kind": kind, "label": label})
}

func (CommandTracer) Duplicate(group, kind, label string) {
	logging.Trace("command.duplicate", map[string]interface{}{"group": group, "kind": kind, "label": label})
}

func (CommandTracer) ListenerPanic(id string, recovered interface{}) {
	logging.Trace("command.listener.panic", map[string]interface{}{"id": id, "recovered": recovered})
}

func (CommandTracer) NotifyDepth(id string, depth int) {
	logging.Trace("command.notify.depth", map[string]interface{}{"id": id, "depth": depth})
}

func (SessionTracer) Register(id, kind, label string) {
	logging.Trace("session.register", map[string]interface{}{"id": id, "kind": kind, "label": label})
}

func (SessionTracer) Reuse(id, kind, label string) {
	logging.Trace("session.reuse", map[string]interface{}{"id": id, "kind": kind, "label": label})
}

func (SessionTracer) Shortcut(key, id string) {
	logging.Trace("session.shortcut", map[string]interface{}{"key": key, "id": id})
}

func (SessionTracer) Tool(previous, next string) {
	logging.Trace("session.tool", map[string]interface{}{"previous": previous, "next": next})
}

func (SessionTracer) Dispose(count int) {
	logging.Trace("session.dispose", map[string]interface{}{"commands": count})
}

func (RenderTracer) Resolved(id, resolver, placement string) {
	logging.Trace("render.resolved", map[string]interface{}{"id": id, "resolver": resolver, "placement": placement})
}

func (RenderTracer) Unresolved(id, kind string) {
	logging.Trace("render.unresolved", map[string]interface{}{"id": id, "kind": kind})
}
