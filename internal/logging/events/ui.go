package events

import "github.com/atomicstack/toolbar-commands/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Action = ActionTracer{}
)

func (UITracer) MenuEnter(levelID, itemID, label, filter string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"level":  levelID,
		"item":   itemID,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) MenuOpen(levelID, owner string) {
	logging.Trace("menu.open", map[string]interface{}{"level": levelID, "owner": owner})
}

func (UITracer) MenuClose(levelID string) {
	logging.Trace("menu.close", map[string]interface{}{"level": levelID})
}

func (UITracer) MenuCursor(levelID string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"level": levelID, "cursor": cursor})
}

func (UITracer) Adjust(itemID string, delta int) {
	logging.Trace("menu.adjust", map[string]interface{}{"item": itemID, "delta": delta})
}

func (UITracer) EditStart(itemID string) {
	logging.Trace("edit.start", map[string]interface{}{"item": itemID})
}

func (UITracer) EditDone(itemID, value string, submitted bool) {
	logging.Trace("edit.done", map[string]interface{}{"item": itemID, "value": value, "submitted": submitted})
}

func (UITracer) Refresh(levels, rows int) {
	logging.Trace("ui.refresh", map[string]interface{}{"levels": levels, "rows": rows})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(levelID string) {
	logging.Trace("filter.clear", map[string]interface{}{"level": levelID})
}

func (FilterTracer) WordBackspace(levelID, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Append(levelID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Backspace(levelID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) ToggleAll(levelID string, all bool) {
	logging.Trace("filter.toggle-all", map[string]interface{}{"level": levelID, "all": all})
}
