package command

// ToolHost switches the active tool. A session implements it and hands
// itself to every tool it registers.
type ToolHost interface {
	SetActiveTool(t *Tool) bool
	ActivateDefaultTool() bool
	ActiveTool() *Tool
}

// Tool is a mode command: at most one tool is active per host. Invoking an
// inactive tool activates it; invoking the active tool falls back to the
// host's default tool.
type Tool struct {
	Base
	Meta
	host       ToolHost
	active     bool
	onActivate func(ctx any, active bool)
	onKey      func(ctx any, key string) bool
}

func NewTool(info Info) *Tool {
	return &Tool{Meta: NewMeta(info)}
}

// OnActivation installs a callback run on activation changes.
func (t *Tool) OnActivation(fn func(ctx any, active bool)) *Tool {
	t.onActivate = fn
	return t
}

// OnKey installs a key handler consulted while the tool is active.
func (t *Tool) OnKey(fn func(ctx any, key string) bool) *Tool {
	t.onKey = fn
	return t
}

func (t *Tool) SetHost(h ToolHost) { t.host = h }
func (t *Tool) Kind() Kind         { return KindTool }
func (t *Tool) Checked() bool      { return t.active }

// Activate marks the tool active and notifies. Hosts call it.
func (t *Tool) Activate() {
	if t.active {
		return
	}
	t.active = true
	if t.onActivate != nil {
		t.onActivate(t.Context(), true)
	}
	t.Update()
}

// Deactivate marks the tool inactive and notifies. Hosts call it.
func (t *Tool) Deactivate() {
	if !t.active {
		return
	}
	t.active = false
	if t.onActivate != nil {
		t.onActivate(t.Context(), false)
	}
	t.Update()
}

// HandleKey offers key to the tool. It returns false when unhandled.
func (t *Tool) HandleKey(key string) bool {
	if t.onKey == nil {
		return false
	}
	return t.onKey(t.Context(), key)
}

// InvokeCore delegates activation to the host.
func (t *Tool) InvokeCore() bool {
	if t.host == nil {
		return false
	}
	if t.active {
		return t.host.ActivateDefaultTool()
	}
	return t.host.SetActiveTool(t)
}

func (t *Tool) Equals(other Command) bool {
	o, ok := other.(*Tool)
	return ok && (o == t || t.sameInfo(&o.Meta))
}
