package priceinput

// InputHook observes every call to Field.OnInput
type InputHook interface {
	BeforeInput(ctx *InputHookContext)
	AfterInput(ctx *InputHookContext)
}

// InputHookContext carries one input attempt through the hooks.
// Before hooks may rewrite Raw. After hooks see the committed state and may replace Error,
// which becomes the value returned by OnInput.
type InputHookContext struct {
	Currency string
	Raw      string
	Digits   string
	Value    uint64
	HasValue bool
	Display  string
	Message  string
	Error    error
	Metadata map[string]any
}

func (ctx *InputHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
	ctx.Metadata[key] = value
}

func (ctx *InputHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// InputHookFuncs adapts plain functions to InputHook
type InputHookFuncs struct {
	Before func(ctx *InputHookContext)
	After  func(ctx *InputHookContext)
}

func (h InputHookFuncs) BeforeInput(ctx *InputHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h InputHookFuncs) AfterInput(ctx *InputHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

func filterHooks(hooks []InputHook) []InputHook {
	if len(hooks) == 0 {
		return nil
	}
	filtered := make([]InputHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}
	if len(filtered) == 0 {
		return nil
	}
	return filtered
}
