package tracing

// Attribute keys set on engine command spans.
const (
	AttrWidget  = "widget"
	AttrMode    = "mode"
	AttrResult  = "result"
	AttrLevel   = "notice.level"
	AttrMessage = "notice.message"
	AttrKind    = "register.kind"
)

// SpanPrefixEngine prefixes the command ID in span names, e.g. engine.list.delete.
const SpanPrefixEngine = "engine."

// Span event names.
const (
	EventNoticeRaised = "notice.raised"
	EventRegisterSet  = "register.set"
)
