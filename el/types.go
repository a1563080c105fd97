package el

import "github.com/lucent-dev/lucent/pkg/vdom"

// Type aliases for the virtual node primitives used by the DSL.
type VNode = vdom.VNode
type VKind = vdom.VKind
type Props = vdom.Props
type Attr = vdom.Attr
type EventHandler = vdom.EventHandler
type Handler = vdom.Handler
