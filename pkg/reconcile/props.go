package reconcile

import (
	"fmt"

	"github.com/lucent-dev/lucent/pkg/dom"
	"github.com/lucent-dev/lucent/pkg/vdom"
)

// reservedAttrs are bookkeeping attributes the applier owns; the
// removal pass never touches them.
var reservedAttrs = map[string]bool{
	nodeIDAttr:   true,
	eventKeyAttr: true,
}

// applyProps syncs the element's host attributes and delegation
// registrations with the vnode. Handlers are routed to the delegator
// only and never written as attributes.
func applyProps(el *dom.Element, v *vdom.VNode, d *Delegator, s *Stats) {
	desired := effectiveAttrs(v.Attrs)

	for name, value := range desired {
		if el.HasAttribute(name) && el.GetAttribute(name) == value {
			continue
		}
		el.SetAttribute(name, value)
		s.AttrWrites++
	}

	for _, name := range el.AttributeNames() {
		if reservedAttrs[name] {
			continue
		}
		if _, keep := desired[name]; !keep {
			el.RemoveAttribute(name)
			s.AttrWrites++
		}
	}

	d.SetHandlers(el, v.Events)
}

// effectiveAttrs flattens vnode attributes to their host string form.
// A "dataset" map expands to one data-* attribute per entry; true
// becomes a presence-only attribute; nil and false are absent;
// everything else is stringified.
func effectiveAttrs(attrs vdom.Props) map[string]string {
	out := make(map[string]string, len(attrs))
	for name, value := range attrs {
		switch v := value.(type) {
		case nil:
			continue
		case bool:
			if v {
				out[name] = ""
			}
		case string:
			out[name] = v
		case map[string]string:
			if name == "dataset" {
				for k, dv := range v {
					out["data-"+k] = dv
				}
			}
		default:
			out[name] = fmt.Sprint(v)
		}
	}
	return out
}
