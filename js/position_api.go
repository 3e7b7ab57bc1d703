package js

import (
	"fmt"
	"strings"

	"github.com/dop251/goja"

	"github.com/quadrant-newmedia/smart-position/position"
)

// setupPositionAPI installs the two public entry points: smartPosition and
// validateAlignments.
func (b *Binder) setupPositionAPI() {
	vm := b.rt.VM()

	vm.Set("validateAlignments", func(call goja.FunctionCall) goja.Value {
		var values []string
		if len(call.Arguments) > 0 {
			values = stringList(call.Arguments[0])
		}
		valid, invalid := position.ValidateAlignments(values)
		result := vm.NewObject()
		result.Set("valid", stringArray(vm, valid))
		result.Set("invalid", stringArray(vm, invalid))
		return result
	})

	vm.Set("smartPosition", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(vm.NewTypeError("smartPosition requires an element and an anchor"))
		}
		el, ok := b.elementFor(call.Arguments[0])
		if !ok {
			panic(vm.NewTypeError("smartPosition: first argument is not an element"))
		}
		anchor, ok := b.anchorFor(call.Arguments[1])
		if !ok {
			panic(vm.NewTypeError("smartPosition: anchor must be an element or an {x, y} point"))
		}

		var opts position.Options
		if len(call.Arguments) > 2 {
			if o, ok := call.Arguments[2].(*goja.Object); ok {
				opts.Horizontal = b.alignmentList(o.Get("horizontal"), "horizontal")
				opts.Vertical = b.alignmentList(o.Get("vertical"), "vertical")
				if m := o.Get("margin"); m != nil && !goja.IsUndefined(m) && !goja.IsNull(m) {
					opts.Margin = m.ToFloat()
				}
			}
		}

		positioner := position.NewPositioner(b.engine)
		positioner.Position(el, anchor, opts)
		return goja.Undefined()
	})
}

// alignmentList interprets a script value as alignment preferences: an
// array of tokens or a space-separated string. Unrecognized tokens are
// reported on the console and dropped rather than failing the call.
func (b *Binder) alignmentList(v goja.Value, axis string) []position.Alignment {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	values := stringList(v)
	valid, invalid := position.ValidateAlignments(values)
	if len(invalid) > 0 {
		fmt.Printf("[console.warn] smartPosition: ignoring invalid %s alignments: %s\n",
			axis, strings.Join(invalid, ", "))
	}
	return position.ParseAlignments(valid)
}

// stringList converts a script array or space-separated string to a slice.
func stringList(v goja.Value) []string {
	if obj, ok := v.(*goja.Object); ok {
		lengthVal := obj.Get("length")
		if lengthVal != nil && !goja.IsUndefined(lengthVal) {
			n := int(lengthVal.ToInteger())
			out := make([]string, 0, n)
			for i := 0; i < n; i++ {
				item := obj.Get(fmt.Sprintf("%d", i))
				if item != nil && !goja.IsUndefined(item) {
					out = append(out, item.String())
				}
			}
			return out
		}
	}
	return strings.Fields(v.String())
}

func stringArray(vm *goja.Runtime, values []string) goja.Value {
	items := make([]interface{}, len(values))
	for i, v := range values {
		items[i] = v
	}
	return vm.ToValue(items)
}
