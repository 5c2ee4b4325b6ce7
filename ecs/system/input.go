package system

import (
	"log"

	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
	"github.com/milk9111/flycam/input"
)

// Poller is a device snapshot that is refreshed once per tick.
type Poller interface {
	input.State
	Poll()
}

// InputSystem resolves the bound axes once per tick and stores them on
// every entity that has an AxisInput.
type InputSystem struct {
	resolver *input.Resolver
	devices  Poller
}

func NewInputSystem(resolver *input.Resolver, devices Poller) *InputSystem {
	if resolver == nil {
		resolver = input.NewResolver(input.DefaultBindings())
	}
	return &InputSystem{resolver: resolver, devices: devices}
}

func (i *InputSystem) Resolver() *input.Resolver {
	return i.resolver
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	for _, evt := range w.Events().Take(ecs.EventBindingsChanged) {
		b, ok := evt.Data.(*input.Bindings)
		if !ok || b == nil {
			continue
		}
		i.resolver.SetBindings(b)
		log.Printf("input: bindings replaced (%d sources)", b.Len())
	}

	var values input.Values
	if i.devices != nil {
		i.devices.Poll()
		values = i.resolver.ResolveAll(i.devices)
	}

	ecs.ForEach(w, component.AxisInputComponent, func(_ ecs.Entity, in *component.AxisInput) {
		in.Values = values
	})
}
