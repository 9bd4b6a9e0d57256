// This file is part of Memcore.
//
// Memcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Memcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Memcore.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences holds the preferences for the emulated hardware. Values
// can be changed from the command line with the prefs string.
package preferences

import (
	"io"

	"github.com/jetsetilly/memcore/curated"
	"github.com/jetsetilly/memcore/hardware/memory"
	"github.com/jetsetilly/memcore/logger"
	"github.com/jetsetilly/memcore/prefs"
)

// The pin layouts that can be selected with the Variant preference.
const (
	VariantMuxed    = "A"
	VariantDiscrete = "B"
)

// Sentinal error patterns.
const (
	UnknownVariant = "preferences: unknown pin layout variant (%s)"
	BadCapacity    = "preferences: capacity must be between 1 and %d (%d)"
)

// DefaultCapacity returns the capacity of the core for the pin layout variant
// when none has been specified.
func DefaultCapacity(variant string) int {
	if variant == VariantDiscrete {
		return 64
	}
	return 32
}

// Preferences for the emulated hardware.
type Preferences struct {
	group *prefs.Group

	// number of cells in the core
	Capacity prefs.Int

	// pin layout variant. one of VariantMuxed or VariantDiscrete
	Variant prefs.String

	// echo the central log to stdout
	Echo prefs.Bool

	// base seed for random numbers. zero means a seed based on the time the
	// program started
	Seed prefs.Int

	// the capacity has been given explicitly and is not changed by SetVariant()
	capacityFixed bool
}

func (p *Preferences) String() string {
	return p.group.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Default values are set and then any values that have been
// pushed onto the prefs command line stack are applied. If the capacity is
// not on the stack it is the default for the variant.
//
// The central log is echoed to the echo writer while the Echo preference is
// true.
func NewPreferences(echo io.Writer) (*Preferences, error) {
	p := &Preferences{
		group: prefs.NewGroup(),
	}

	p.Capacity.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 || v.(int) > memory.MaxCapacity {
			return curated.Errorf(BadCapacity, memory.MaxCapacity, v)
		}
		return nil
	})

	p.Variant.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case VariantMuxed, VariantDiscrete:
			return nil
		}
		return curated.Errorf(UnknownVariant, v)
	})

	p.Echo.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			logger.SetEcho(echo)
		} else {
			logger.SetEcho(nil)
		}
		return nil
	})

	for key, v := range map[string]prefs.Pref{
		"core.capacity": &p.Capacity,
		"pins.variant":  &p.Variant,
		"log.echo":      &p.Echo,
		"random.seed":   &p.Seed,
	} {
		if err := p.group.Add(key, v); err != nil {
			return nil, err
		}
	}

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	if err := p.group.Apply(); err != nil {
		return nil, err
	}

	if p.group.Applied("core.capacity") {
		p.capacityFixed = true
	} else if err := p.Capacity.Set(DefaultCapacity(p.Variant.Get().(string))); err != nil {
		return nil, err
	}

	return p, nil
}

// SetVariant changes the pin layout variant. The capacity changes to the
// default for the new variant unless it has been given explicitly.
func (p *Preferences) SetVariant(variant string) error {
	if err := p.Variant.Set(variant); err != nil {
		return err
	}
	if p.capacityFixed {
		return nil
	}
	return p.Capacity.Set(DefaultCapacity(variant))
}

// SetCapacity changes the number of cells in the core. The value is kept if
// the variant is later changed with SetVariant().
func (p *Preferences) SetCapacity(capacity int) error {
	if err := p.Capacity.Set(capacity); err != nil {
		return err
	}
	p.capacityFixed = true
	return nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	p.capacityFixed = false
	if err := p.Variant.Set(VariantMuxed); err != nil {
		return err
	}
	if err := p.Capacity.Set(DefaultCapacity(VariantMuxed)); err != nil {
		return err
	}
	if err := p.Echo.Set(false); err != nil {
		return err
	}
	return p.Seed.Set(0)
}
