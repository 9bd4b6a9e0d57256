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

// Package hardware is the base package for the emulated device. The Device
// type ties together the storage core and the pin adapter selected by the
// preferences.
package hardware

import (
	"fmt"

	"github.com/jetsetilly/memcore/curated"
	"github.com/jetsetilly/memcore/hardware/memory"
	"github.com/jetsetilly/memcore/hardware/pins"
	"github.com/jetsetilly/memcore/hardware/pins/discrete"
	"github.com/jetsetilly/memcore/hardware/pins/muxed"
	"github.com/jetsetilly/memcore/hardware/preferences"
)

// DeviceError is the pattern used for all errors returned by NewDevice().
const DeviceError = "device: %v"

// Device is the emulated memory device.
type Device struct {
	Prefs *preferences.Preferences
	Core  *memory.Core
	Pins  pins.Interface
}

// NewDevice creates a new device according to the preferences.
func NewDevice(prefs *preferences.Preferences) (*Device, error) {
	var err error

	dev := &Device{Prefs: prefs}

	dev.Core, err = memory.NewCore(prefs.Capacity.Get().(int))
	if err != nil {
		return nil, curated.Errorf(DeviceError, err)
	}

	switch prefs.Variant.Get().(string) {
	case preferences.VariantMuxed:
		dev.Pins, err = muxed.NewPins(dev.Core)
	case preferences.VariantDiscrete:
		dev.Pins, err = discrete.NewPins(dev.Core)
	default:
		err = curated.Errorf(preferences.UnknownVariant, prefs.Variant.Get())
	}
	if err != nil {
		return nil, curated.Errorf(DeviceError, err)
	}

	return dev, nil
}

// Variant returns the variant preference value for the pin layout label.
func Variant(label string) (string, error) {
	switch label {
	case muxed.Label:
		return preferences.VariantMuxed, nil
	case discrete.Label:
		return preferences.VariantDiscrete, nil
	}
	return "", curated.Errorf(preferences.UnknownVariant, label)
}

func (dev *Device) String() string {
	return fmt.Sprintf("%s pins, %d cells, %s after %d edges",
		dev.Pins.Label(), dev.Core.Capacity(), dev.Core.State(), dev.Core.Edges())
}
