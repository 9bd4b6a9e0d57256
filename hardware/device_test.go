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

package hardware_test

import (
	"io"
	"testing"

	"github.com/jetsetilly/memcore/curated"
	"github.com/jetsetilly/memcore/hardware"
	"github.com/jetsetilly/memcore/hardware/pins"
	"github.com/jetsetilly/memcore/hardware/pins/discrete"
	"github.com/jetsetilly/memcore/hardware/pins/muxed"
	"github.com/jetsetilly/memcore/hardware/preferences"
	"github.com/jetsetilly/memcore/test"
)

func TestVariants(t *testing.T) {
	p, err := preferences.NewPreferences(io.Discard)
	test.DemandSuccess(t, err)

	dev, err := hardware.NewDevice(p)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dev.Pins.Label(), muxed.Label)
	test.ExpectEquality(t, dev.Core.Capacity(), 32)
	test.ExpectEquality(t, dev.String(), "muxed pins, 32 cells, NORMAL after 0 edges")

	test.DemandSuccess(t, p.SetVariant(preferences.VariantDiscrete))
	dev, err = hardware.NewDevice(p)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dev.Pins.Label(), discrete.Label)
	test.ExpectEquality(t, dev.Pins.Capacity(), 64)
}

func TestCapacityTooLarge(t *testing.T) {
	p, err := preferences.NewPreferences(io.Discard)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, p.Variant.Set(preferences.VariantDiscrete))
	test.DemandSuccess(t, p.Capacity.Set(128))
	_, err = hardware.NewDevice(p)
	test.ExpectSuccess(t, curated.Is(err, hardware.DeviceError))
	test.ExpectSuccess(t, curated.Has(err, pins.CapacityTooLarge))

	// the muxed pins can address 128 cells
	test.DemandSuccess(t, p.Variant.Set(preferences.VariantMuxed))
	_, err = hardware.NewDevice(p)
	test.ExpectSuccess(t, err)
}

func TestVariantFromLabel(t *testing.T) {
	v, err := hardware.Variant(muxed.Label)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, preferences.VariantMuxed)

	v, err = hardware.Variant(discrete.Label)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, preferences.VariantDiscrete)

	_, err = hardware.Variant("serial")
	test.ExpectSuccess(t, curated.Is(err, preferences.UnknownVariant))
}
