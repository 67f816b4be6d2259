// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package environment ties together the things an emulation shares with its
// surroundings but which are not part of the machine itself: the preferences
// and the random number source.
package environment

import (
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/random"
)

// Label names an environment.
type Label string

// MainEmulation labels the emulation being played. Every other label is a
// secondary emulation, such as one created to measure performance.
const MainEmulation = Label("")

// Environment is the context of a single emulation.
type Environment struct {
	Label Label

	// source of the values produced by the RND instruction
	Random *random.Random

	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// Environments can share a Preferences instance. If prefs is nil then the
// environment gets preferences of its own. The random source is seeded with
// the RandomSeed preference.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	if prefs == nil {
		p, err := preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
		prefs = p
	}

	return &Environment{
		Label:  label,
		Prefs:  prefs,
		Random: random.NewRandom(uint64(prefs.RandomSeed.Get().(int))),
	}, nil
}

// Normalise returns the preferences to their defaults and reseeds the random
// source with the default seed. Two normalised environments produce identical
// emulations of the same program.
func (env *Environment) Normalise() error {
	if err := env.Prefs.SetDefaults(); err != nil {
		return err
	}
	env.Random = random.NewRandom(random.DefaultSeed)
	return nil
}

// IsMainEmulation is true for the environment labelled MainEmulation.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// AllowLogging implements the logger.Permission interface. Secondary
// emulations are kept out of the log.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}
