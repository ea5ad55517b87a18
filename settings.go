/*
 * settings.go, part of goqube.
 *
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goQube is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package qube

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//Settings govern the policies of a parameter derivation. They are
//normally read from a small TOML file, with every field optional.
type Settings struct {
	VibScaling        float64 //frequency scaling factor; applied squared to every force constant
	ChargeTolerance   float64 //allowed |sum of AIM charges - declared net charge|
	StrictCharge      bool    //true: a net-charge mismatch is an error. false: warn and round
	Provider          string  //"chargemol" or "onetep"
	DDECVersion       int     //3 or 6; only meaningful for chargemol data
	SymmetryAveraging bool
	PolarHCorrection  bool
}

//RawSettings is the TOML-facing version of Settings. Zero values mean
//"not given" and fall back to defaults.
type RawSettings struct {
	VibScaling        float64
	ChargeTolerance   float64
	StrictCharge      bool
	Provider          string
	DDECVersion       int
	SymmetryAveraging *bool //pointer so an explicit false survives the defaulting
	PolarHCorrection  *bool
}

//ToSettings validates the raw values and produces the definitive
//Settings.
func (rc RawSettings) ToSettings() (*Settings, error) {
	s := DefaultSettings()
	if rc.VibScaling != 0 {
		if rc.VibScaling < 0 {
			return nil, CError{fmt.Sprintf("goQube: Negative vibrational scaling: %v", rc.VibScaling), []string{"RawSettings.ToSettings"}}
		}
		s.VibScaling = rc.VibScaling
	}
	if rc.ChargeTolerance != 0 {
		s.ChargeTolerance = rc.ChargeTolerance
	}
	s.StrictCharge = rc.StrictCharge
	if rc.Provider != "" {
		p := strings.ToLower(rc.Provider)
		if p != "chargemol" && p != "onetep" {
			return nil, CError{"goQube: Unknown AIM data provider: " + rc.Provider, []string{"RawSettings.ToSettings"}}
		}
		s.Provider = p
	}
	if rc.DDECVersion != 0 {
		if rc.DDECVersion != 3 && rc.DDECVersion != 6 {
			return nil, CError{fmt.Sprintf("goQube: Unsupported DDEC version: %d. Use version 3 or 6", rc.DDECVersion), []string{"RawSettings.ToSettings"}}
		}
		s.DDECVersion = rc.DDECVersion
	}
	if rc.SymmetryAveraging != nil {
		s.SymmetryAveraging = *rc.SymmetryAveraging
	}
	if rc.PolarHCorrection != nil {
		s.PolarHCorrection = *rc.PolarHCorrection
	}
	return s, nil
}

//DefaultSettings returns the settings used when nothing else is given:
//the 0.957 frequency scaling common for B3LYP, a 0.05 e charge
//tolerance with warn-and-round behavior, Chargemol/DDEC6 data, and both
//the polar-hydrogen correction and symmetry averaging switched on.
func DefaultSettings() *Settings {
	return &Settings{
		VibScaling:        0.957,
		ChargeTolerance:   0.05,
		StrictCharge:      false,
		Provider:          "chargemol",
		DDECVersion:       6,
		SymmetryAveraging: true,
		PolarHCorrection:  true,
	}
}

//LoadSettings reads Settings from the TOML file with the given name.
func LoadSettings(filename string) (*Settings, error) {
	cont, err := os.ReadFile(filename)
	if err != nil {
		return nil, CError{err.Error(), []string{"LoadSettings"}}
	}
	rc := RawSettings{}
	err = toml.Unmarshal(cont, &rc)
	if err != nil {
		return nil, CError{"goQube: Couldn't parse " + filename + ": " + err.Error(), []string{"LoadSettings"}}
	}
	s, err := rc.ToSettings()
	if err != nil {
		return nil, errDecorate(err, "LoadSettings: "+filename)
	}
	return s, nil
}
