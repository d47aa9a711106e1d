// This file is part of Gopher8bit.
//
// Gopher8bit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8bit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8bit.  If not, see <https://www.gnu.org/licenses/>.

// Package peripherals contains the devices that are attached to the PIA and
// the GTIA.
//
// The joystick is connected to bits 0 to 3 of PIA port A and to the first
// GTIA trigger. The console keys are connected to the GTIA CONSOL register.
//
// The cassette and serial devices are in their own packages.
package peripherals
