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

// Package gui is an abstraction layer for real GUI implementations. It
// defines the requests that the emulation can make of a front-end.
package gui

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// UnsupportedGuiFeature is returned if the GUI does not support the requested
// feature.
const UnsupportedGuiFeature = "gui: unsupported feature: %v"

// FeatureReq is used to request the setting of a gui attribute.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData any

// List of valid feature requests. Arguments must be of the type specified or
// else the type conversion will fail and the request will return an error.
const (
	// the channel on which user input should be sent
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan userinput.Event

	// whether the gui is visible or not
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// the scaling applied to the framebuffer
	ReqSetScale FeatureReq = "ReqSetScale" // float32

	// put gui output into full-screen mode
	ReqFullScreen FeatureReq = "ReqFullScreen" // bool
)

// Stub is a GUI that supports no features.
type Stub struct{}

// SetFeature implements the GUI interface.
func (Stub) SetFeature(request FeatureReq, args ...FeatureReqData) error {
	return nil
}
