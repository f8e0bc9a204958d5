// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !nolog

package deadpool

// logEnabled is false when the nolog tag compiles the logger dispatch out.
const logEnabled = true

func (h *Heap) debugf(format string, args ...any) {
	if f := h.logger.Debugf; f != nil {
		f(format, args...)
	}
}

func (h *Heap) infof(format string, args ...any) {
	if f := h.logger.Infof; f != nil {
		f(format, args...)
	}
}

func (h *Heap) warningf(format string, args ...any) {
	if f := h.logger.Warningf; f != nil {
		f(format, args...)
	}
}

func (h *Heap) errorf(format string, args ...any) {
	if f := h.logger.Errorf; f != nil {
		f(format, args...)
	}
}
