// SPDX-License-Identifier: MIT

// Package suitesparse binds klu.Engine to SuiteSparse KLU through cgo.
//
// The binding is compiled only with the "suitesparse" build tag and needs
// the KLU headers and libraries installed:
//
//	go build -tags suitesparse ./...
//
// Headers are looked up in /usr/include/suitesparse; set CGO_CFLAGS and
// CGO_LDFLAGS for other locations. The engine's configuration record is a
// C-allocated klu_common held in klu.Common.Native and freed by FreeCommon.
// Settings are copied into it before every call and status and statistics
// are copied back afterwards.
package suitesparse
