// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// unknownBuildValue stands in for metadata the linker did not inject.
const unknownBuildValue = "N/A"

// AppBuildInfo is the build metadata of the daemon, injected with -ldflags
// and reported by the version endpoint.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo returns build info with empty values replaced by "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}

// WithVersionFallback uses v as the version when none was injected at
// build time.
func (a AppBuildInfo) WithVersionFallback(v string) AppBuildInfo {
	if a.version == unknownBuildValue && v != "" {
		a.version = v
	}
	return a
}

func (a AppBuildInfo) BuildVersion() string { return a.version }
func (a AppBuildInfo) BuildDate() string    { return a.date }
func (a AppBuildInfo) BuildCommit() string  { return a.commit }

// Response is the JSON form served by the control API.
func (a AppBuildInfo) Response() VersionResponse {
	return VersionResponse{Version: a.version, Date: a.date, Commit: a.commit}
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.version, a.date, a.commit)
}
