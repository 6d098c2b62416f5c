// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo carries build metadata injected with -ldflags. Empty values
// are reported as "N/A".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String formats the metadata for --version output and the TUI footer.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", a.buildVersion, a.buildCommit, a.buildDate)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
