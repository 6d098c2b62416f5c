// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-filter-keeper/models"
)

// renderStatus summarises a view's sync state in one line. waiting is true
// while local edits sit in the debounce window.
func renderStatus(st models.SyncStatus, waiting bool, spinner string) string {
	var parts []string

	switch {
	case st.PendingOperation != models.PendingNone:
		label := "saving"
		if st.PendingOperation == models.PendingDelete {
			label = "deleting"
		}
		parts = append(parts, pendingStyle.Render(spinner+" "+label))
	case waiting:
		parts = append(parts, pendingStyle.Render("edited, waiting to save"))
	case !st.HasLoadedFromRemote:
		parts = append(parts, helpStyle.Render("not loaded"))
	default:
		parts = append(parts, syncedStyle.Render("synced"))
	}

	if st.Dirty {
		parts = append(parts, "newer edit queued")
	}

	if st.LastKnownRemoteID != "" {
		parts = append(parts, "id "+fitText(st.LastKnownRemoteID, 13))
	} else {
		parts = append(parts, "no remote record")
	}

	if st.LastSyncedAt != nil {
		parts = append(parts, "saved "+st.LastSyncedAt.Local().Format("15:04:05"))
	}

	line := strings.Join(parts, " · ")
	if st.LastError != "" {
		line += "\n" + errorStyle.Render("last error: "+st.LastError)
	}
	return line
}

// statusBadge is the short marker shown next to a view in the list.
func statusBadge(st models.SyncStatus) string {
	switch {
	case st.LastError != "":
		return errorStyle.Render("!")
	case !st.Idle():
		return pendingStyle.Render("…")
	case st.LastKnownRemoteID != "":
		return syncedStyle.Render("●")
	default:
		return " "
	}
}
