// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	viewName string
}

func (m confirmModel) View() string {
	content := "Clear all filters of \"" + m.viewName + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
