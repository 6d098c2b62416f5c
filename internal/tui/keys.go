// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	add       key.Binding
	edit      key.Binding
	delete    key.Binding
	clear     key.Binding
	copy      key.Binding
	buildInfo key.Binding
	token     key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	add:       key.NewBinding(key.WithKeys("a", "i")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	clear:     key.NewBinding(key.WithKeys("x")),
	copy:      key.NewBinding(key.WithKeys("y")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	token:     key.NewBinding(key.WithKeys("t")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
