package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	logout     key.Binding
	refresh    key.Binding
	confirm    key.Binding
	dismiss    key.Binding
	difference key.Binding
	newItem    key.Binding
	edit       key.Binding
	delete     key.Binding
	copy       key.Binding
	buildInfo  key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	logout:     key.NewBinding(key.WithKeys("l")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	confirm:    key.NewBinding(key.WithKeys("c")),
	dismiss:    key.NewBinding(key.WithKeys("x")),
	difference: key.NewBinding(key.WithKeys("d")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("delete", "D")),
	copy:       key.NewBinding(key.WithKeys("y")),
	buildInfo:  key.NewBinding(key.WithKeys("v")),
	yes:        key.NewBinding(key.WithKeys("s", "y")),
	no:         key.NewBinding(key.WithKeys("n", "esc")),
}
